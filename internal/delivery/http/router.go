package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"sakeenah/internal/delivery/http/controllers"
	"sakeenah/internal/delivery/http/middleware"
	"sakeenah/internal/domain"
)

// RouterDeps carries everything the router mounts.
// Admin may be nil, in which case no token can be issued and deletion always
// answers 401. RateLimiter may be nil to disable submission limits.
// TrustProxy mounts chi's RealIP so limits key on the forwarded client address.
type RouterDeps struct {
	Logger             *slog.Logger
	CORSAllowedOrigins []string
	Invitation         *controllers.InvitationController
	Wish               *controllers.WishController
	Admin              *controllers.AdminController
	Site               *controllers.SiteController
	Verifier           domain.TokenVerifier
	RateLimiter        *middleware.RateLimiter
	TrustProxy         bool
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(d.Logger))
	r.Use(chimw.Recoverer)

	verifier := d.Verifier
	if verifier == nil {
		verifier = denyAllVerifier{}
	}
	limit := func(next http.Handler) http.Handler { return next }
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Limit
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.CORS(d.CORSAllowedOrigins))

		api.Get("/health", controllers.Health)
		api.Get("/invitation/{uid}", d.Invitation.GetInvitation)
		if d.Admin != nil {
			api.With(limit).Post("/admin/token", d.Admin.IssueToken)
		}

		api.Route("/{uid}", func(inv chi.Router) {
			inv.Get("/wishes", d.Wish.ListWishes)
			inv.With(limit).Post("/wishes", d.Wish.CreateWish)
			inv.With(middleware.RequireAdmin(verifier, d.Logger)).Delete("/wishes/{id}", d.Wish.DeleteWish)
			inv.Get("/stats", d.Wish.GetStats)
		})
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if d.Site != nil {
		// Dotted segments are files (favicon.ico, sitemap.xml, ...), never uids.
		r.Get("/", d.Site.Landing)
		r.Get("/{uid:[^.]+}", d.Site.Landing)
	}

	return r
}

type denyAllVerifier struct{}

func (denyAllVerifier) Verify(string) (string, error) {
	return "", errors.Join(domain.ErrUnauthorized, errors.New("admin login is not configured"))
}
