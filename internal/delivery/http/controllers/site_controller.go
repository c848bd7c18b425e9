package controllers

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"sakeenah/internal/adapters/storage"
	"sakeenah/internal/domain"
	"sakeenah/internal/eventdate"
	"sakeenah/internal/services"
)

// DefaultGuestName is shown when the visitor has no stored guest name.
const DefaultGuestName = "Our Guest"

const landingWishLimit = 50

//go:embed templates/landing.html
var landingHTML string

var landingTemplate = template.Must(template.New("landing").Parse(landingHTML))

// SiteConfig holds the identity settings of the landing page.
type SiteConfig struct {
	FallbackUID  string
	IdentityTTL  time.Duration
	RecentWindow time.Duration
	CookieSecure bool
}

// SiteController serves the personalised invitation page at / and /{uid}.
type SiteController struct {
	Logger      *slog.Logger
	Invitations domain.InvitationService
	Wishes      domain.WishService
	Config      SiteConfig
	Now         func() time.Time
}

func NewSiteController(logger *slog.Logger, invitations domain.InvitationService, wishes domain.WishService, cfg SiteConfig) *SiteController {
	if cfg.IdentityTTL <= 0 {
		cfg.IdentityTTL = services.DefaultIdentityTTL
	}
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = services.DefaultRecentWindow
	}
	return &SiteController{
		Logger:      logger,
		Invitations: invitations,
		Wishes:      wishes,
		Config:      cfg,
		Now:         time.Now,
	}
}

// redirectBar records the address the resolver wants shown.
type redirectBar struct {
	target string
}

func (b *redirectBar) Replace(path string) { b.target = path }

type landingWish struct {
	Name    string
	Message string
	When    string
	IsNew   bool
}

type landingPage struct {
	GuestName  string
	Invitation *domain.Invitation
	DateFull   string
	Wishes     []landingWish
	Stats      *domain.WishStats
}

// Landing resolves the visitor identity from cookies and the address, then
// renders the invitation. Addresses carrying a uid or guest name are
// redirected to / once the identity is stored.
func (c *SiteController) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kv := storage.NewCookieStore(w, r, storage.CookieOptions{
		Secure: c.Config.CookieSecure,
		MaxAge: c.Config.IdentityTTL,
	})
	store := services.NewIdentityStore(kv, c.Config.IdentityTTL, c.Now, c.Logger)
	resolver := services.NewResolver(store, c.Logger)

	bar := &redirectBar{}
	identity := resolver.Resolve(ctx, services.ParseLocation(r.URL), c.Config.FallbackUID, bar)
	if bar.target != "" {
		http.Redirect(w, r, bar.target, http.StatusFound)
		return
	}

	page := landingPage{GuestName: identity.GuestName}
	if page.GuestName == "" {
		page.GuestName = DefaultGuestName
	}
	status := http.StatusOK
	if identity.UID == "" {
		status = http.StatusNotFound
	} else if err := c.loadInvitation(ctx, identity.UID, &page); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.Logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		status = http.StatusNotFound
	}

	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, page); err != nil {
		c.Logger.ErrorContext(ctx, "render landing page", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (c *SiteController) loadInvitation(ctx context.Context, uid string, page *landingPage) error {
	inv, err := c.Invitations.GetInvitation(ctx, uid)
	if err != nil {
		return err
	}
	page.Invitation = inv
	if inv.Date != "" {
		if s, err := eventdate.Format(inv.Date, eventdate.Full); err == nil {
			page.DateFull = s
		}
	}

	wishes, _, err := c.Wishes.ListWishes(ctx, uid, domain.PaginationParams{Limit: landingWishLimit})
	if err != nil {
		// The invitation still renders without its guest book.
		c.Logger.WarnContext(ctx, "could not load wishes", "uid", uid, "err", err)
		return nil
	}
	now := c.Now()
	for _, wish := range wishes {
		page.Wishes = append(page.Wishes, landingWish{
			Name:    wish.Name,
			Message: wish.Message,
			When:    eventdate.FormatTime(wish.CreatedAt, eventdate.Short) + " " + eventdate.FormatTime(wish.CreatedAt, eventdate.Time),
			IsNew:   wish.IsRecent(now, c.Config.RecentWindow),
		})
	}
	if stats, err := c.Wishes.Stats(ctx, uid); err == nil {
		page.Stats = stats
	}
	return nil
}
