package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sakeenah/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// withURLParams attaches chi route params to req as the router would.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	invitations map[string]*domain.Invitation
	err         error
}

func (f *fakeInvitationService) GetInvitation(_ context.Context, uid string) (*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.invitations[uid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvitationService) InvitationLink(baseURL, uid, guestName string) string {
	return baseURL + "/" + uid + "?guest=" + guestName
}

func (f *fakeInvitationService) BulkInvitationLinks(baseURL, uid string, guestNames []string) []domain.InvitationLink {
	return nil
}

// fakeWishService implements domain.WishService for handler tests.
type fakeWishService struct {
	wishes     []*domain.Wish
	total      int
	stats      *domain.WishStats
	created    *domain.Wish
	listErr    error
	createErr  error
	deleteErr  error
	statsErr   error
	lastUID    string
	lastParams domain.PaginationParams
	lastInput  domain.NewWishInput
	lastID     string
}

func (f *fakeWishService) ListWishes(_ context.Context, uid string, params domain.PaginationParams) ([]*domain.Wish, int, error) {
	f.lastUID, f.lastParams = uid, params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.wishes, f.total, nil
}

func (f *fakeWishService) CreateWish(_ context.Context, uid string, in domain.NewWishInput) (*domain.Wish, error) {
	f.lastUID, f.lastInput = uid, in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeWishService) DeleteWish(_ context.Context, uid, id string) error {
	f.lastUID, f.lastID = uid, id
	return f.deleteErr
}

func (f *fakeWishService) Stats(_ context.Context, uid string) (*domain.WishStats, error) {
	f.lastUID = uid
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	token *domain.AdminToken
	err   error
}

func (f *fakeAdminService) Login(_ context.Context, password string) (*domain.AdminToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

func sampleInvitation() *domain.Invitation {
	return &domain.Invitation{
		UID:       "afreen-hridhin-2025",
		Title:     "The Wedding of Hridhin & Afreen",
		GroomName: "Hridhin",
		BrideName: "Afreen",
		Date:      "2024-12-24",
		Time:      "16:16 - 17:30 WIB",
		Location:  "Grand Ballroom, Hotel Majesty",
		Agenda:    []domain.AgendaItem{{Title: "Reception", StartTime: "16:16", EndTime: "17:30"}},
		Banks:     []domain.BankAccount{},
	}
}

var fixedNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
