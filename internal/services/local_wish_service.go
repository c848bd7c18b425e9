package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sakeenah/internal/domain"
)

// localWishService serves the wishes API from LocalWishesStore snapshots, one
// snapshot per invitation. It stands in for the database-backed service when
// no database is configured.
type localWishService struct {
	mu             sync.Mutex
	kv             domain.KeyValueStore
	invitationRepo domain.InvitationRepository
	notifier       *WishNotifier
	recentWindow   time.Duration
	logger         *slog.Logger
}

// NewLocalWishService creates a WishService over kv. notifier may be nil.
func NewLocalWishService(
	kv domain.KeyValueStore,
	invitationRepo domain.InvitationRepository,
	notifier *WishNotifier,
	recentWindow time.Duration,
	logger *slog.Logger,
) domain.WishService {
	return &localWishService{
		kv:             kv,
		invitationRepo: invitationRepo,
		notifier:       notifier,
		recentWindow:   recentWindow,
		logger:         logger,
	}
}

func (s *localWishService) store(uid string) *LocalWishesStore {
	return NewLocalWishesStore(s.kv, s.logger,
		WithWishesKey(KeyWishes+":"+uid),
		WithRecentWindow(s.recentWindow),
	)
}

func (s *localWishService) ListWishes(ctx context.Context, uid string, params domain.PaginationParams) ([]*domain.Wish, int, error) {
	if _, err := s.invitation(ctx, uid); err != nil {
		return nil, 0, err
	}
	all := s.store(uid).Load(ctx)
	start, end := params.Window(len(all))
	page := make([]*domain.Wish, 0, end-start)
	for i := start; i < end; i++ {
		page = append(page, &all[i])
	}
	return page, len(all), nil
}

func (s *localWishService) CreateWish(ctx context.Context, uid string, in domain.NewWishInput) (*domain.Wish, error) {
	if _, _, _, err := in.Normalize(); err != nil {
		return nil, err
	}
	inv, err := s.invitation(ctx, uid)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	store := s.store(uid)
	res, err := store.Submit(ctx, in.Name, in.Message, in.Attendance, store.Load(ctx))
	if err != nil {
		return nil, err
	}
	if !res.Saved {
		return nil, fmt.Errorf("create wish: snapshot not saved")
	}
	wish := res.Created
	s.notifier.Notify(ctx, s.logger, inv, &wish)
	return &wish, nil
}

func (s *localWishService) DeleteWish(ctx context.Context, uid, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store := s.store(uid)
	all := store.Load(ctx)
	kept := make([]domain.Wish, 0, len(all))
	for _, w := range all {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(all) {
		return domain.ErrNotFound
	}
	if !store.Save(ctx, kept) {
		return fmt.Errorf("delete wish: snapshot not saved")
	}
	return nil
}

func (s *localWishService) Stats(ctx context.Context, uid string) (*domain.WishStats, error) {
	stats := &domain.WishStats{}
	for _, w := range s.store(uid).Load(ctx) {
		stats.Add(w.Attendance)
	}
	return stats, nil
}

func (s *localWishService) invitation(ctx context.Context, uid string) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}
