package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sakeenah/internal/domain"
)

// Defaults for the wishes display and feedback windows.
const (
	DefaultRecentWindow      = time.Hour
	DefaultCelebrationWindow = 3 * time.Second
)

// LocalWishesStore is an append-only, newest-first list of wishes persisted
// as one JSON snapshot under a single key. The snapshot never expires.
type LocalWishesStore struct {
	kv           domain.KeyValueStore
	key          string
	recentWindow time.Duration
	now          func() time.Time
	newID        func() string
	logger       *slog.Logger
}

// LocalWishesOption configures a LocalWishesStore.
type LocalWishesOption func(*LocalWishesStore)

// WithWishesKey overrides the snapshot key (default KeyWishes).
func WithWishesKey(key string) LocalWishesOption {
	return func(s *LocalWishesStore) { s.key = key }
}

// WithRecentWindow overrides the "new" badge window.
func WithRecentWindow(d time.Duration) LocalWishesOption {
	return func(s *LocalWishesStore) {
		if d > 0 {
			s.recentWindow = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) LocalWishesOption {
	return func(s *LocalWishesStore) { s.now = now }
}

// WithIDGenerator overrides wish id generation.
func WithIDGenerator(newID func() string) LocalWishesOption {
	return func(s *LocalWishesStore) { s.newID = newID }
}

// NewLocalWishesStore returns a store over kv.
func NewLocalWishesStore(kv domain.KeyValueStore, logger *slog.Logger, opts ...LocalWishesOption) *LocalWishesStore {
	s := &LocalWishesStore{
		kv:           kv,
		key:          KeyWishes,
		recentWindow: DefaultRecentWindow,
		now:          time.Now,
		newID:        uuid.NewString,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted wishes, or an empty list when the snapshot is
// missing or unreadable.
func (s *LocalWishesStore) Load(ctx context.Context) []domain.Wish {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "wishes: read failed", "key", s.key, "err", err)
		return []domain.Wish{}
	}
	if !ok || raw == "" {
		return []domain.Wish{}
	}
	var wishes []domain.Wish
	if err := json.Unmarshal([]byte(raw), &wishes); err != nil {
		s.logger.WarnContext(ctx, "wishes: snapshot unreadable", "key", s.key, "err", err)
		return []domain.Wish{}
	}
	if wishes == nil {
		wishes = []domain.Wish{}
	}
	return wishes
}

// Save overwrites the snapshot with wishes. It reports whether the write
// succeeded; failures are logged and leave the previous snapshot untouched.
func (s *LocalWishesStore) Save(ctx context.Context, wishes []domain.Wish) bool {
	if wishes == nil {
		wishes = []domain.Wish{}
	}
	raw, err := json.Marshal(wishes)
	if err != nil {
		s.logger.ErrorContext(ctx, "wishes: encode failed", "err", err)
		return false
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		s.logger.ErrorContext(ctx, "wishes: save failed", "key", s.key, "err", err)
		return false
	}
	return true
}

// SubmitResult is the outcome of a successful Submit.
type SubmitResult struct {
	Wishes  []domain.Wish
	Created domain.Wish
	// Celebrate asks the caller to show transient feedback (see Celebration).
	Celebrate bool
	// Saved is false when the snapshot write failed; Wishes still holds the
	// new list so the caller can keep showing it.
	Saved bool
}

// Submit validates and prepends a new wish to current, then persists the
// whole list. It returns domain.ErrInvalidInput, without touching storage,
// when name or message is blank.
func (s *LocalWishesStore) Submit(ctx context.Context, name, message, attendance string, current []domain.Wish) (SubmitResult, error) {
	name, message, att, err := domain.NewWishInput{Name: name, Message: message, Attendance: attendance}.Normalize()
	if err != nil {
		return SubmitResult{}, fmt.Errorf("name and message are required: %w", err)
	}
	wish := domain.Wish{
		ID:         s.newID(),
		Name:       name,
		Message:    message,
		Attendance: att,
		CreatedAt:  s.now().UTC(),
	}
	next := make([]domain.Wish, 0, len(current)+1)
	next = append(next, wish)
	next = append(next, current...)
	saved := s.Save(ctx, next)
	return SubmitResult{Wishes: next, Created: wish, Celebrate: true, Saved: saved}, nil
}

// IsRecent reports whether w deserves the "New" badge at now.
func (s *LocalWishesStore) IsRecent(w domain.Wish, now time.Time) bool {
	return w.IsRecent(now, s.recentWindow)
}

// Celebration is a flag that switches itself off a fixed window after the
// last Trigger. A new Trigger restarts the window.
type Celebration struct {
	mu     sync.Mutex
	window time.Duration
	active bool
	timer  *time.Timer
	gen    uint64
}

// NewCelebration returns an inactive Celebration. A non-positive window
// means DefaultCelebrationWindow.
func NewCelebration(window time.Duration) *Celebration {
	if window <= 0 {
		window = DefaultCelebrationWindow
	}
	return &Celebration{window: window}
}

// Trigger activates the flag and (re)starts the clear timer.
func (c *Celebration) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.active = false
		}
	})
}

// Active reports whether feedback should currently be shown.
func (c *Celebration) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
