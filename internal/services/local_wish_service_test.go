package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakeenah/internal/adapters/storage"
	"sakeenah/internal/domain"
)

func TestLocalWishService_CreateListDeleteStats(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	email := &fakeEmailService{}
	svc := NewLocalWishService(kv, knownInvitations(), &WishNotifier{Email: email, Address: "couple@example.com"}, time.Hour, discardLogger)
	uid := "afreen-hridhin-2025"

	inputs := []domain.NewWishInput{
		{Name: "Aisha", Message: "one", Attendance: "ATTENDING"},
		{Name: "Omar", Message: "two", Attendance: "NOT_ATTENDING"},
		{Name: "Zaid", Message: "three"},
	}
	var created []*domain.Wish
	for _, in := range inputs {
		w, err := svc.CreateWish(ctx, uid, in)
		require.NoError(t, err)
		created = append(created, w)
	}
	assert.Len(t, email.sent, 3)

	page, total, err := svc.ListWishes(ctx, uid, domain.PaginationParams{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Zaid", page[0].Name)
	assert.Equal(t, "Omar", page[1].Name)

	page, _, err = svc.ListWishes(ctx, uid, domain.PaginationParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Aisha", page[0].Name)

	stats, err := svc.Stats(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, &domain.WishStats{Attending: 1, NotAttending: 1, Maybe: 1, Total: 3}, stats)

	require.NoError(t, svc.DeleteWish(ctx, uid, created[1].ID))
	assert.True(t, errors.Is(svc.DeleteWish(ctx, uid, created[1].ID), domain.ErrNotFound))

	_, total, err = svc.ListWishes(ctx, uid, domain.PaginationParams{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// Snapshots are kept per invitation.
	_, ok, _ := kv.Get(ctx, KeyWishes+":"+uid)
	assert.True(t, ok)
}

func TestLocalWishService_Errors(t *testing.T) {
	ctx := context.Background()
	svc := NewLocalWishService(storage.NewMemoryStore(), knownInvitations(), nil, time.Hour, discardLogger)

	_, err := svc.CreateWish(ctx, "afreen-hridhin-2025", domain.NewWishInput{Name: "Aisha"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = svc.CreateWish(ctx, "missing", domain.NewWishInput{Name: "Aisha", Message: "hi"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, _, err = svc.ListWishes(ctx, "missing", domain.PaginationParams{Limit: 10})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(svc.DeleteWish(ctx, "afreen-hridhin-2025", ""), domain.ErrInvalidInput))
}

// readOnlyKV reads from a MemoryStore but rejects every write.
type readOnlyKV struct {
	*storage.MemoryStore
}

func (readOnlyKV) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestLocalWishService_CreateWishSaveFailure(t *testing.T) {
	ctx := context.Background()
	email := &fakeEmailService{}
	svc := NewLocalWishService(readOnlyKV{storage.NewMemoryStore()}, knownInvitations(), &WishNotifier{Email: email, Address: "couple@example.com"}, time.Hour, discardLogger)
	uid := "afreen-hridhin-2025"

	w, err := svc.CreateWish(ctx, uid, domain.NewWishInput{Name: "Aisha", Message: "Barakallah"})
	require.Error(t, err)
	assert.Nil(t, w)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, email.sent, "no notification for a wish that was not stored")

	page, total, err := svc.ListWishes(ctx, uid, domain.PaginationParams{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, page)
}
