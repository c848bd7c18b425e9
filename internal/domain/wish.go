package domain

import (
	"context"
	"strings"
	"time"
)

// Attendance is a guest's RSVP answer.
type Attendance string

const (
	AttendanceAttending    Attendance = "ATTENDING"
	AttendanceNotAttending Attendance = "NOT_ATTENDING"
	AttendanceMaybe        Attendance = "MAYBE"
)

// ParseAttendance coerces raw into a valid Attendance. Case and '-' vs '_' are
// ignored; anything unrecognised becomes AttendanceMaybe.
func ParseAttendance(raw string) Attendance {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_"))
	switch Attendance(norm) {
	case AttendanceAttending, AttendanceNotAttending, AttendanceMaybe:
		return Attendance(norm)
	}
	return AttendanceMaybe
}

// Wish is a guest-submitted message plus an attendance response.
// swagger:model Wish
type Wish struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Message    string     `json:"message"`
	Attendance Attendance `json:"attendance"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRecent reports whether the wish was created less than window before now.
func (w Wish) IsRecent(now time.Time, window time.Duration) bool {
	return now.Sub(w.CreatedAt) < window
}

// NewWishInput is the unvalidated payload of a wish submission.
type NewWishInput struct {
	Name       string
	Message    string
	Attendance string
}

// Normalize trims the input and coerces the attendance. It returns
// ErrInvalidInput when name or message is empty after trimming.
func (in NewWishInput) Normalize() (name, message string, attendance Attendance, err error) {
	name = strings.TrimSpace(in.Name)
	message = strings.TrimSpace(in.Message)
	if name == "" || message == "" {
		return "", "", "", ErrInvalidInput
	}
	return name, message, ParseAttendance(in.Attendance), nil
}

// WishStats aggregates attendance answers for an invitation.
// swagger:model WishStats
type WishStats struct {
	Attending    int `json:"attending"`
	NotAttending int `json:"not_attending"`
	Maybe        int `json:"maybe"`
	Total        int `json:"total"`
}

// Add counts one answer.
func (s *WishStats) Add(a Attendance) {
	switch a {
	case AttendanceAttending:
		s.Attending++
	case AttendanceNotAttending:
		s.NotAttending++
	default:
		s.Maybe++
	}
	s.Total++
}

// WishRepository defines storage operations for wishes.
type WishRepository interface {
	Create(ctx context.Context, uid string, wish *Wish) error
	ListByInvitation(ctx context.Context, uid string, params PaginationParams) ([]*Wish, error)
	CountByInvitation(ctx context.Context, uid string) (int, error)
	Delete(ctx context.Context, uid, id string) error
	Stats(ctx context.Context, uid string) (*WishStats, error)
}

// WishService is the wishes API contract. Both the Postgres-backed service and
// the local-storage service implement it.
type WishService interface {
	ListWishes(ctx context.Context, uid string, params PaginationParams) ([]*Wish, int, error)
	CreateWish(ctx context.Context, uid string, in NewWishInput) (*Wish, error)
	DeleteWish(ctx context.Context, uid, id string) error
	Stats(ctx context.Context, uid string) (*WishStats, error)
}
