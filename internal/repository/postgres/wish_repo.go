package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"sakeenah/internal/domain"
)

// invalidTextRepresentation is raised when a wish id is not a valid UUID.
const invalidTextRepresentation = "22P02"

type wishRepository struct {
	DB *sql.DB
}

func NewWishRepository(db *sql.DB) domain.WishRepository {
	return &wishRepository{
		DB: db,
	}
}

func (r *wishRepository) Create(ctx context.Context, uid string, w *domain.Wish) error {
	query := `
		INSERT INTO wishes (invitation_uid, name, message, attendance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, uid, w.Name, w.Message, string(w.Attendance)).
		Scan(&w.ID, &w.CreatedAt)
}

func (r *wishRepository) ListByInvitation(ctx context.Context, uid string, params domain.PaginationParams) ([]*domain.Wish, error) {
	query := `
		SELECT id, name, message, attendance, created_at
		FROM wishes
		WHERE invitation_uid = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, uid, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wishes := make([]*domain.Wish, 0)
	for rows.Next() {
		w := &domain.Wish{}
		var attendance string
		if err := rows.Scan(&w.ID, &w.Name, &w.Message, &attendance, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Attendance = domain.ParseAttendance(attendance)
		wishes = append(wishes, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *wishRepository) CountByInvitation(ctx context.Context, uid string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM wishes WHERE invitation_uid = $1`, uid).Scan(&total)
	return total, err
}

func (r *wishRepository) Delete(ctx context.Context, uid, id string) error {
	query := `DELETE FROM wishes WHERE id = $1 AND invitation_uid = $2`
	result, err := r.DB.ExecContext(ctx, query, id, uid)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == invalidTextRepresentation {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *wishRepository) Stats(ctx context.Context, uid string) (*domain.WishStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE attendance = 'ATTENDING') AS attending,
			COUNT(*) FILTER (WHERE attendance = 'NOT_ATTENDING') AS not_attending,
			COUNT(*) FILTER (WHERE attendance = 'MAYBE') AS maybe,
			COUNT(*) AS total
		FROM wishes
		WHERE invitation_uid = $1
	`
	s := &domain.WishStats{}
	if err := r.DB.QueryRowContext(ctx, query, uid).Scan(&s.Attending, &s.NotAttending, &s.Maybe, &s.Total); err != nil {
		return nil, err
	}
	return s, nil
}
