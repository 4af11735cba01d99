package turnlog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles turn_log persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append inserts one turn record. CreatedAt defaults to now when unset.
func (s *Store) Append(ctx context.Context, r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO turn_log (user_id, message, intent, confidence, response_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.UserID, r.Message, r.Intent, r.Confidence, r.ResponseType, r.CreatedAt)
	return err
}

// RecentByUser returns the newest records for a user, newest first.
func (s *Store) RecentByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT user_id, message, intent, confidence, response_type, created_at
		FROM turn_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.UserID, &r.Message, &r.Intent, &r.Confidence, &r.ResponseType, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
