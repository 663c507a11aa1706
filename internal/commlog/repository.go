package commlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores and retrieves communication records.
type Repository interface {
	Record(ctx context.Context, c *Communication) error
	ListByInquiry(ctx context.Context, inquiryID uuid.UUID) ([]Communication, error)
}

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Record inserts a communication entry.
func (r *PostgresRepository) Record(ctx context.Context, c *Communication) error {
	query := `
		INSERT INTO communications (inquiry_id, channel, direction, subject, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		c.InquiryID,
		c.Channel,
		c.Direction,
		c.Subject,
		c.Content,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting communication: %w", err)
	}

	return nil
}

// ListByInquiry returns every communication for an inquiry, oldest first.
func (r *PostgresRepository) ListByInquiry(ctx context.Context, inquiryID uuid.UUID) ([]Communication, error) {
	query := `
		SELECT id, inquiry_id, channel, direction, subject, content, created_at
		FROM communications
		WHERE inquiry_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("listing communications: %w", err)
	}
	defer rows.Close()

	var comms []Communication
	for rows.Next() {
		var c Communication
		err := rows.Scan(&c.ID, &c.InquiryID, &c.Channel, &c.Direction, &c.Subject, &c.Content, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning communication row: %w", err)
		}
		comms = append(comms, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating communication rows: %w", err)
	}

	return comms, nil
}
