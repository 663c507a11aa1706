package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inquiryColumns = `id, full_name, email, phone, event_type, event_date, duration_hours,
	       venue_name, guest_count, backdrop_color, layout_type, notes,
	       quoted_price_cents, status, created_at, updated_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new inquiry record. ID and CreatedAt are assigned by
// the database and written back into inq.
func (r *PostgresRepository) Create(ctx context.Context, inq *Inquiry) error {
	if inq.Status == "" {
		inq.Status = StatusSubmitted
	}

	query := `
		INSERT INTO inquiries (full_name, email, phone, event_type, event_date, duration_hours,
		                       venue_name, guest_count, backdrop_color, layout_type, notes,
		                       quoted_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		inq.FullName,
		inq.Email,
		inq.Phone,
		inq.EventType,
		inq.EventDate,
		inq.DurationHours,
		inq.VenueName,
		inq.GuestCount,
		inq.BackdropColor,
		inq.LayoutType,
		inq.Notes,
		inq.QuotedPriceCents,
		inq.Status,
	).Scan(&inq.ID, &inq.CreatedAt, &inq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves a single inquiry by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE id = $1`

	inq, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying inquiry: %w", err)
	}

	return inq, nil
}

// List retrieves a paginated, filtered list of inquiries, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	var conditions []string
	var args []any
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EventType != nil {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", argIdx))
		args = append(args, *filter.EventType)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM inquiries " + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting inquiries: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM inquiries
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, inquiryColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, *inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiry rows: %w", err)
	}

	return &ListResult{
		Inquiries: inquiries,
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}, nil
}

// AdvanceStatus moves an inquiry from one status to the next. The guard
// on the current status makes the update atomic; zero rows affected is
// diagnosed as either ErrNotFound or ErrInvalidTransition.
func (r *PostgresRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to Status) (*Inquiry, error) {
	if !from.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	query := `
		UPDATE inquiries
		SET status = $3,
		    quoted_at = CASE WHEN $3 = 'quoted' THEN now() ELSE quoted_at END,
		    updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING ` + inquiryColumns

	inq, err := scanInquiry(r.pool.QueryRow(ctx, query, id, from, to))
	if err == nil {
		return inq, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("advancing inquiry status: %w", err)
	}

	// Nothing matched: the record is missing or its status moved on.
	var current Status
	checkErr := r.pool.QueryRow(ctx, `SELECT status FROM inquiries WHERE id = $1`, id).Scan(&current)
	if checkErr != nil {
		if errors.Is(checkErr, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("checking inquiry status: %w", checkErr)
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
}

// ExpireQuoted moves every quoted inquiry whose quote predates
// quotedBefore into the expired status and returns the affected records.
func (r *PostgresRepository) ExpireQuoted(ctx context.Context, quotedBefore time.Time) ([]Inquiry, error) {
	query := `
		UPDATE inquiries
		SET status = $1, updated_at = now()
		WHERE status = $2 AND quoted_at < $3
		RETURNING ` + inquiryColumns

	rows, err := r.pool.Query(ctx, query, StatusExpired, StatusQuoted, quotedBefore)
	if err != nil {
		return nil, fmt.Errorf("expiring quoted inquiries: %w", err)
	}
	defer rows.Close()

	var expired []Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expired inquiry: %w", err)
		}
		expired = append(expired, *inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expired inquiries: %w", err)
	}

	return expired, nil
}

func scanInquiry(row pgx.Row) (*Inquiry, error) {
	var inq Inquiry
	err := row.Scan(
		&inq.ID,
		&inq.FullName,
		&inq.Email,
		&inq.Phone,
		&inq.EventType,
		&inq.EventDate,
		&inq.DurationHours,
		&inq.VenueName,
		&inq.GuestCount,
		&inq.BackdropColor,
		&inq.LayoutType,
		&inq.Notes,
		&inq.QuotedPriceCents,
		&inq.Status,
		&inq.CreatedAt,
		&inq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}
