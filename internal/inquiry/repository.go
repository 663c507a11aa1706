package inquiry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an inquiry record does not exist.
var ErrNotFound = errors.New("inquiry not found")

// ErrInvalidTransition is returned when a status change is not allowed
// from the record's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Repository provides persistence for inquiry records. The repository
// assigns ID and CreatedAt on create.
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	List(ctx context.Context, filter ListFilter) (*ListResult, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to Status) (*Inquiry, error)
	ExpireQuoted(ctx context.Context, quotedBefore time.Time) ([]Inquiry, error)
}
