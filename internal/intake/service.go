// Package intake orchestrates inquiry submission: validation, package
// pricing, persistence and acknowledgement.
package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/partyfavorphoto/intake/internal/api/validation"
	"github.com/partyfavorphoto/intake/internal/commlog"
	"github.com/partyfavorphoto/intake/internal/inquiry"
	"github.com/partyfavorphoto/intake/internal/notify"
	"github.com/partyfavorphoto/intake/internal/pricing"
)

const acknowledgementText = "Thank you for your inquiry! We'll respond within 2 hours with a detailed quote."

// ValidationError carries the full set of field errors for a rejected
// submission. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission failed validation on %d field(s)", len(e.Fields))
}

// PersistenceError signals a storage failure. The submission may be
// retried by the caller; the service never retries on its own.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Service owns the inquiry lifecycle and the quote retention window.
type Service struct {
	repo      inquiry.Repository
	comms     commlog.Repository
	notifier  notify.Notifier
	table     *pricing.Table
	retention time.Duration
	now       func() time.Time
}

// New creates an intake Service. The retention window bounds how long a
// quote stays open before it expires.
func New(
	repo inquiry.Repository,
	comms commlog.Repository,
	notifier notify.Notifier,
	table *pricing.Table,
	retention time.Duration,
) *Service {
	return &Service{
		repo:      repo,
		comms:     comms,
		notifier:  notifier,
		table:     table,
		retention: retention,
		now:       time.Now,
	}
}

// Submit validates a raw payload, resolves the package price, persists
// the inquiry and advances it to quoted. On validation failure it
// returns *ValidationError and performs no side effects; on storage
// failure it returns *PersistenceError.
func (s *Service) Submit(ctx context.Context, req validation.SubmitInquiryRequest) (*inquiry.Inquiry, error) {
	validated, fieldErrs := validation.ValidateSubmitRequest(req, s.table, s.now().UTC())
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	inq := &inquiry.Inquiry{
		FullName:         validated.FullName,
		Email:            validated.Email,
		Phone:            validated.Phone,
		EventType:        validated.EventType,
		EventDate:        validated.EventDate,
		DurationHours:    validated.DurationHours,
		VenueName:        validated.VenueName,
		GuestCount:       validated.GuestCount,
		BackdropColor:    validated.BackdropColor,
		LayoutType:       validated.LayoutType,
		Notes:            validated.Notes,
		QuotedPriceCents: validated.PriceCents,
		Status:           inquiry.StatusSubmitted,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, &PersistenceError{Op: "create inquiry", Err: err}
	}

	// Quoting is synchronous today; the intermediate statuses exist so a
	// later asynchronous quoting step needs no data model change.
	inq = s.advance(ctx, inq, inquiry.StatusUnderReview)
	inq = s.advance(ctx, inq, inquiry.StatusQuoted)

	slog.Info("inquiry submitted",
		"inquiryId", inq.ID,
		"eventType", inq.EventType,
		"durationHours", inq.DurationHours,
		"quotedPriceCents", inq.QuotedPriceCents,
		"status", inq.Status,
	)

	s.logCommunication(ctx, inq.ID, commlog.ChannelWebForm, commlog.DirectionInbound,
		"New inquiry", fmt.Sprintf("%s <%s>, %s, %d hours", inq.FullName, inq.Email, inq.EventType, inq.DurationHours))
	s.logCommunication(ctx, inq.ID, commlog.ChannelSystem, commlog.DirectionOutbound,
		"Inquiry acknowledgement", acknowledgementText)

	go s.notifier.InquiryReceived(context.WithoutCancel(ctx), inq)

	return inq, nil
}

// Accept marks a quoted inquiry as accepted by the customer.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	return s.decide(ctx, id, inquiry.StatusAccepted, "Booking confirmed - Party Favor Photo")
}

// Decline marks a quoted inquiry as declined.
func (s *Service) Decline(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	return s.decide(ctx, id, inquiry.StatusDeclined, "Inquiry declined")
}

func (s *Service) decide(ctx context.Context, id uuid.UUID, to inquiry.Status, subject string) (*inquiry.Inquiry, error) {
	inq, err := s.repo.AdvanceStatus(ctx, id, inquiry.StatusQuoted, to)
	if err != nil {
		return nil, err
	}

	slog.Info("inquiry decided", "inquiryId", inq.ID, "status", inq.Status)
	s.logCommunication(ctx, inq.ID, commlog.ChannelSystem, commlog.DirectionOutbound, subject, "")

	return inq, nil
}

// Get returns a single inquiry.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a filtered page of inquiries.
func (s *Service) List(ctx context.Context, filter inquiry.ListFilter) (*inquiry.ListResult, error) {
	return s.repo.List(ctx, filter)
}

// Communications returns the communication log for an inquiry. The
// inquiry must exist.
func (s *Service) Communications(ctx context.Context, id uuid.UUID) ([]commlog.Communication, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.comms.ListByInquiry(ctx, id)
}

// ExpireQuotes transitions every quote older than the retention window
// to expired and notifies the acknowledgement channel for each.
func (s *Service) ExpireQuotes(ctx context.Context) ([]inquiry.Inquiry, error) {
	cutoff := s.now().UTC().Add(-s.retention)

	expired, err := s.repo.ExpireQuoted(ctx, cutoff)
	if err != nil {
		return nil, &PersistenceError{Op: "expire quotes", Err: err}
	}

	for i := range expired {
		inq := expired[i]
		slog.Info("quote expired", "inquiryId", inq.ID, "quotedPriceCents", inq.QuotedPriceCents)
		s.logCommunication(ctx, inq.ID, commlog.ChannelSystem, commlog.DirectionOutbound,
			"Quote expired", "")
		go s.notifier.QuoteExpired(context.WithoutCancel(ctx), &inq)
	}

	return expired, nil
}

// advance moves a fresh record one lifecycle step forward. The record is
// already durable, so a failed step is logged and the furthest reached
// state returned instead of failing the submission.
func (s *Service) advance(ctx context.Context, inq *inquiry.Inquiry, to inquiry.Status) *inquiry.Inquiry {
	next, err := s.repo.AdvanceStatus(ctx, inq.ID, inq.Status, to)
	if err != nil {
		slog.Error("failed to advance inquiry status",
			"inquiryId", inq.ID,
			"from", inq.Status,
			"to", to,
			"error", err,
		)
		return inq
	}
	return next
}

func (s *Service) logCommunication(ctx context.Context, inquiryID uuid.UUID, ch commlog.Channel, dir commlog.Direction, subject, content string) {
	c := &commlog.Communication{
		InquiryID: inquiryID,
		Channel:   ch,
		Direction: dir,
		Subject:   subject,
		Content:   content,
	}
	if err := s.comms.Record(ctx, c); err != nil {
		// The log is advisory; losing an entry never fails the operation.
		slog.Error("failed to record communication", "inquiryId", inquiryID, "error", err)
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
