// Package validation checks inbound inquiry payloads. Every rule is
// evaluated independently so a single submission surfaces all problems
// at once.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/partyfavorphoto/intake/internal/inquiry"
	"github.com/partyfavorphoto/intake/internal/pricing"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitInquiryRequest is the raw submission payload as received from
// the caller, before any parsing.
type SubmitInquiryRequest struct {
	FullName      string
	Email         string
	Phone         string
	EventType     string
	EventDate     string
	DurationHours int
	VenueName     string
	GuestCount    *int
	BackdropColor string
	LayoutType    string
	Notes         string
}

// ValidatedInquiry is a submission that passed every rule, with parsed
// values and the package price already resolved.
type ValidatedInquiry struct {
	FullName      string
	Email         string
	Phone         *string
	EventType     inquiry.EventType
	EventDate     time.Time
	DurationHours int
	PriceCents    int64
	VenueName     *string
	GuestCount    *int
	BackdropColor *string
	LayoutType    *string
	Notes         *string
}

// ValidateSubmitRequest validates a raw submission against the pricing
// table. On success it returns the parsed inquiry and a nil error slice;
// otherwise it returns every field error found, in field order.
func ValidateSubmitRequest(req SubmitInquiryRequest, table *pricing.Table, now time.Time) (*ValidatedInquiry, []FieldError) {
	var errs []FieldError
	out := ValidatedInquiry{
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		DurationHours: req.DurationHours,
		Phone:         optional(req.Phone),
		VenueName:     optional(req.VenueName),
		GuestCount:    req.GuestCount,
		BackdropColor: optional(req.BackdropColor),
		LayoutType:    optional(req.LayoutType),
		Notes:         optional(req.Notes),
	}

	if out.FullName == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "fullName is required"})
	}

	if out.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(out.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	if req.EventType == "" {
		errs = append(errs, FieldError{Field: "eventType", Message: "eventType is required"})
	} else if et := inquiry.EventType(req.EventType); !et.Valid() {
		errs = append(errs, FieldError{Field: "eventType", Message: "eventType must be one of: " + eventTypeList()})
	} else {
		out.EventType = et
	}

	if req.EventDate == "" {
		errs = append(errs, FieldError{Field: "eventDate", Message: "eventDate is required"})
	} else if eventDate, err := time.Parse(time.RFC3339, req.EventDate); err != nil {
		errs = append(errs, FieldError{Field: "eventDate", Message: "eventDate must be an RFC 3339 date-time"})
	} else if !eventDate.After(now) {
		errs = append(errs, FieldError{Field: "eventDate", Message: "eventDate must be in the future"})
	} else {
		out.EventDate = eventDate
	}

	if req.DurationHours == 0 {
		errs = append(errs, FieldError{Field: "durationHours", Message: "durationHours is required"})
	} else if price, err := table.PriceFor(req.DurationHours); err != nil {
		errs = append(errs, FieldError{Field: "durationHours", Message: "no package is offered for the requested duration"})
	} else {
		out.PriceCents = price
	}

	if req.GuestCount != nil && *req.GuestCount < 0 {
		errs = append(errs, FieldError{Field: "guestCount", Message: "guestCount must not be negative"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &out, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func eventTypeList() string {
	names := make([]string, 0, len(inquiry.EventTypes))
	for _, et := range inquiry.EventTypes {
		names = append(names, string(et))
	}
	return strings.Join(names, ", ")
}
