package inquiry

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an inquiry.
type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusQuoted      Status = "quoted"
	StatusAccepted    Status = "accepted"
	StatusDeclined    Status = "declined"
	StatusExpired     Status = "expired"
)

// transitions maps each status to the statuses reachable from it.
// Terminal statuses have no entries.
var transitions = map[Status][]Status{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusQuoted},
	StatusQuoted:      {StatusAccepted, StatusDeclined, StatusExpired},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusQuoted,
		StatusAccepted, StatusDeclined, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Transitions are strictly forward and never skip the quoted stage.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EventType is the kind of event an inquiry is for.
type EventType string

const (
	EventWedding     EventType = "wedding"
	EventCorporate   EventType = "corporate"
	EventBirthday    EventType = "birthday"
	EventAnniversary EventType = "anniversary"
	EventGraduation  EventType = "graduation"
	EventOther       EventType = "other"
)

// EventTypes lists every accepted event type.
var EventTypes = []EventType{
	EventWedding,
	EventCorporate,
	EventBirthday,
	EventAnniversary,
	EventGraduation,
	EventOther,
}

// Valid reports whether t is a member of the fixed event type set.
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Inquiry is one customer's request for photo-booth service.
// The repository owns ID and CreatedAt; the intake service owns Status
// and QuotedPriceCents. Nothing else mutates a record after creation.
type Inquiry struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	Phone            *string
	EventType        EventType
	EventDate        time.Time
	DurationHours    int
	VenueName        *string
	GuestCount       *int
	BackdropColor    *string
	LayoutType       *string
	Notes            *string
	QuotedPriceCents int64
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListFilter holds optional filters and pagination for listing inquiries.
type ListFilter struct {
	Status    *Status
	EventType *EventType
	Page      int // default 1
	Limit     int // default 20, capped at 100
}

// ListResult holds the result of a paginated list query.
type ListResult struct {
	Inquiries []Inquiry
	Total     int
	Page      int
	Limit     int
}
