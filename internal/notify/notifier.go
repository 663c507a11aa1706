// Package notify delivers acknowledgements for inquiry lifecycle events.
// Delivery is fire-and-forget: a failed notification is logged and never
// rolls back the inquiry it refers to.
package notify

import (
	"context"

	"github.com/partyfavorphoto/intake/internal/inquiry"
)

// Notifier is the acknowledgement channel for inquiry events.
type Notifier interface {
	InquiryReceived(ctx context.Context, inq *inquiry.Inquiry)
	QuoteExpired(ctx context.Context, inq *inquiry.Inquiry)
}

// Noop discards every notification. Used when no channel is configured.
type Noop struct{}

func (Noop) InquiryReceived(context.Context, *inquiry.Inquiry) {}
func (Noop) QuoteExpired(context.Context, *inquiry.Inquiry)    {}
