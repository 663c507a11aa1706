// Package sweeper runs the periodic quote expiry pass.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/partyfavorphoto/intake/internal/inquiry"
)

// QuoteExpirer is the slice of the intake service the sweeper needs.
type QuoteExpirer interface {
	ExpireQuotes(ctx context.Context) ([]inquiry.Inquiry, error)
}

// Sweeper polls for quoted inquiries whose retention window has lapsed
// and expires them.
type Sweeper struct {
	expirer  QuoteExpirer
	interval time.Duration
}

// New creates a new Sweeper.
func New(expirer QuoteExpirer, interval time.Duration) *Sweeper {
	return &Sweeper{
		expirer:  expirer,
		interval: interval,
	}
}

// Start begins the sweep loop. It blocks until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	slog.Info("quote sweeper started", "interval", s.interval.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("quote sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.expirer.ExpireQuotes(ctx)
	if err != nil {
		slog.Error("sweeper: failed to expire quotes", "error", err)
		return
	}

	if len(expired) > 0 {
		slog.Info("sweeper: quotes expired", "count", len(expired))
	}
}
