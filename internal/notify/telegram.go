package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/partyfavorphoto/intake/internal/inquiry"
)

const sendTimeout = 15 * time.Second

// TelegramNotifier posts inquiry alerts to the staff chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and
// staff chat. An empty token yields a disabled notifier rather than an
// error, so the service runs without a configured channel.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		slog.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// InquiryReceived alerts staff about a freshly quoted inquiry.
func (n *TelegramNotifier) InquiryReceived(ctx context.Context, inq *inquiry.Inquiry) {
	text := fmt.Sprintf(
		"New inquiry from %s\nEvent: %s on %s\nPackage: %d hours, quoted %s",
		inq.FullName,
		inq.EventType,
		inq.EventDate.Format("Jan 2, 2006"),
		inq.DurationHours,
		formatPrice(inq.QuotedPriceCents),
	)
	n.send(ctx, inq.ID.String(), text)
}

// QuoteExpired alerts staff that a quote lapsed without a decision.
func (n *TelegramNotifier) QuoteExpired(ctx context.Context, inq *inquiry.Inquiry) {
	text := fmt.Sprintf(
		"Quote expired without a decision\nInquiry: %s (%s)\nEvent: %s on %s",
		inq.FullName,
		inq.Email,
		inq.EventType,
		inq.EventDate.Format("Jan 2, 2006"),
	)
	n.send(ctx, inq.ID.String(), text)
}

func (n *TelegramNotifier) send(ctx context.Context, inquiryID, text string) {
	if n.bot == nil {
		slog.Debug("notification skipped, telegram disabled", "inquiryId", inquiryID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := tgbotapi.NewMessage(n.chatID, text)

	// Telegram hiccups are common enough to be worth a couple of retries.
	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		_, err := n.bot.Send(msg)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		slog.Error("failed to send telegram notification",
			"inquiryId", inquiryID,
			"error", err,
		)
	}
}

func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
