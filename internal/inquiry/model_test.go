package inquiry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partyfavorphoto/intake/internal/inquiry"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to inquiry.Status
	}{
		{inquiry.StatusSubmitted, inquiry.StatusUnderReview},
		{inquiry.StatusUnderReview, inquiry.StatusQuoted},
		{inquiry.StatusQuoted, inquiry.StatusAccepted},
		{inquiry.StatusQuoted, inquiry.StatusDeclined},
		{inquiry.StatusQuoted, inquiry.StatusExpired},
	}

	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}
}

func TestStatus_NoBackwardOrSkippingTransitions(t *testing.T) {
	denied := []struct {
		from, to inquiry.Status
	}{
		// Accepting or declining requires a quote first.
		{inquiry.StatusSubmitted, inquiry.StatusAccepted},
		{inquiry.StatusSubmitted, inquiry.StatusDeclined},
		{inquiry.StatusSubmitted, inquiry.StatusQuoted},
		{inquiry.StatusUnderReview, inquiry.StatusAccepted},
		{inquiry.StatusUnderReview, inquiry.StatusDeclined},
		// No backward moves.
		{inquiry.StatusUnderReview, inquiry.StatusSubmitted},
		{inquiry.StatusQuoted, inquiry.StatusUnderReview},
		{inquiry.StatusQuoted, inquiry.StatusSubmitted},
		// Self-loops are not transitions.
		{inquiry.StatusSubmitted, inquiry.StatusSubmitted},
		{inquiry.StatusQuoted, inquiry.StatusQuoted},
	}

	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestStatus_TerminalStatesAbsorb(t *testing.T) {
	terminals := []inquiry.Status{
		inquiry.StatusAccepted,
		inquiry.StatusDeclined,
		inquiry.StatusExpired,
	}
	all := []inquiry.Status{
		inquiry.StatusSubmitted,
		inquiry.StatusUnderReview,
		inquiry.StatusQuoted,
		inquiry.StatusAccepted,
		inquiry.StatusDeclined,
		inquiry.StatusExpired,
	}

	for _, term := range terminals {
		assert.True(t, term.Terminal())
		for _, next := range all {
			assert.False(t, term.CanTransitionTo(next), "%s -> %s should be denied", term, next)
		}
	}

	assert.False(t, inquiry.StatusSubmitted.Terminal())
	assert.False(t, inquiry.StatusQuoted.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, inquiry.StatusUnderReview.Valid())
	assert.False(t, inquiry.Status("cancelled").Valid())
	assert.False(t, inquiry.Status("").Valid())
}

func TestEventType_Valid(t *testing.T) {
	for _, et := range inquiry.EventTypes {
		assert.True(t, et.Valid(), "%s", et)
	}

	assert.False(t, inquiry.EventType("bar-mitzvah").Valid())
	assert.False(t, inquiry.EventType("").Valid())
	assert.False(t, inquiry.EventType("Wedding").Valid(), "event types are case sensitive")
}
