// Package commlog records customer-facing communications tied to an
// inquiry, inbound and outbound, for later review by staff.
package commlog

import (
	"time"

	"github.com/google/uuid"
)

// Direction of a communication relative to the business.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Channel a communication travelled over.
type Channel string

const (
	ChannelWebForm  Channel = "web_form"
	ChannelTelegram Channel = "telegram"
	ChannelSystem   Channel = "system"
)

// Communication is one logged message about an inquiry.
type Communication struct {
	ID        uuid.UUID
	InquiryID uuid.UUID
	Channel   Channel
	Direction Direction
	Subject   string
	Content   string
	CreatedAt time.Time
}
