package entity

import "time"

// Subscription records that SubscriberID follows the channel of ChannelID.
// The (subscriber, channel) pair is unique.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber"`
	ChannelID    string    `json:"channel"`
	CreatedAt    time.Time `json:"createdAt"`
}
