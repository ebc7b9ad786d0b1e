package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithOwner is the listing shape for a video's comment feed.
type CommentWithOwner struct {
	Comment
	Owner Owner `json:"owner"`
}
