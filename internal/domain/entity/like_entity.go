package entity

import "time"

// LikeTarget enumerates the entities a like can attach to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like is a toggleable (owner, target) pair; at most one per pair.
type Like struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"likedBy"`
	Target    LikeTarget `json:"targetType"`
	TargetID  string     `json:"targetId"`
	CreatedAt time.Time  `json:"createdAt"`
}
