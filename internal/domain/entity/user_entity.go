package entity

import (
	"time"
)

// User is the aggregate root for the identity domain. Password holds a bcrypt
// hash and RefreshToken the single active refresh token; both are excluded
// from JSON so they can never appear in an outbound response.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	Password      string    `json:"-"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage,omitempty"`
	RefreshToken  string    `json:"-"`
	WatchHistory  []string  `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Owner is the condensed public view of a user attached to videos, comments
// and subscription listings.
type Owner struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar"`
	FullName  string `json:"fullName"`
}

// AsOwner projects the public sub-record of u.
func (u *User) AsOwner() Owner {
	return Owner{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL, FullName: u.FullName}
}
