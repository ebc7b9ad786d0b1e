package entity

// ChannelProfile is the public channel view: identity fields joined with
// subscription counts and the viewer's subscription flag. Computed on demand,
// never persisted.
type ChannelProfile struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	AvatarURL        string `json:"avatar"`
	CoverImageURL    string `json:"coverImage,omitempty"`
	SubscribersCount int64  `json:"subscribersCount"`
	SubscribedToCount int64 `json:"channelsSubscribedToCount"`
	IsSubscribed     bool   `json:"isSubscribed"`
}

// ChannelStats is the dashboard aggregate for a channel owner.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}
