package post

import "time"

// Post is a shooting-range post with its current position and an
// optional target position. Target coordinates stay nil when the
// client never submitted them.
type Post struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CurrentLat float64   `json:"current_lat"`
	CurrentLng float64   `json:"current_lng"`
	TargetLat  *float64  `json:"target_lat"`
	TargetLng  *float64  `json:"target_lng"`
	CreatedAt  time.Time `json:"created_at"`
}
