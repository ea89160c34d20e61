package point

import "time"

// Point is a categorized map marker submitted by a client. CreatedAt is
// zero on the insert return path of the local backend, which does not
// report the stored timestamp.
type Point struct {
	ID        int64     `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	CreatorID string    `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}
