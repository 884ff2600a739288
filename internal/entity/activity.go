package entity

import "time"

type ActivityType string

const (
	ActivityView     ActivityType = "view"
	ActivityFavorite ActivityType = "favorite"
	ActivityReview   ActivityType = "review"
)

// UserActivity is an append-only log entry; it is never updated or deleted
// after creation.
type UserActivity struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	MovieID      string       `json:"movie_id"`
	MovieTitle   string       `json:"movie_title,omitempty"`
	ActivityType ActivityType `json:"activity_type"`
	CreatedAt    time.Time    `json:"created_at"`
}
