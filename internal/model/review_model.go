package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel carries the one-review-per-user-per-movie invariant as a
// composite unique index; the database is the final arbiter under
// concurrent inserts.
type ReviewModel struct {
	ID      string `gorm:"type:uuid;primary_key" json:"id"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:uniq_review_user_movie" json:"user_id"`
	MovieID string `gorm:"type:uuid;not null;uniqueIndex:uniq_review_user_movie;index" json:"movie_id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`

	User UserModel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

func (r *ReviewModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
