package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserActivityModel rows are append-only: no UpdatedAt, no delete path in
// the repository.
type UserActivityModel struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string `gorm:"type:uuid;not null;index:idx_activity_user_type" json:"user_id"`
	MovieID      string `gorm:"type:uuid;not null;index" json:"movie_id"`
	ActivityType string `gorm:"type:varchar(50);not null;default:'view';index:idx_activity_user_type" json:"activity_type"`

	Movie MovieModel `gorm:"foreignKey:MovieID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (UserActivityModel) TableName() string {
	return "user_activities"
}

func (a *UserActivityModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
