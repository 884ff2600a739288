package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string  `gorm:"type:uuid;primary_key" json:"id"`
	Username  string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Password  string  `gorm:"not null" json:"-"`
	Role      string  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	AvatarURL string  `gorm:"type:varchar(500)" json:"avatar_url"`
	IsActive  bool    `gorm:"default:true" json:"is_active"`

	PreferredTags []TagModel `gorm:"many2many:user_preferred_tags;joinForeignKey:UserID;joinReferences:TagID" json:"preferred_tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// FavoriteModel is a user<->movie "liked" edge. The composite unique index
// makes concurrent toggles safe: the losing insert surfaces as a duplicate
// key and is treated as "already present".
type FavoriteModel struct {
	ID      string `gorm:"type:uuid;primary_key" json:"id"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:uniq_favorite_user_movie;index" json:"user_id"`
	MovieID string `gorm:"type:uuid;not null;uniqueIndex:uniq_favorite_user_movie;index" json:"movie_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (FavoriteModel) TableName() string {
	return "movie_likes"
}

func (f *FavoriteModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
