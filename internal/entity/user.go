package entity

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleUser      UserRole = "user"
)

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	Password      string    `json:"-"`
	Role          UserRole  `json:"role"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	PreferredTags []Tag     `json:"preferred_tags"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
