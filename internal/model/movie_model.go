package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovieModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null;index" json:"title"`
	ReleaseDate time.Time `gorm:"type:date;not null;index" json:"release_date"`
	Description string    `gorm:"type:text" json:"description"`
	Rating      float64   `gorm:"not null;default:0;index;check:rating >= 0 AND rating <= 10" json:"rating"`
	PosterURL   string    `gorm:"type:varchar(500)" json:"poster_url"`
	DirectorID  *string   `gorm:"type:uuid;index" json:"director_id"`

	Director *DirectorModel `gorm:"foreignKey:DirectorID;constraint:OnDelete:SET NULL" json:"director,omitempty"`
	Actors   []ActorModel   `gorm:"many2many:movie_actors;joinForeignKey:MovieID;joinReferences:ActorID" json:"actors,omitempty"`
	Tags     []TagModel     `gorm:"many2many:movie_tags;joinForeignKey:MovieID;joinReferences:TagID" json:"tags,omitempty"`
	Reviews  []ReviewModel  `gorm:"foreignKey:MovieID" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MovieModel) TableName() string {
	return "movies"
}

func (m *MovieModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type DirectorModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DirectorModel) TableName() string {
	return "directors"
}

func (d *DirectorModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

type ActorModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ActorModel) TableName() string {
	return "actors"
}

func (a *ActorModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type TagModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (t *TagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
