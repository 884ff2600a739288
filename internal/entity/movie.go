package entity

import "time"

type Director struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	PosterURL   string    `json:"poster_url"`
	Director    *Director `json:"director,omitempty"`
	Actors      []Actor   `json:"actors"`
	Tags        []Tag     `json:"tags"`
	Reviews     []Review  `json:"reviews,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieInput carries the writable movie fields for catalog management.
// Related entities are referenced by id; unknown ids fail validation before
// anything is written.
type MovieInput struct {
	Title       string
	ReleaseDate time.Time
	Description string
	Rating      float64
	PosterURL   string
	DirectorID  *string
	ActorIDs    []string
	TagIDs      []string
}
