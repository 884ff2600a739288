package http

import (
	"errors"
	"net/http"

	"filmoteka/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps the shared sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message so storage details never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"kind": "not_found", "error": err.Error()})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"kind": "conflict", "error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"kind": "forbidden", "error": err.Error()})
	case errors.Is(err, entity.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"kind": "internal", "error": "internal server error"})
	}
}

func formatMovieResponse(movie *entity.Movie, isFavorite bool) map[string]interface{} {
	actors := make([]map[string]interface{}, 0, len(movie.Actors))
	for _, a := range movie.Actors {
		actors = append(actors, map[string]interface{}{"id": a.ID, "name": a.Name})
	}

	tags := make([]map[string]interface{}, 0, len(movie.Tags))
	for _, t := range movie.Tags {
		tags = append(tags, map[string]interface{}{"id": t.ID, "name": t.Name})
	}

	reviews := make([]map[string]interface{}, 0, len(movie.Reviews))
	for _, r := range movie.Reviews {
		reviews = append(reviews, map[string]interface{}{
			"id":     r.ID,
			"user":   r.Username,
			"text":   r.Text,
			"rating": r.Rating,
		})
	}

	// every key is always present so clients see a stable shape; a movie
	// without a director carries an explicit null
	var director map[string]interface{}
	if movie.Director != nil {
		director = map[string]interface{}{
			"id":   movie.Director.ID,
			"name": movie.Director.Name,
		}
	}

	return map[string]interface{}{
		"id":           movie.ID,
		"title":        movie.Title,
		"release_date": movie.ReleaseDate.Format("2006-01-02"),
		"description":  movie.Description,
		"rating":       movie.Rating,
		"poster_url":   movie.PosterURL,
		"director":     director,
		"actors":       actors,
		"tags":         tags,
		"reviews":      reviews,
		"is_favorite":  isFavorite,
		"created_at":   movie.CreatedAt,
		"updated_at":   movie.UpdatedAt,
	}
}
