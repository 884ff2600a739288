package http

import (
	"net/http"

	"filmoteka/internal/usecase"
	"filmoteka/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewFavoriteHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// ToggleFavorite godoc
// @Summary      Toggle a favorite
// @Description  Adds the movie to favorites if absent, removes it if present. The response reports the resulting state.
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        movie_id path string true "Movie ID"
// @Success      200  {object}  map[string]interface{}  "removed"
// @Success      201  {object}  map[string]interface{}  "added"
// @Failure      404  {object}  map[string]string
// @Router       /favorites/{movie_id} [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("movie_id")

	added, err := h.interactionUseCase.ToggleFavorite(userID, movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	if added {
		c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites", "is_favorite": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "is_favorite": false})
}

// RemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Security     BearerAuth
// @Param        movie_id path string true "Movie ID"
// @Success      204
// @Failure      404  {object}  map[string]string  "movie missing or not in favorites"
// @Router       /favorites/{movie_id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("movie_id")

	if err := h.interactionUseCase.RemoveFavorite(userID, movieID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites godoc
// @Summary      List the user's favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID := c.GetString("user_id")

	movies, err := h.interactionUseCase.ListFavorites(userID)
	if err != nil {
		h.logger.Error("failed to list favorites: %v", err)
		respondError(c, err)
		return
	}

	result := make([]map[string]interface{}, 0, len(movies))
	for _, movie := range movies {
		result = append(result, formatMovieResponse(movie, true))
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": result,
		"count":  len(movies),
	})
}

// FavoriteCount godoc
// @Summary      Favorite count for a movie
// @Tags         favorites
// @Produce      json
// @Param        id path string true "Movie ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies/{id}/favorites/count [get]
func (h *FavoriteHandler) FavoriteCount(c *gin.Context) {
	movieID := c.Param("id")

	count, err := h.interactionUseCase.FavoriteCount(movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movie_id": movieID, "favorites_count": count})
}
