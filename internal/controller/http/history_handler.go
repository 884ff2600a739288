package http

import (
	"net/http"
	"strconv"

	"filmoteka/internal/usecase"
	"filmoteka/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewHistoryHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// RecordView godoc
// @Summary      Record a movie view
// @Description  Appends a view entry to the user's history. Repeat views of the same movie are deduplicated.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id}/view [post]
func (h *HistoryHandler) RecordView(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("id")

	recorded, err := h.interactionUseCase.RecordView(userID, movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": recorded})
}

// GetHistory godoc
// @Summary      The user's activity history
// @Description  Recent views, favorites and reviews, newest first.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries (default 50)"
// @Success      200  {object}  map[string]interface{}
// @Router       /history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := h.interactionUseCase.History(userID, limit)
	if err != nil {
		h.logger.Error("failed to fetch history: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": activities,
		"count":   len(activities),
	})
}
