package http

import (
	"net/http"

	"filmoteka/internal/entity"
	"filmoteka/internal/usecase"
	"filmoteka/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		logger:        logger,
	}
}

type ReviewRequest struct {
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
}

// CreateReview godoc
// @Summary      Review a movie
// @Description  One review per user per movie. Rating is an integer from 1 to 10.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Param        review body ReviewRequest true "Review"
// @Success      201  {object}  entity.Review
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /movies/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	review, err := h.reviewUseCase.CreateReview(userID, movieID, req.Text, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviews godoc
// @Summary      List reviews for a movie
// @Tags         reviews
// @Produce      json
// @Param        movie query string true "Movie ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	movieID := c.Query("movie")

	reviews, err := h.reviewUseCase.ListByMovie(movieID)
	if err != nil {
		h.logger.Error("failed to list reviews: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// UpdateReview godoc
// @Summary      Edit a review
// @Description  Only the author can edit their review.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Param        review body ReviewRequest true "Review"
// @Success      200  {object}  entity.Review
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	review, err := h.reviewUseCase.UpdateReview(reviewID, userID, req.Text, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Description  The author, moderators and admins can delete.
// @Tags         reviews
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID := c.GetString("user_id")
	role := entity.UserRole(c.GetString("role"))
	reviewID := c.Param("id")

	if err := h.reviewUseCase.DeleteReview(reviewID, userID, role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
