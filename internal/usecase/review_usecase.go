package usecase

import (
	"errors"
	"fmt"
	"strings"

	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"
	"filmoteka/pkg/logger"
)

type ReviewUseCase interface {
	CreateReview(userID, movieID, text string, rating int) (*entity.Review, error)
	UpdateReview(reviewID, userID, text string, rating int) (*entity.Review, error)
	DeleteReview(reviewID, userID string, role entity.UserRole) error
	ListByMovie(movieID string) ([]*entity.Review, error)
}

type reviewUseCase struct {
	reviewRepo   persistent.ReviewRepository
	movieRepo    persistent.MovieRepository
	activityRepo persistent.ActivityRepository
	logger       *logger.Logger
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	movieRepo persistent.MovieRepository,
	activityRepo persistent.ActivityRepository,
	log *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo:   reviewRepo,
		movieRepo:    movieRepo,
		activityRepo: activityRepo,
		logger:       log,
	}
}

// CreateReview validates before touching storage: a bad rating never reaches
// the database. Each user gets at most one review per movie.
func (uc *reviewUseCase) CreateReview(userID, movieID, text string, rating int) (*entity.Review, error) {
	if err := validateReview(text, rating); err != nil {
		return nil, err
	}

	exists, err := uc.movieRepo.Exists(movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("movie not found: %w", entity.ErrNotFound)
	}

	_, err = uc.reviewRepo.GetByUserAndMovie(userID, movieID)
	if err == nil {
		return nil, fmt.Errorf("you have already reviewed this movie: %w", entity.ErrConflict)
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	review := &entity.Review{
		UserID:  userID,
		MovieID: movieID,
		Text:    strings.TrimSpace(text),
		Rating:  rating,
	}

	if err := uc.reviewRepo.Create(review); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			// Duplicate slipped in between the check and the insert.
			return nil, fmt.Errorf("you have already reviewed this movie: %w", entity.ErrConflict)
		}
		return nil, err
	}

	if err := uc.activityRepo.Create(userID, movieID, entity.ActivityReview); err != nil {
		uc.logger.Warn("failed to record review activity: %v", err)
	}

	return review, nil
}

func (uc *reviewUseCase) UpdateReview(reviewID, userID, text string, rating int) (*entity.Review, error) {
	if err := validateReview(text, rating); err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("you can only edit your own reviews: %w", entity.ErrForbidden)
	}

	existing.Text = strings.TrimSpace(text)
	existing.Rating = rating
	if err := uc.reviewRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteReview allows the author, moderators and admins.
func (uc *reviewUseCase) DeleteReview(reviewID, userID string, role entity.UserRole) error {
	existing, err := uc.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}

	if existing.UserID != userID && role != entity.RoleAdmin && role != entity.RoleModerator {
		return fmt.Errorf("you can only delete your own reviews: %w", entity.ErrForbidden)
	}

	return uc.reviewRepo.Delete(reviewID)
}

func (uc *reviewUseCase) ListByMovie(movieID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByMovie(movieID)
}

func validateReview(text string, rating int) error {
	if rating < entity.MinReviewRating || rating > entity.MaxReviewRating {
		return fmt.Errorf("rating must be between %d and %d: %w",
			entity.MinReviewRating, entity.MaxReviewRating, entity.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("review text is required: %w", entity.ErrValidation)
	}
	return nil
}
