package persistent

import (
	"filmoteka/internal/entity"
	"filmoteka/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id string) (*entity.Review, error)
	GetByUserAndMovie(userID, movieID string) (*entity.Review, error)
	ListByMovie(movieID string) ([]*entity.Review, error)
	Update(review *entity.Review) error
	Delete(id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create relies on the (user_id, movie_id) unique index: a racing duplicate
// insert comes back as entity.ErrConflict rather than a driver error.
func (r *reviewRepository) Create(review *entity.Review) error {
	reviewModel := ToReviewModel(review)
	if err := r.db.Create(reviewModel).Error; err != nil {
		return translateError(err)
	}

	return r.reload(reviewModel.ID, review)
}

func (r *reviewRepository) GetByID(id string) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.db.Preload("User").Where("id = ?", id).First(&reviewModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) GetByUserAndMovie(userID, movieID string) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	err := r.db.Preload("User").
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&reviewModel).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) ListByMovie(movieID string) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel
	err := r.db.Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToReviewEntity(&reviewModels[i])
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *entity.Review) error {
	err := r.db.Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"text":   review.Text,
			"rating": review.Rating,
		}).Error
	if err != nil {
		return translateError(err)
	}

	return r.reload(review.ID, review)
}

func (r *reviewRepository) Delete(id string) error {
	result := r.db.Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) reload(id string, into *entity.Review) error {
	var reviewModel model.ReviewModel
	if err := r.db.Preload("User").Where("id = ?", id).First(&reviewModel).Error; err != nil {
		return translateError(err)
	}
	*into = *ToReviewEntity(&reviewModel)
	return nil
}
