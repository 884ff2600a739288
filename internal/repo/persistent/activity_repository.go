package persistent

import (
	"filmoteka/internal/entity"
	"filmoteka/internal/model"

	"gorm.io/gorm"
)

// ActivityRepository is append-only: entries are created and listed, never
// updated or deleted.
type ActivityRepository interface {
	Create(userID, movieID string, activityType entity.ActivityType) error
	ListByUser(userID string, limit int) ([]*entity.UserActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(userID, movieID string, activityType entity.ActivityType) error {
	activity := &model.UserActivityModel{
		UserID:       userID,
		MovieID:      movieID,
		ActivityType: string(activityType),
	}
	return r.db.Create(activity).Error
}

func (r *activityRepository) ListByUser(userID string, limit int) ([]*entity.UserActivity, error) {
	var activityModels []model.UserActivityModel
	query := r.db.Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]*entity.UserActivity, len(activityModels))
	for i := range activityModels {
		activities[i] = ToActivityEntity(&activityModels[i])
	}
	return activities, nil
}
