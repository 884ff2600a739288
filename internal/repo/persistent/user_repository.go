package persistent

import (
	"errors"

	"filmoteka/internal/entity"
	"filmoteka/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePreferredTags(userID string, tagIDs []string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return translateError(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Preload("PreferredTags").Where("id = ?", id).First(&userModel).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Where("username = ?", username).First(&userModel).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	updates := map[string]interface{}{
		"username":   user.Username,
		"avatar_url": user.AvatarURL,
		"is_active":  user.IsActive,
	}
	if user.Email != "" {
		updates["email"] = user.Email
	}

	err := r.db.Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(updates).Error
	if err != nil {
		return translateError(err)
	}

	updated, err := r.GetByID(user.ID)
	if err != nil {
		return err
	}
	*user = *updated
	return nil
}

// UpdatePreferredTags replaces the user's preferred-tag set. Unknown tag ids
// are a validation failure; nothing is written in that case.
func (r *userRepository) UpdatePreferredTags(userID string, tagIDs []string) (*entity.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var userModel model.UserModel
		if err := tx.Where("id = ?", userID).First(&userModel).Error; err != nil {
			return err
		}

		var tags []model.TagModel
		if len(tagIDs) > 0 {
			if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
				return err
			}
			if len(tags) != len(tagIDs) {
				return entity.ErrValidation
			}
		}

		return tx.Model(&userModel).Association("PreferredTags").Replace(tags)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return r.GetByID(userID)
}
