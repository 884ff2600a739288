package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"
	"filmoteka/pkg/logger"
	"filmoteka/pkg/queue"
)

const (
	favoriteCountKeyPrefix = "movie:favorites:"
	viewDedupeKeyPrefix    = "movie:viewed:"
	viewDedupeTTL          = 365 * 24 * time.Hour
)

type InteractionUseCase interface {
	ToggleFavorite(userID, movieID string) (bool, error)
	AddFavorite(userID, movieID string) error
	RemoveFavorite(userID, movieID string) error
	ListFavorites(userID string) ([]*entity.Movie, error)
	FavoriteCount(movieID string) (int64, error)

	RecordView(userID, movieID string) (bool, error)
	History(userID string, limit int) ([]*entity.UserActivity, error)
}

type interactionUseCase struct {
	movieRepo    persistent.MovieRepository
	activityRepo persistent.ActivityRepository
	redisClient  *redis.Client
	queueClient  *queue.Client
	logger       *logger.Logger
}

func NewInteractionUseCase(
	movieRepo persistent.MovieRepository,
	activityRepo persistent.ActivityRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	log *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		movieRepo:    movieRepo,
		activityRepo: activityRepo,
		redisClient:  redisClient,
		queueClient:  queueClient,
		logger:       log,
	}
}

// ToggleFavorite flips the favorite edge for the user and reports the
// resulting state: true when the movie ended up in favorites, false when it
// was removed. A concurrent insert of the same edge counts as "added".
func (uc *interactionUseCase) ToggleFavorite(userID, movieID string) (bool, error) {
	exists, err := uc.movieRepo.Exists(movieID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("movie not found: %w", entity.ErrNotFound)
	}

	isFavorite, err := uc.movieRepo.IsFavorite(userID, movieID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		if _, err := uc.movieRepo.DeleteFavorite(userID, movieID); err != nil {
			return false, err
		}
		uc.invalidateFavoriteCount(movieID)
		return false, nil
	}

	if err := uc.movieRepo.CreateFavorite(userID, movieID); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			// Someone inserted the edge between our check and the
			// write. The movie is in favorites either way.
			return true, nil
		}
		return false, err
	}

	uc.invalidateFavoriteCount(movieID)
	uc.recordActivity(userID, movieID, entity.ActivityFavorite)

	return true, nil
}

// AddFavorite ensures the edge exists. Adding an already-present favorite is
// a no-op, not an error.
func (uc *interactionUseCase) AddFavorite(userID, movieID string) error {
	exists, err := uc.movieRepo.Exists(movieID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("movie not found: %w", entity.ErrNotFound)
	}

	if err := uc.movieRepo.CreateFavorite(userID, movieID); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil
		}
		return err
	}

	uc.invalidateFavoriteCount(movieID)
	uc.recordActivity(userID, movieID, entity.ActivityFavorite)

	return nil
}

func (uc *interactionUseCase) RemoveFavorite(userID, movieID string) error {
	exists, err := uc.movieRepo.Exists(movieID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("movie not found: %w", entity.ErrNotFound)
	}

	removed, err := uc.movieRepo.DeleteFavorite(userID, movieID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("movie is not in favorites: %w", entity.ErrNotFound)
	}

	uc.invalidateFavoriteCount(movieID)
	return nil
}

func (uc *interactionUseCase) ListFavorites(userID string) ([]*entity.Movie, error) {
	return uc.movieRepo.ListFavorites(userID)
}

func (uc *interactionUseCase) FavoriteCount(movieID string) (int64, error) {
	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cached, err := uc.redisClient.Get(ctx, favoriteCountKeyPrefix+movieID).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		}
	}

	count, err := uc.movieRepo.FavoriteCount(movieID)
	if err != nil {
		return 0, err
	}

	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		uc.redisClient.Set(ctx, favoriteCountKeyPrefix+movieID, count, time.Hour)
	}

	return count, nil
}

// invalidateFavoriteCount drops the cached count after an edge mutation. An
// increment on a cold key would fabricate a counter unrelated to the store,
// so the next read repopulates from the database instead.
func (uc *interactionUseCase) invalidateFavoriteCount(movieID string) {
	if uc.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	uc.redisClient.Del(ctx, favoriteCountKeyPrefix+movieID)
}

// RecordView appends a view to the user's history once per movie: repeat
// views within the dedupe window report false and write nothing.
func (uc *interactionUseCase) RecordView(userID, movieID string) (bool, error) {
	exists, err := uc.movieRepo.Exists(movieID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("movie not found: %w", entity.ErrNotFound)
	}

	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		key := fmt.Sprintf("%s%s:%s", viewDedupeKeyPrefix, userID, movieID)
		set, err := uc.redisClient.SetNX(ctx, key, "1", viewDedupeTTL).Result()
		if err != nil {
			uc.logger.Warn("view dedupe check failed: %v", err)
		} else if !set {
			return false, nil
		}
	}

	if err := uc.activityRepo.Create(userID, movieID, entity.ActivityView); err != nil {
		return false, err
	}

	uc.publishActivity(userID, movieID, entity.ActivityView)
	return true, nil
}

func (uc *interactionUseCase) History(userID string, limit int) ([]*entity.UserActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.activityRepo.ListByUser(userID, limit)
}

func (uc *interactionUseCase) recordActivity(userID, movieID string, activityType entity.ActivityType) {
	if err := uc.activityRepo.Create(userID, movieID, activityType); err != nil {
		uc.logger.Warn("failed to record %s activity: %v", activityType, err)
		return
	}
	uc.publishActivity(userID, movieID, activityType)
}

func (uc *interactionUseCase) publishActivity(userID, movieID string, activityType entity.ActivityType) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		event := map[string]interface{}{
			"type":     string(activityType),
			"user_id":  userID,
			"movie_id": movieID,
			"time":     time.Now().UTC().Format(time.RFC3339),
		}
		if err := uc.queueClient.PublishActivityEvent(event); err != nil {
			uc.logger.Warn("failed to publish %s event: %v", activityType, err)
		}
	}()
}
