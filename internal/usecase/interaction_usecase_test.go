package usecase

import (
	"testing"
	"time"

	"filmoteka/internal/entity"
	"filmoteka/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInteractionUseCaseForTest(movieRepo *MockMovieRepository, activityRepo *MockActivityRepository) InteractionUseCase {
	return NewInteractionUseCase(movieRepo, activityRepo, nil, nil, logger.New())
}

func TestToggleFavorite_Add(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("IsFavorite", "user-1", "movie-1").Return(false, nil)
	movieRepo.On("CreateFavorite", "user-1", "movie-1").Return(nil)
	activityRepo.On("Create", "user-1", "movie-1", entity.ActivityFavorite).Return(nil)

	added, err := uc.ToggleFavorite("user-1", "movie-1")

	assert.NoError(t, err)
	assert.True(t, added)
	movieRepo.AssertExpectations(t)
}

func TestToggleFavorite_Remove(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("IsFavorite", "user-1", "movie-1").Return(true, nil)
	movieRepo.On("DeleteFavorite", "user-1", "movie-1").Return(true, nil)

	added, err := uc.ToggleFavorite("user-1", "movie-1")

	assert.NoError(t, err)
	assert.False(t, added)
	movieRepo.AssertNotCalled(t, "CreateFavorite", mock.Anything, mock.Anything)
}

func TestToggleFavorite_ConcurrentInsert(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	// another request inserted the edge between check and write
	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("IsFavorite", "user-1", "movie-1").Return(false, nil)
	movieRepo.On("CreateFavorite", "user-1", "movie-1").Return(entity.ErrConflict)

	added, err := uc.ToggleFavorite("user-1", "movie-1")

	assert.NoError(t, err)
	assert.True(t, added)
	movieRepo.AssertExpectations(t)
}

func TestToggleFavorite_MovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "missing").Return(false, nil)

	_, err := uc.ToggleFavorite("user-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	movieRepo.AssertNotCalled(t, "IsFavorite", mock.Anything, mock.Anything)
}

func TestAddFavorite_AlreadyPresent(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("CreateFavorite", "user-1", "movie-1").Return(entity.ErrConflict)

	err := uc.AddFavorite("user-1", "movie-1")

	assert.NoError(t, err)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveFavorite_Success(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("DeleteFavorite", "user-1", "movie-1").Return(true, nil)

	err := uc.RemoveFavorite("user-1", "movie-1")

	assert.NoError(t, err)
	movieRepo.AssertExpectations(t)
}

func TestRemoveFavorite_NotInFavorites(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("DeleteFavorite", "user-1", "movie-1").Return(false, nil)

	err := uc.RemoveFavorite("user-1", "movie-1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Contains(t, err.Error(), "not in favorites")
}

func TestFavoriteCount_ColdCacheAfterRemove(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)

	// Cache has never seen this movie; Del on mutation must leave the next
	// read to the store instead of fabricating a counter.
	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer unreachable.Close()

	uc := NewInteractionUseCase(movieRepo, activityRepo, unreachable, nil, logger.New())

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	movieRepo.On("IsFavorite", "user-1", "movie-1").Return(true, nil)
	movieRepo.On("DeleteFavorite", "user-1", "movie-1").Return(true, nil)
	movieRepo.On("FavoriteCount", "movie-1").Return(int64(2), nil)

	added, err := uc.ToggleFavorite("user-1", "movie-1")
	assert.NoError(t, err)
	assert.False(t, added)

	count, err := uc.FavoriteCount("movie-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.GreaterOrEqual(t, count, int64(0))

	movieRepo.AssertCalled(t, "FavoriteCount", "movie-1")
}

func TestFavoriteCount_NoCache(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("FavoriteCount", "movie-1").Return(int64(7), nil)

	count, err := uc.FavoriteCount("movie-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestRecordView_Success(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "movie-1").Return(true, nil)
	activityRepo.On("Create", "user-1", "movie-1", entity.ActivityView).Return(nil)

	recorded, err := uc.RecordView("user-1", "movie-1")

	assert.NoError(t, err)
	assert.True(t, recorded)
	activityRepo.AssertExpectations(t)
}

func TestRecordView_MovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	movieRepo.On("Exists", "missing").Return(false, nil)

	_, err := uc.RecordView("user-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHistory_DefaultLimit(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	activityRepo := new(MockActivityRepository)
	uc := newInteractionUseCaseForTest(movieRepo, activityRepo)

	activities := []*entity.UserActivity{
		{ID: "act-1", UserID: "user-1", MovieID: "movie-1", ActivityType: entity.ActivityView},
	}
	activityRepo.On("ListByUser", "user-1", 50).Return(activities, nil)

	result, err := uc.History("user-1", 0)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	activityRepo.AssertExpectations(t)
}
