package usecase

import (
	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockMovieRepository is a mock implementation of persistent.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(input entity.MovieInput) (*entity.Movie, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(id string) (*entity.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) List(filter entity.MovieFilter) ([]*entity.Movie, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Search(term string) ([]*entity.Movie, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Top(limit int) ([]*entity.Movie, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(id string, input entity.MovieInput) (*entity.Movie, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMovieRepository) CreateFavorite(userID, movieID string) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockMovieRepository) DeleteFavorite(userID, movieID string) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) IsFavorite(userID, movieID string) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) FavoriteCount(movieID string) (int64, error) {
	args := m.Called(movieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieRepository) ListFavorites(userID string) ([]*entity.Movie, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) CreateDirector(name string) (*entity.Director, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Director), args.Error(1)
}

func (m *MockMovieRepository) DeleteDirector(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMovieRepository) CreateActor(name string) (*entity.Actor, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockMovieRepository) CreateTag(name string) (*entity.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockMovieRepository) ListTags() ([]entity.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

var _ persistent.MovieRepository = (*MockMovieRepository)(nil)

// MockReviewRepository is a mock implementation of persistent.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *entity.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(id string) (*entity.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndMovie(userID, movieID string) (*entity.Review, error) {
	args := m.Called(userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByMovie(movieID string) ([]*entity.Review, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(review *entity.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.ReviewRepository = (*MockReviewRepository)(nil)

// MockActivityRepository is a mock implementation of persistent.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(userID, movieID string, activityType entity.ActivityType) error {
	args := m.Called(userID, movieID, activityType)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByUser(userID string, limit int) ([]*entity.UserActivity, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserActivity), args.Error(1)
}

var _ persistent.ActivityRepository = (*MockActivityRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePreferredTags(userID string, tagIDs []string) (*entity.User, error) {
	args := m.Called(userID, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)
