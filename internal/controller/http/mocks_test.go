package http

import (
	"io"
	nethttp "net/http"
	"strings"

	"filmoteka/internal/entity"
	"filmoteka/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of usecase.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListMovies(filter entity.MovieFilter) ([]*entity.Movie, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) GetMovie(movieID, userID string) (*entity.Movie, bool, error) {
	args := m.Called(movieID, userID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Movie), args.Bool(1), args.Error(2)
}

func (m *MockCatalogUseCase) IsFavorite(userID, movieID string) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogUseCase) SearchMovies(term string) ([]*entity.Movie, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) TopMovies(limit int) ([]*entity.Movie, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) CreateMovie(input entity.MovieInput) (*entity.Movie, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateMovie(movieID string, input entity.MovieInput) (*entity.Movie, error) {
	args := m.Called(movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteMovie(movieID string) error {
	args := m.Called(movieID)
	return args.Error(0)
}

func (m *MockCatalogUseCase) CreateDirector(name string) (*entity.Director, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Director), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteDirector(directorID string) error {
	args := m.Called(directorID)
	return args.Error(0)
}

func (m *MockCatalogUseCase) CreateActor(name string) (*entity.Actor, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockCatalogUseCase) CreateTag(name string) (*entity.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockCatalogUseCase) ListTags() ([]entity.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

// MockInteractionUseCase is a mock implementation of usecase.InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleFavorite(userID, movieID string) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionUseCase) AddFavorite(userID, movieID string) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockInteractionUseCase) RemoveFavorite(userID, movieID string) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockInteractionUseCase) ListFavorites(userID string) ([]*entity.Movie, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockInteractionUseCase) FavoriteCount(movieID string) (int64, error) {
	args := m.Called(movieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionUseCase) RecordView(userID, movieID string) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionUseCase) History(userID string, limit int) ([]*entity.UserActivity, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserActivity), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

// MockReviewUseCase is a mock implementation of usecase.ReviewUseCase
type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) CreateReview(userID, movieID, text string, rating int) (*entity.Review, error) {
	args := m.Called(userID, movieID, text, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) UpdateReview(reviewID, userID, text string, rating int) (*entity.Review, error) {
	args := m.Called(reviewID, userID, text, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) DeleteReview(reviewID, userID string, role entity.UserRole) error {
	args := m.Called(reviewID, userID, role)
	return args.Error(0)
}

func (m *MockReviewUseCase) ListByMovie(movieID string) ([]*entity.Review, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

var _ usecase.ReviewUseCase = (*MockReviewUseCase)(nil)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(username, email, password string) (*entity.User, string, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(username, password string) (*entity.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID, username, email string) (*entity.User, error) {
	args := m.Called(userID, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdatePreferences(userID string, tagIDs []string) (*entity.User, error) {
	args := m.Called(userID, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadAvatar(userID string, file io.Reader, contentType string) (*entity.User, error) {
	args := m.Called(userID, file, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newJSONRequest(method, url, body string) *nethttp.Request {
	req, _ := nethttp.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
