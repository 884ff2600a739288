package usecase

import (
	"testing"
	"time"

	"filmoteka/internal/entity"
	"filmoteka/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogUseCaseForTest(movieRepo *MockMovieRepository) CatalogUseCase {
	return NewCatalogUseCase(movieRepo, logger.New())
}

func TestGetMovie_Anonymous(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	movieRepo.On("GetByID", "movie-1").Return(&entity.Movie{ID: "movie-1", Title: "Heat"}, nil)

	movie, isFavorite, err := uc.GetMovie("movie-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)
	assert.False(t, isFavorite)
	movieRepo.AssertNotCalled(t, "IsFavorite", mock.Anything, mock.Anything)
}

func TestGetMovie_WithUser(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	movieRepo.On("GetByID", "movie-1").Return(&entity.Movie{ID: "movie-1", Title: "Heat"}, nil)
	movieRepo.On("IsFavorite", "user-1", "movie-1").Return(true, nil)

	_, isFavorite, err := uc.GetMovie("movie-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, isFavorite)
	movieRepo.AssertExpectations(t)
}

func TestGetMovie_NotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	movieRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	movie, _, err := uc.GetMovie("missing", "user-1")

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateMovie_InvalidRating(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	input := entity.MovieInput{
		Title:       "Heat",
		ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
		Rating:      10.5,
	}

	movie, err := uc.CreateMovie(input)

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, entity.ErrValidation)
	movieRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateMovie_MissingTitle(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	input := entity.MovieInput{
		ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
		Rating:      8,
	}

	movie, err := uc.CreateMovie(input)

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestSearchMovies_BlankTermListsAll(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	movieRepo.On("List", entity.MovieFilter{}).Return([]*entity.Movie{}, nil)

	_, err := uc.SearchMovies("   ")

	assert.NoError(t, err)
	movieRepo.AssertNotCalled(t, "Search", mock.Anything)
}

func TestTopMovies_DefaultLimit(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	movieRepo.On("Top", 10).Return([]*entity.Movie{}, nil)

	_, err := uc.TopMovies(0)

	assert.NoError(t, err)
	movieRepo.AssertExpectations(t)
}

func TestCreateTag_EmptyName(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	uc := newCatalogUseCaseForTest(movieRepo)

	tag, err := uc.CreateTag("  ")

	assert.Nil(t, tag)
	assert.ErrorIs(t, err, entity.ErrValidation)
}
