package usecase

import (
	"fmt"
	"strings"

	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"
	"filmoteka/pkg/logger"
)

type CatalogUseCase interface {
	ListMovies(filter entity.MovieFilter) ([]*entity.Movie, error)
	GetMovie(movieID, userID string) (*entity.Movie, bool, error)
	IsFavorite(userID, movieID string) (bool, error)
	SearchMovies(term string) ([]*entity.Movie, error)
	TopMovies(limit int) ([]*entity.Movie, error)

	CreateMovie(input entity.MovieInput) (*entity.Movie, error)
	UpdateMovie(movieID string, input entity.MovieInput) (*entity.Movie, error)
	DeleteMovie(movieID string) error

	CreateDirector(name string) (*entity.Director, error)
	DeleteDirector(directorID string) error
	CreateActor(name string) (*entity.Actor, error)
	CreateTag(name string) (*entity.Tag, error)
	ListTags() ([]entity.Tag, error)
}

type catalogUseCase struct {
	movieRepo persistent.MovieRepository
	logger    *logger.Logger
}

func NewCatalogUseCase(movieRepo persistent.MovieRepository, log *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		movieRepo: movieRepo,
		logger:    log,
	}
}

func (uc *catalogUseCase) ListMovies(filter entity.MovieFilter) ([]*entity.Movie, error) {
	return uc.movieRepo.List(filter)
}

// GetMovie returns the movie and whether it is a favorite of the requesting
// user. An empty userID means an anonymous request: is_favorite is false,
// never an error.
func (uc *catalogUseCase) GetMovie(movieID, userID string) (*entity.Movie, bool, error) {
	movie, err := uc.movieRepo.GetByID(movieID)
	if err != nil {
		return nil, false, err
	}

	isFavorite := false
	if userID != "" {
		isFavorite, _ = uc.movieRepo.IsFavorite(userID, movieID)
	}

	return movie, isFavorite, nil
}

func (uc *catalogUseCase) IsFavorite(userID, movieID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return uc.movieRepo.IsFavorite(userID, movieID)
}

func (uc *catalogUseCase) SearchMovies(term string) ([]*entity.Movie, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.movieRepo.List(entity.MovieFilter{})
	}
	return uc.movieRepo.Search(term)
}

func (uc *catalogUseCase) TopMovies(limit int) ([]*entity.Movie, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.movieRepo.Top(limit)
}

func (uc *catalogUseCase) CreateMovie(input entity.MovieInput) (*entity.Movie, error) {
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}
	return uc.movieRepo.Create(input)
}

func (uc *catalogUseCase) UpdateMovie(movieID string, input entity.MovieInput) (*entity.Movie, error) {
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}
	return uc.movieRepo.Update(movieID, input)
}

func validateMovieInput(input entity.MovieInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title is required: %w", entity.ErrValidation)
	}
	if input.Rating < 0 || input.Rating > 10 {
		return fmt.Errorf("rating must be between 0 and 10: %w", entity.ErrValidation)
	}
	if input.ReleaseDate.IsZero() {
		return fmt.Errorf("release date is required: %w", entity.ErrValidation)
	}
	return nil
}

func (uc *catalogUseCase) DeleteMovie(movieID string) error {
	return uc.movieRepo.Delete(movieID)
}

func (uc *catalogUseCase) CreateDirector(name string) (*entity.Director, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", entity.ErrValidation)
	}
	return uc.movieRepo.CreateDirector(strings.TrimSpace(name))
}

func (uc *catalogUseCase) DeleteDirector(directorID string) error {
	return uc.movieRepo.DeleteDirector(directorID)
}

func (uc *catalogUseCase) CreateActor(name string) (*entity.Actor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", entity.ErrValidation)
	}
	return uc.movieRepo.CreateActor(strings.TrimSpace(name))
}

func (uc *catalogUseCase) CreateTag(name string) (*entity.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", entity.ErrValidation)
	}
	return uc.movieRepo.CreateTag(strings.TrimSpace(name))
}

func (uc *catalogUseCase) ListTags() ([]entity.Tag, error) {
	return uc.movieRepo.ListTags()
}
