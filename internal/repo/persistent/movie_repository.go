package persistent

import (
	"errors"
	"strings"

	"filmoteka/internal/entity"
	"filmoteka/internal/model"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(input entity.MovieInput) (*entity.Movie, error)
	GetByID(id string) (*entity.Movie, error)
	Exists(id string) (bool, error)
	List(filter entity.MovieFilter) ([]*entity.Movie, error)
	Search(term string) ([]*entity.Movie, error)
	Top(limit int) ([]*entity.Movie, error)
	Update(id string, input entity.MovieInput) (*entity.Movie, error)
	Delete(id string) error

	CreateFavorite(userID, movieID string) error
	DeleteFavorite(userID, movieID string) (bool, error)
	IsFavorite(userID, movieID string) (bool, error)
	FavoriteCount(movieID string) (int64, error)
	ListFavorites(userID string) ([]*entity.Movie, error)

	CreateDirector(name string) (*entity.Director, error)
	DeleteDirector(id string) error
	CreateActor(name string) (*entity.Actor, error)
	CreateTag(name string) (*entity.Tag, error)
	ListTags() ([]entity.Tag, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// translateError hides storage details from callers: missing rows and unique
// violations become the shared sentinel errors.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrConflict
	}
	return err
}

func (r *movieRepository) preloaded() *gorm.DB {
	return r.db.Model(&model.MovieModel{}).
		Preload("Director").
		Preload("Actors").
		Preload("Tags").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User")
}

// catalogOrder is the collection-wide default: best rated first, ties broken
// by title.
func catalogOrder(db *gorm.DB) *gorm.DB {
	return db.Order("movies.rating DESC, movies.title ASC")
}

func (r *movieRepository) Create(input entity.MovieInput) (*entity.Movie, error) {
	var created model.MovieModel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		actors, tags, err := r.resolveRelations(tx, input)
		if err != nil {
			return err
		}

		created = model.MovieModel{
			Title:       input.Title,
			ReleaseDate: input.ReleaseDate,
			Description: input.Description,
			Rating:      input.Rating,
			PosterURL:   input.PosterURL,
			DirectorID:  input.DirectorID,
			Actors:      actors,
			Tags:        tags,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetByID(created.ID)
}

func (r *movieRepository) GetByID(id string) (*entity.Movie, error) {
	var movie model.MovieModel
	if err := r.preloaded().Where("movies.id = ?", id).First(&movie).Error; err != nil {
		return nil, translateError(err)
	}
	return ToMovieEntity(&movie), nil
}

func (r *movieRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.MovieModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List composes the filter into an explicit predicate set. Related-entity
// predicates are expressed as id IN/NOT IN subqueries against the join
// tables, so a movie with several matching actors still appears once and
// actor+tag combine as AND.
func (r *movieRepository) List(filter entity.MovieFilter) ([]*entity.Movie, error) {
	query := r.preloaded()

	if filter.Title != "" {
		query = query.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}

	if len(filter.Actors) > 0 {
		query = query.Where("movies.id IN (?)", r.actorMovieIDs(filter.Actors))
	}

	if len(filter.Tags) > 0 {
		query = query.Where("movies.id IN (?)", r.tagMovieIDs(filter.Tags))
	}

	if filter.Year > 0 {
		query = query.Where("EXTRACT(YEAR FROM movies.release_date) = ?", filter.Year)
	}

	if filter.ExcludeTag != "" {
		query = query.Where("movies.id NOT IN (?)", r.tagMovieIDs([]string{filter.ExcludeTag}))
	}

	if filter.ExcludeActor != "" {
		query = query.Where("movies.id NOT IN (?)", r.actorMovieIDs([]string{filter.ExcludeActor}))
	}

	var movies []model.MovieModel
	if err := catalogOrder(query).Find(&movies).Error; err != nil {
		return nil, err
	}
	return toMovieEntities(movies), nil
}

// actorMovieIDs selects ids of movies having at least one actor whose name
// contains any of the terms (case-insensitive substring, OR across terms).
func (r *movieRepository) actorMovieIDs(terms []string) *gorm.DB {
	sub := r.db.Table("movie_actors").
		Select("movie_actors.movie_id").
		Joins("JOIN actors ON actors.id = movie_actors.actor_id")

	cond := r.db.Where("LOWER(actors.name) LIKE ?", "%"+strings.ToLower(terms[0])+"%")
	for _, term := range terms[1:] {
		cond = cond.Or("LOWER(actors.name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	return sub.Where(cond)
}

// tagMovieIDs selects ids of movies carrying any of the named tags
// (case-insensitive exact match).
func (r *movieRepository) tagMovieIDs(names []string) *gorm.DB {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	return r.db.Table("movie_tags").
		Select("movie_tags.movie_id").
		Joins("JOIN tags ON tags.id = movie_tags.tag_id").
		Where("LOWER(tags.name) IN ?", lowered)
}

func (r *movieRepository) Search(term string) ([]*entity.Movie, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var movies []model.MovieModel
	err := catalogOrder(r.preloaded().
		Where("LOWER(movies.title) LIKE ? OR LOWER(movies.description) LIKE ?", pattern, pattern)).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return toMovieEntities(movies), nil
}

func (r *movieRepository) Top(limit int) ([]*entity.Movie, error) {
	var movies []model.MovieModel
	err := catalogOrder(r.preloaded()).Limit(limit).Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return toMovieEntities(movies), nil
}

func (r *movieRepository) Update(id string, input entity.MovieInput) (*entity.Movie, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var movie model.MovieModel
		if err := tx.Where("id = ?", id).First(&movie).Error; err != nil {
			return err
		}

		actors, tags, err := r.resolveRelations(tx, input)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":        input.Title,
			"release_date": input.ReleaseDate,
			"description":  input.Description,
			"rating":       input.Rating,
			"poster_url":   input.PosterURL,
			"director_id":  input.DirectorID,
		}
		if err := tx.Model(&movie).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&movie).Association("Actors").Replace(actors); err != nil {
			return err
		}
		return tx.Model(&movie).Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetByID(id)
}

// resolveRelations loads the referenced director/actors/tags; an unknown id
// is a validation failure detected before anything is written.
func (r *movieRepository) resolveRelations(tx *gorm.DB, input entity.MovieInput) ([]model.ActorModel, []model.TagModel, error) {
	if input.DirectorID != nil {
		var director model.DirectorModel
		if err := tx.Where("id = ?", *input.DirectorID).First(&director).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, entity.ErrValidation
			}
			return nil, nil, err
		}
	}

	var actors []model.ActorModel
	if len(input.ActorIDs) > 0 {
		if err := tx.Where("id IN ?", input.ActorIDs).Find(&actors).Error; err != nil {
			return nil, nil, err
		}
		if len(actors) != len(input.ActorIDs) {
			return nil, nil, entity.ErrValidation
		}
	}

	var tags []model.TagModel
	if len(input.TagIDs) > 0 {
		if err := tx.Where("id IN ?", input.TagIDs).Find(&tags).Error; err != nil {
			return nil, nil, err
		}
		if len(tags) != len(input.TagIDs) {
			return nil, nil, entity.ErrValidation
		}
	}

	return actors, tags, nil
}

func (r *movieRepository) Delete(id string) error {
	result := r.db.Delete(&model.MovieModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *movieRepository) CreateFavorite(userID, movieID string) error {
	favorite := &model.FavoriteModel{UserID: userID, MovieID: movieID}
	if err := r.db.Create(favorite).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *movieRepository) DeleteFavorite(userID, movieID string) (bool, error) {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *movieRepository) IsFavorite(userID, movieID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FavoriteModel{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *movieRepository) FavoriteCount(movieID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FavoriteModel{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}

func (r *movieRepository) ListFavorites(userID string) ([]*entity.Movie, error) {
	var movies []model.MovieModel
	err := catalogOrder(r.preloaded().
		Joins("INNER JOIN movie_likes ON movie_likes.movie_id = movies.id").
		Where("movie_likes.user_id = ?", userID)).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return toMovieEntities(movies), nil
}

func (r *movieRepository) CreateDirector(name string) (*entity.Director, error) {
	director := &model.DirectorModel{Name: name}
	if err := r.db.Create(director).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity.Director{ID: director.ID, Name: director.Name}, nil
}

// DeleteDirector nulls director references on movies instead of cascading;
// the FK is declared ON DELETE SET NULL.
func (r *movieRepository) DeleteDirector(id string) error {
	result := r.db.Delete(&model.DirectorModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *movieRepository) CreateActor(name string) (*entity.Actor, error) {
	actor := &model.ActorModel{Name: name}
	if err := r.db.Create(actor).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity.Actor{ID: actor.ID, Name: actor.Name}, nil
}

func (r *movieRepository) CreateTag(name string) (*entity.Tag, error) {
	tag := &model.TagModel{Name: name}
	if err := r.db.Create(tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity.Tag{ID: tag.ID, Name: tag.Name}, nil
}

func (r *movieRepository) ListTags() ([]entity.Tag, error) {
	var tags []model.TagModel
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}

	result := make([]entity.Tag, len(tags))
	for i, t := range tags {
		result[i] = entity.Tag{ID: t.ID, Name: t.Name}
	}
	return result, nil
}

func toMovieEntities(models []model.MovieModel) []*entity.Movie {
	movies := make([]*entity.Movie, len(models))
	for i := range models {
		movies[i] = ToMovieEntity(&models[i])
	}
	return movies
}
