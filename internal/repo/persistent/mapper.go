package persistent

import (
	"filmoteka/internal/entity"
	"filmoteka/internal/model"
)

func ToMovieEntity(m *model.MovieModel) *entity.Movie {
	if m == nil {
		return nil
	}

	movie := &entity.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
		Rating:      m.Rating,
		PosterURL:   m.PosterURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.Director != nil {
		movie.Director = &entity.Director{ID: m.Director.ID, Name: m.Director.Name}
	}
	for _, a := range m.Actors {
		movie.Actors = append(movie.Actors, entity.Actor{ID: a.ID, Name: a.Name})
	}
	for _, t := range m.Tags {
		movie.Tags = append(movie.Tags, entity.Tag{ID: t.ID, Name: t.Name})
	}
	for i := range m.Reviews {
		movie.Reviews = append(movie.Reviews, *ToReviewEntity(&m.Reviews[i]))
	}

	return movie
}

func ToMovieModel(e *entity.Movie) *model.MovieModel {
	if e == nil {
		return nil
	}

	movie := &model.MovieModel{
		ID:          e.ID,
		Title:       e.Title,
		ReleaseDate: e.ReleaseDate,
		Description: e.Description,
		Rating:      e.Rating,
		PosterURL:   e.PosterURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.Director != nil {
		movie.DirectorID = &e.Director.ID
	}
	for _, a := range e.Actors {
		movie.Actors = append(movie.Actors, model.ActorModel{ID: a.ID, Name: a.Name})
	}
	for _, t := range e.Tags {
		movie.Tags = append(movie.Tags, model.TagModel{ID: t.ID, Name: t.Name})
	}

	return movie
}

func ToReviewEntity(m *model.ReviewModel) *entity.Review {
	if m == nil {
		return nil
	}

	return &entity.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		MovieID:   m.MovieID,
		Username:  m.User.Username,
		Text:      m.Text,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToReviewModel(e *entity.Review) *model.ReviewModel {
	if e == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:      e.ID,
		UserID:  e.UserID,
		MovieID: e.MovieID,
		Text:    e.Text,
		Rating:  e.Rating,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		AvatarURL: m.AvatarURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Email != nil {
		user.Email = *m.Email
	}
	for _, t := range m.PreferredTags {
		user.PreferredTags = append(user.PreferredTags, entity.Tag{ID: t.ID, Name: t.Name})
	}

	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	user := &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		AvatarURL: e.AvatarURL,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.Email != "" {
		email := e.Email
		user.Email = &email
	}

	return user
}

func ToActivityEntity(m *model.UserActivityModel) *entity.UserActivity {
	if m == nil {
		return nil
	}

	return &entity.UserActivity{
		ID:           m.ID,
		UserID:       m.UserID,
		MovieID:      m.MovieID,
		MovieTitle:   m.Movie.Title,
		ActivityType: entity.ActivityType(m.ActivityType),
		CreatedAt:    m.CreatedAt,
	}
}
