package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"filmoteka/internal/entity"
	"filmoteka/internal/usecase"
	"filmoteka/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewMovieHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *MovieHandler {
	return &MovieHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

func (h *MovieHandler) formatMovieList(c *gin.Context, movies []*entity.Movie) []map[string]interface{} {
	userID := c.GetString("user_id")

	result := make([]map[string]interface{}, 0, len(movies))
	for _, movie := range movies {
		isFavorite := false
		if userID != "" {
			isFavorite, _ = h.catalogUseCase.IsFavorite(userID, movie.ID)
		}
		result = append(result, formatMovieResponse(movie, isFavorite))
	}
	return result
}

// ListMovies godoc
// @Summary      List movies
// @Description  List the catalog, optionally narrowed by filters. All filters combine with AND; comma-separated actor and tag values are OR within the group.
// @Tags         movies
// @Produce      json
// @Param        title query string false "Title substring (case-insensitive)"
// @Param        actor query string false "Actor name substrings, comma-separated"
// @Param        tag query string false "Exact tag names, comma-separated (case-insensitive)"
// @Param        year query int false "Release year"
// @Param        exclude_tag query string false "Exclude movies carrying this tag"
// @Param        exclude_actor query string false "Exclude movies featuring this actor"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	filter, err := entity.ParseMovieFilter(
		c.Query("title"),
		c.Query("actor"),
		c.Query("tag"),
		c.Query("year"),
		c.Query("exclude_tag"),
		c.Query("exclude_actor"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	movies, err := h.catalogUseCase.ListMovies(filter)
	if err != nil {
		h.logger.Error("failed to list movies: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": h.formatMovieList(c, movies),
		"count":  len(movies),
	})
}

// GetMovie godoc
// @Summary      Get a movie
// @Tags         movies
// @Produce      json
// @Param        id path string true "Movie ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID := c.Param("id")
	userID := c.GetString("user_id")

	movie, isFavorite, err := h.catalogUseCase.GetMovie(movieID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatMovieResponse(movie, isFavorite))
}

// SearchMovies godoc
// @Summary      Search movies
// @Description  Case-insensitive substring search over title and description.
// @Tags         movies
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies/search [get]
func (h *MovieHandler) SearchMovies(c *gin.Context) {
	movies, err := h.catalogUseCase.SearchMovies(c.Query("q"))
	if err != nil {
		h.logger.Error("search failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": h.formatMovieList(c, movies),
		"count":  len(movies),
	})
}

// TopMovies godoc
// @Summary      Top-rated movies
// @Tags         movies
// @Produce      json
// @Param        limit query int false "Number of movies (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies/top [get]
func (h *MovieHandler) TopMovies(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	movies, err := h.catalogUseCase.TopMovies(limit)
	if err != nil {
		h.logger.Error("failed to fetch top movies: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": h.formatMovieList(c, movies),
		"count":  len(movies),
	})
}

type MovieRequest struct {
	Title       string   `json:"title" binding:"required"`
	ReleaseDate string   `json:"release_date" binding:"required"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url"`
	DirectorID  *string  `json:"director_id"`
	ActorIDs    []string `json:"actor_ids"`
	TagIDs      []string `json:"tag_ids"`
}

func (r *MovieRequest) toInput() (entity.MovieInput, error) {
	releaseDate, err := time.Parse("2006-01-02", r.ReleaseDate)
	if err != nil {
		return entity.MovieInput{}, fmt.Errorf("release_date must be YYYY-MM-DD: %w", entity.ErrValidation)
	}
	return entity.MovieInput{
		Title:       r.Title,
		ReleaseDate: releaseDate,
		Description: r.Description,
		Rating:      r.Rating,
		PosterURL:   r.PosterURL,
		DirectorID:  r.DirectorID,
		ActorIDs:    r.ActorIDs,
		TagIDs:      r.TagIDs,
	}, nil
}

// CreateMovie godoc
// @Summary      Create a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        movie body MovieRequest true "Movie"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	movie, err := h.catalogUseCase.CreateMovie(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatMovieResponse(movie, false))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Param        movie body MovieRequest true "Movie"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	movie, err := h.catalogUseCase.UpdateMovie(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatMovieResponse(movie, false))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         admin
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	if err := h.catalogUseCase.DeleteMovie(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateDirector godoc
// @Summary      Create a director
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        director body NameRequest true "Director"
// @Success      201  {object}  entity.Director
// @Router       /admin/directors [post]
func (h *MovieHandler) CreateDirector(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	director, err := h.catalogUseCase.CreateDirector(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

// DeleteDirector godoc
// @Summary      Delete a director
// @Description  Movies directed by the removed director keep existing with no director.
// @Tags         admin
// @Security     BearerAuth
// @Param        id path string true "Director ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/directors/{id} [delete]
func (h *MovieHandler) DeleteDirector(c *gin.Context) {
	if err := h.catalogUseCase.DeleteDirector(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateActor godoc
// @Summary      Create an actor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        actor body NameRequest true "Actor"
// @Success      201  {object}  entity.Actor
// @Router       /admin/actors [post]
func (h *MovieHandler) CreateActor(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	actor, err := h.catalogUseCase.CreateActor(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, actor)
}

// CreateTag godoc
// @Summary      Create a tag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tag body NameRequest true "Tag"
// @Success      201  {object}  entity.Tag
// @Failure      409  {object}  map[string]string
// @Router       /admin/tags [post]
func (h *MovieHandler) CreateTag(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
		return
	}

	tag, err := h.catalogUseCase.CreateTag(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// ListTags godoc
// @Summary      List tags
// @Tags         movies
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /tags [get]
func (h *MovieHandler) ListTags(c *gin.Context) {
	tags, err := h.catalogUseCase.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
