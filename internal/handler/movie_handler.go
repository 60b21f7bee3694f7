package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// ==================== catálogo ====================

// @Summary Listar películas
// @Description Listado paginado con filtros opcionales
// @Tags movies
// @Produce json
// @Param genre query string false "género"
// @Param minRating query number false "promedio mínimo"
// @Param maxRating query number false "promedio máximo"
// @Param director query string false "directorId"
// @Param actor query string false "actorId"
// @Param year query int false "año de estreno"
// @Param page query int false "página (default: 1)"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {object} map[string]any
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := repository.ListFilter{Genre: q.Get("genre")}
	if v := q.Get("minRating"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid minRating"))
			return
		}
		f.MinRating = min
	}
	if v := q.Get("maxRating"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid maxRating"))
			return
		}
		f.MaxRating = max
	}
	if v := q.Get("director"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid director id"))
			return
		}
		f.Director = id
	}
	if v := q.Get("actor"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid actor id"))
			return
		}
		f.Cast = []primitive.ObjectID{id}
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid year"))
			return
		}
		f.ReleaseYear = year
	}

	page, limit := pageParams(r)
	movies, total, err := h.svc.List(r.Context(), f, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"movies":     movies,
		"total":      total,
		"totalPages": totalPages(total, limit),
	}, "movies retrieved successfully")
}

// @Summary Detalle de película
// @Description Película con cast y director resueltos
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, detail, "movie retrieved successfully")
}

type movieRequest struct {
	Title            string             `json:"title" validate:"required"`
	Genre            []string           `json:"genre" validate:"required,min=1"`
	Director         string             `json:"director" validate:"required"`
	Cast             []string           `json:"cast" validate:"required,min=1"`
	ReleaseDate      time.Time          `json:"releaseDate"`
	Runtime          int                `json:"runtime" validate:"required,gt=0"`
	Synopsis         string             `json:"synopsis" validate:"required"`
	CoverPhoto       string             `json:"coverPhoto"`
	Trivia           []string           `json:"trivia"`
	Goofs            []string           `json:"goofs"`
	SoundtrackInfo   []string           `json:"soundtrackInfo"`
	AgeRating        string             `json:"ageRating"`
	ParentalGuidance string             `json:"parentalGuidance"`
	BoxOffice        models.BoxOffice   `json:"boxOffice"`
	Awards           []models.Award     `json:"awards"`
}

// parseIDs convierte hex ids en ObjectIDs. Un slice nil se preserva como
// nil: los services distinguen "campo ausente" (nil) de "array vacío".
func parseIDs(hexes []string, field string) ([]primitive.ObjectID, error) {
	if hexes == nil {
		return nil, nil
	}
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperr.BadRequest("invalid id in " + field)
		}
		out = append(out, id)
	}
	return out, nil
}

// @Summary Crear película (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body movieRequest true "datos"
// @Success 201 {object} models.Movie
// @Failure 400 {object} map[string]string
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	director, err := primitive.ObjectIDFromHex(req.Director)
	if err != nil {
		respondErr(w, apperr.BadRequest("invalid director id"))
		return
	}
	cast, err := parseIDs(req.Cast, "cast")
	if err != nil {
		respondErr(w, err)
		return
	}

	movie, err := h.svc.Create(r.Context(), service.CreateMovieData{
		Title:            req.Title,
		Genre:            req.Genre,
		Director:         director,
		Cast:             cast,
		ReleaseDate:      req.ReleaseDate,
		Runtime:          req.Runtime,
		Synopsis:         req.Synopsis,
		CoverPhoto:       req.CoverPhoto,
		Trivia:           req.Trivia,
		Goofs:            req.Goofs,
		SoundtrackInfo:   req.SoundtrackInfo,
		AgeRating:        req.AgeRating,
		ParentalGuidance: req.ParentalGuidance,
		BoxOffice:        req.BoxOffice,
		Awards:           req.Awards,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, movie, "movie added successfully")
}

type movieUpdateRequest struct {
	Title            *string           `json:"title"`
	Genre            []string          `json:"genre"`
	Director         *string           `json:"director"`
	Cast             []string          `json:"cast"`
	ReleaseDate      *time.Time        `json:"releaseDate"`
	Runtime          *int              `json:"runtime"`
	Synopsis         *string           `json:"synopsis"`
	CoverPhoto       *string           `json:"coverPhoto"`
	Trivia           []string          `json:"trivia"`
	Goofs            []string          `json:"goofs"`
	SoundtrackInfo   []string          `json:"soundtrackInfo"`
	AgeRating        *string           `json:"ageRating"`
	ParentalGuidance *string           `json:"parentalGuidance"`
	BoxOffice        *models.BoxOffice `json:"boxOffice"`
	Awards           []models.Award    `json:"awards"`
}

// @Summary Actualizar película (ADMIN)
// @Description Actualización parcial. Reviews y averageRating no son editables.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body movieUpdateRequest true "datos a actualizar"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}

	var req movieUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	data := service.UpdateMovieData{
		Title:            req.Title,
		Genre:            req.Genre,
		ReleaseDate:      req.ReleaseDate,
		Runtime:          req.Runtime,
		Synopsis:         req.Synopsis,
		CoverPhoto:       req.CoverPhoto,
		Trivia:           req.Trivia,
		Goofs:            req.Goofs,
		SoundtrackInfo:   req.SoundtrackInfo,
		AgeRating:        req.AgeRating,
		ParentalGuidance: req.ParentalGuidance,
		BoxOffice:        req.BoxOffice,
		Awards:           req.Awards,
	}
	if req.Director != nil {
		director, err := primitive.ObjectIDFromHex(*req.Director)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid director id"))
			return
		}
		data.Director = &director
	}
	if req.Cast != nil {
		cast, err := parseIDs(req.Cast, "cast")
		if err != nil {
			respondErr(w, err)
			return
		}
		data.Cast = cast
	}

	movie, err := h.svc.Update(r.Context(), id, data)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movie, "movie updated successfully")
}

// @Summary Borrar película (ADMIN)
// @Description Las referencias en wishlists y listas quedan colgando.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "movie deleted successfully")
}

// ==================== lecturas embebidas ====================

// @Summary Cast de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {array} models.Actor
// @Router /movies/{id}/cast [get]
func (h *MovieHandler) Cast(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	cast, err := h.svc.Cast(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, cast, "cast retrieved successfully")
}

// @Summary Trivia de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/trivia [get]
func (h *MovieHandler) Trivia(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	title, trivia, err := h.svc.Trivia(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"title":  title,
		"trivia": trivia,
	}, "trivia retrieved successfully")
}

// @Summary Goofs de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/goofs [get]
func (h *MovieHandler) Goofs(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	page, limit := pageParams(r)
	title, goofs, total, err := h.svc.Goofs(r.Context(), id, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"title":      title,
		"goofs":      goofs,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "goofs retrieved successfully")
}

// @Summary Soundtrack de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/soundtracks [get]
func (h *MovieHandler) Soundtrack(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	page, limit := pageParams(r)
	title, tracks, total, err := h.svc.Soundtrack(r.Context(), id, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"title":      title,
		"soundtrack": tracks,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "soundtrack retrieved successfully")
}

// @Summary Premios de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/awards [get]
func (h *MovieHandler) Awards(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	page, limit := pageParams(r)
	title, awards, total, err := h.svc.AwardsInfo(r.Context(), id, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"title":      title,
		"awards":     awards,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "awards retrieved successfully")
}

// @Summary Box office de la película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} models.BoxOffice
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/box-office [get]
func (h *MovieHandler) BoxOffice(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	bo, err := h.svc.BoxOfficeInfo(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, bo, "box office retrieved successfully")
}

// ==================== búsqueda y destacados ====================

// @Summary Buscar películas
// @Description Búsqueda por título parcial, género, director o actor por nombre
// @Tags movies
// @Produce json
// @Param title query string false "título (substring, case-insensitive)"
// @Param genre query string false "género"
// @Param director query string false "nombre del director"
// @Param actor query string false "nombre del actor"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Movie
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	movies, err := h.svc.Search(r.Context(), q.Get("title"), q.Get("genre"),
		q.Get("director"), q.Get("actor"), limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "search results retrieved successfully")
}

// @Summary Filtro avanzado
// @Description Filtra por década de estreno y clasificación por edad
// @Tags movies
// @Produce json
// @Param decade query int false "década (ej: 1990)"
// @Param ageRating query string false "clasificación"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Movie
// @Router /movies/advanced-filter [get]
func (h *MovieHandler) AdvancedFilter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	decade := 0
	if v := q.Get("decade"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid decade"))
			return
		}
		decade = d
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	movies, err := h.svc.AdvancedFilter(r.Context(), decade, q.Get("ageRating"), limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "filtered movies retrieved successfully")
}

// @Summary Películas en tendencia
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies/trending [get]
func (h *MovieHandler) Trending(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Trending(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "trending movies retrieved successfully")
}

// @Summary Mejor puntuadas
// @Tags movies
// @Produce json
// @Param from query string false "fecha desde (RFC3339)"
// @Param to query string false "fecha hasta (RFC3339)"
// @Success 200 {array} models.Movie
// @Router /movies/top-rated [get]
func (h *MovieHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid from date"))
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid to date"))
			return
		}
		to = t
	}

	movies, err := h.svc.TopRated(r.Context(), from, to)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "top rated movies retrieved successfully")
}

// @Summary Top del mes
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies/top-month [get]
func (h *MovieHandler) TopOfMonth(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.TopOfMonth(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "top movies of the month retrieved successfully")
}

// @Summary Top por género
// @Tags movies
// @Produce json
// @Param genre query string true "género"
// @Success 200 {array} models.Movie
// @Router /movies/top-genre [get]
func (h *MovieHandler) TopByGenre(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.TopByGenre(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "top movies by genre retrieved successfully")
}

// @Summary Películas similares
// @Description Mismo género o mismo director, excluyendo la propia
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {array} models.Movie
// @Router /movies/similar/{id} [get]
func (h *MovieHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	movies, err := h.svc.Similar(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "similar movies retrieved successfully")
}

// @Summary Recomendaciones personalizadas
// @Description Películas según los géneros favoritos del usuario autenticado
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies/recommendations [get]
func (h *MovieHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Recommendations(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "recommendations retrieved successfully")
}
