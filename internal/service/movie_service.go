package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/cache"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultListLimit = 10
	// TTL en segundos para los listados cacheados en Redis
	listCacheTTL = 300
	// umbral de trending: promedio mayor a 3
	trendingMinAvg = 3.0
)

type MovieService struct {
	movies    *repository.MovieRepository
	actors    *repository.ActorRepository
	directors *repository.DirectorRepository
	users     *repository.UserRepository
}

func NewMovieService(
	movies *repository.MovieRepository,
	actors *repository.ActorRepository,
	directors *repository.DirectorRepository,
	users *repository.UserRepository,
) *MovieService {
	return &MovieService{
		movies:    movies,
		actors:    actors,
		directors: directors,
		users:     users,
	}
}

// ==================== catálogo básico ====================

func (s *MovieService) List(ctx context.Context, f repository.ListFilter, page, limit int) ([]models.MovieSummary, int64, error) {
	page, limit = normalizePage(page, limit)

	movies, err := s.movies.List(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movies.CountList(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]models.MovieSummary, 0, len(movies))
	for i := range movies {
		out = append(out, movies[i].Summary())
	}
	return out, total, nil
}

// MovieDetail es la película con cast y director resueltos.
type MovieDetail struct {
	models.Movie
	CastDetails    []models.Actor   `json:"castDetails,omitempty"`
	DirectorDetail *models.Director `json:"directorDetail,omitempty"`
}

func (s *MovieService) Get(ctx context.Context, id primitive.ObjectID) (*MovieDetail, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	detail := &MovieDetail{Movie: *movie}

	if len(movie.Cast) > 0 {
		actors, err := s.actors.FindByIDs(ctx, movie.Cast)
		if err != nil {
			return nil, err
		}
		detail.CastDetails = actors
	}
	if !movie.Director.IsZero() {
		director, err := s.directors.FindByID(ctx, movie.Director)
		if err != nil {
			return nil, err
		}
		detail.DirectorDetail = director
	}
	return detail, nil
}

// CreateMovieData: los datos del alta de una película.
type CreateMovieData struct {
	Title            string
	Genre            []string
	Director         primitive.ObjectID
	Cast             []primitive.ObjectID
	ReleaseDate      time.Time
	Runtime          int
	Synopsis         string
	CoverPhoto       string
	Trivia           []string
	Goofs            []string
	SoundtrackInfo   []string
	AgeRating        string
	ParentalGuidance string
	BoxOffice        models.BoxOffice
	Awards           []models.Award
}

// Create da de alta una película. AverageRating arranca en 0 y nunca se
// acepta del cliente: es un campo derivado de los reviews.
func (s *MovieService) Create(ctx context.Context, data CreateMovieData) (*models.Movie, error) {
	if data.Title == "" || len(data.Genre) == 0 || data.Director.IsZero() ||
		len(data.Cast) == 0 || data.ReleaseDate.IsZero() || data.Runtime <= 0 || data.Synopsis == "" {
		return nil, apperr.BadRequest("please provide all mandatory movie details")
	}

	now := time.Now().UTC()
	movie := &models.Movie{
		Title:            data.Title,
		Genre:            data.Genre,
		Director:         data.Director,
		Cast:             data.Cast,
		ReleaseDate:      data.ReleaseDate,
		Runtime:          data.Runtime,
		Synopsis:         data.Synopsis,
		CoverPhoto:       data.CoverPhoto,
		Trivia:           data.Trivia,
		Goofs:            data.Goofs,
		SoundtrackInfo:   data.SoundtrackInfo,
		AgeRating:        data.AgeRating,
		ParentalGuidance: data.ParentalGuidance,
		Reviews:          []models.Review{},
		AverageRating:    0,
		BoxOffice:        data.BoxOffice,
		Awards:           data.Awards,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}
	invalidateListCaches(ctx)
	return movie, nil
}

// UpdateMovieData: actualización parcial, nil = no tocar. Reviews y
// averageRating no son actualizables por esta vía.
type UpdateMovieData struct {
	Title            *string
	Genre            []string
	Director         *primitive.ObjectID
	Cast             []primitive.ObjectID
	ReleaseDate      *time.Time
	Runtime          *int
	Synopsis         *string
	CoverPhoto       *string
	Trivia           []string
	Goofs            []string
	SoundtrackInfo   []string
	AgeRating        *string
	ParentalGuidance *string
	BoxOffice        *models.BoxOffice
	Awards           []models.Award
}

func (d UpdateMovieData) empty() bool {
	return d.Title == nil && d.Genre == nil && d.Director == nil && d.Cast == nil &&
		d.ReleaseDate == nil && d.Runtime == nil && d.Synopsis == nil && d.CoverPhoto == nil &&
		d.Trivia == nil && d.Goofs == nil && d.SoundtrackInfo == nil && d.AgeRating == nil &&
		d.ParentalGuidance == nil && d.BoxOffice == nil && d.Awards == nil
}

func (s *MovieService) Update(ctx context.Context, id primitive.ObjectID, data UpdateMovieData) (*models.Movie, error) {
	if data.empty() {
		return nil, apperr.BadRequest("no update data provided")
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	if data.Title != nil {
		movie.Title = *data.Title
	}
	if data.Genre != nil {
		movie.Genre = data.Genre
	}
	if data.Director != nil {
		movie.Director = *data.Director
	}
	if data.Cast != nil {
		movie.Cast = data.Cast
	}
	if data.ReleaseDate != nil {
		movie.ReleaseDate = *data.ReleaseDate
	}
	if data.Runtime != nil {
		movie.Runtime = *data.Runtime
	}
	if data.Synopsis != nil {
		movie.Synopsis = *data.Synopsis
	}
	if data.CoverPhoto != nil {
		movie.CoverPhoto = *data.CoverPhoto
	}
	if data.Trivia != nil {
		movie.Trivia = data.Trivia
	}
	if data.Goofs != nil {
		movie.Goofs = data.Goofs
	}
	if data.SoundtrackInfo != nil {
		movie.SoundtrackInfo = data.SoundtrackInfo
	}
	if data.AgeRating != nil {
		movie.AgeRating = *data.AgeRating
	}
	if data.ParentalGuidance != nil {
		movie.ParentalGuidance = *data.ParentalGuidance
	}
	if data.BoxOffice != nil {
		movie.BoxOffice = *data.BoxOffice
	}
	if data.Awards != nil {
		movie.Awards = data.Awards
	}
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Save(ctx, movie); err != nil {
		return nil, saveErr(err)
	}
	invalidateListCaches(ctx)
	return movie, nil
}

// Delete borra la película. Las referencias débiles que la apunten
// (wishlists, custom lists, filmografías) quedan colgando a propósito.
func (s *MovieService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.movies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("movie not found")
	}
	invalidateListCaches(ctx)
	return nil
}

// ==================== lecturas embebidas ====================

func (s *MovieService) Cast(ctx context.Context, id primitive.ObjectID) ([]models.Actor, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(movie.Cast) == 0 {
		return nil, apperr.NotFound("no cast found for this movie")
	}
	return s.actors.FindByIDs(ctx, movie.Cast)
}

func (s *MovieService) Trivia(ctx context.Context, id primitive.ObjectID) (string, []string, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return movie.Title, movie.Trivia, nil
}

func (s *MovieService) Goofs(ctx context.Context, id primitive.ObjectID, page, limit int) (string, []string, int, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return "", nil, 0, err
	}
	start, end := pageBounds(page, limit, len(movie.Goofs))
	return movie.Title, movie.Goofs[start:end], len(movie.Goofs), nil
}

func (s *MovieService) Soundtrack(ctx context.Context, id primitive.ObjectID, page, limit int) (string, []string, int, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return "", nil, 0, err
	}
	start, end := pageBounds(page, limit, len(movie.SoundtrackInfo))
	return movie.Title, movie.SoundtrackInfo[start:end], len(movie.SoundtrackInfo), nil
}

func (s *MovieService) AwardsInfo(ctx context.Context, id primitive.ObjectID, page, limit int) (string, []models.Award, int, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return "", nil, 0, err
	}
	start, end := pageBounds(page, limit, len(movie.Awards))
	return movie.Title, movie.Awards[start:end], len(movie.Awards), nil
}

func (s *MovieService) BoxOfficeInfo(ctx context.Context, id primitive.ObjectID) (*models.BoxOffice, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	bo := movie.BoxOffice
	if bo.OpeningWeekend == 0 && bo.TotalEarnings == 0 && bo.InternationalRevenue == 0 {
		return nil, apperr.NotFound("box office information not available for this movie")
	}
	return &bo, nil
}

// ==================== búsqueda y filtros ====================

// Search resuelve director/actor por nombre exacto y arma el filtro.
func (s *MovieService) Search(ctx context.Context, title, genre, directorName, actorName string, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		limit = 20
	}
	f := repository.SearchFilter{Title: title, Genre: genre}

	if directorName != "" {
		d, err := s.directors.FindByName(ctx, directorName)
		if err != nil {
			return nil, err
		}
		if d != nil {
			f.Director = d.ID
		}
	}
	if actorName != "" {
		a, err := s.actors.FindByName(ctx, actorName)
		if err != nil {
			return nil, err
		}
		if a != nil {
			f.Actor = a.ID
		}
	}
	return s.movies.Search(ctx, f, limit)
}

func (s *MovieService) AdvancedFilter(ctx context.Context, decade int, ageRating string, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.movies.AdvancedFilter(ctx, decade, ageRating, limit)
}

// ==================== trending / top / similares ====================

const (
	trendingKey = "movies:trending"
	topRatedKey = "movies:top-rated"
)

// invalidateListCaches borra las listas cacheadas que dependen del
// catálogo y de los promedios. Toda mutación (alta, edición, borrado,
// reviews) pasa por acá; es una var para poder reemplazarla en tests.
var invalidateListCaches = func(ctx context.Context) {
	cache.Invalidate(ctx, trendingKey, topRatedKey)
}

func (s *MovieService) Trending(ctx context.Context) ([]models.Movie, error) {
	var cached []models.Movie
	if ok, err := cache.GetJSON(ctx, trendingKey, &cached); err == nil && ok {
		return cached, nil
	}

	movies, err := s.movies.Trending(ctx, trendingMinAvg, defaultListLimit)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, trendingKey, movies, listCacheTTL)
	return movies, nil
}

func (s *MovieService) TopRated(ctx context.Context, from, to time.Time) ([]models.Movie, error) {
	// solo el top global (sin ventana de fechas) se cachea
	windowed := !from.IsZero() && !to.IsZero()
	if !windowed {
		var cached []models.Movie
		if ok, err := cache.GetJSON(ctx, topRatedKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	movies, err := s.movies.TopRated(ctx, from, to, defaultListLimit)
	if err != nil {
		return nil, err
	}
	if !windowed {
		_ = cache.SetJSON(ctx, topRatedKey, movies, listCacheTTL)
	}
	return movies, nil
}

// TopOfMonth: estrenos del mes calendario en curso, mejor puntuados.
func (s *MovieService) TopOfMonth(ctx context.Context) ([]models.Movie, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	return s.movies.ReleasedBetween(ctx, monthStart, monthEnd, defaultListLimit)
}

func (s *MovieService) TopByGenre(ctx context.Context, genre string) ([]models.Movie, error) {
	if genre == "" {
		return nil, apperr.BadRequest("genre parameter is required")
	}
	return s.movies.TopByGenre(ctx, genre, defaultListLimit)
}

func (s *MovieService) Similar(ctx context.Context, id primitive.ObjectID) ([]models.Movie, error) {
	movie, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.movies.Similar(ctx, movie, defaultListLimit)
}

// Recommendations: películas de los géneros favoritos del usuario,
// ordenadas por promedio. Se cachea por usuario con el mismo TTL que
// las demás listas.
func (s *MovieService) Recommendations(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	genres := user.Preferences.FavoriteGenres
	if len(genres) == 0 {
		return []models.Movie{}, nil
	}

	key := fmt.Sprintf("rec:user:%s", userID.Hex())
	var cached []models.Movie
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	movies, err := s.movies.ByGenres(ctx, genres, defaultListLimit)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, key, movies, listCacheTTL)
	return movies, nil
}

func (s *MovieService) mustGet(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}
	return movie, nil
}
