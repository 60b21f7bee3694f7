package service

import (
	"context"
	"strings"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// movieStore es lo mínimo que el service necesita del repositorio de
// películas: leer el documento y reescribirlo completo.
type movieStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	Save(ctx context.Context, m *models.Movie) error
}

// userDirectory resuelve autores para las proyecciones de reviews.
type userDirectory interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
}

type ReviewService struct {
	movies movieStore
	users  userDirectory
}

func NewReviewService(movies movieStore, users userDirectory) *ReviewService {
	return &ReviewService{movies: movies, users: users}
}

// ReviewerInfo es la proyección del autor que acompaña cada review.
type ReviewerInfo struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Avatar string             `json:"avatar,omitempty"`
}

type ReviewView struct {
	ID         primitive.ObjectID `json:"id"`
	User       ReviewerInfo       `json:"user"`
	Rating     int                `json:"rating"`
	ReviewText string             `json:"reviewText"`
	Likes      int                `json:"likes"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// AddReview agrega el review de un usuario a una película. Falla con 400
// si el rating está fuera de 1..5 o el texto queda vacío tras el trim,
// 404 si la película no existe y 409 si el usuario ya tiene un review.
// El promedio se recalcula y se persiste en la misma escritura del
// documento.
func (s *ReviewService) AddReview(ctx context.Context, movieID, userID primitive.ObjectID, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.BadRequest("rating must be a number between 1 and 5")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.BadRequest("review text cannot be empty")
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	if movie.ReviewIndexByUser(userID) != -1 {
		return nil, apperr.Conflict("user has already submitted a review for this movie")
	}

	review := models.Review{
		ID:         primitive.NewObjectID(),
		User:       userID,
		Rating:     rating,
		ReviewText: text,
		CreatedAt:  time.Now().UTC(),
	}
	movie.Reviews = append(movie.Reviews, review)
	movie.RecalcAverageRating()
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Save(ctx, movie); err != nil {
		return nil, saveErr(err)
	}
	// el promedio cambió: las listas cacheadas dejan de valer
	invalidateListCaches(ctx)
	return &review, nil
}

// UpdateReview actualiza parcialmente el review del propio usuario:
// solo cambian los campos que vienen.
func (s *ReviewService) UpdateReview(ctx context.Context, movieID, userID primitive.ObjectID, rating *int, text *string) (*models.Review, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, apperr.BadRequest("rating must be a number between 1 and 5")
	}
	if text != nil && strings.TrimSpace(*text) == "" {
		return nil, apperr.BadRequest("review text cannot be empty")
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	i := movie.ReviewIndexByUser(userID)
	if i == -1 {
		return nil, apperr.NotFound("review not found for this user")
	}

	if rating != nil {
		movie.Reviews[i].Rating = *rating
	}
	if text != nil {
		movie.Reviews[i].ReviewText = strings.TrimSpace(*text)
	}
	movie.RecalcAverageRating()
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Save(ctx, movie); err != nil {
		return nil, saveErr(err)
	}
	invalidateListCaches(ctx)
	out := movie.Reviews[i]
	return &out, nil
}

// DeleteReview borra un review. Sin reviewID el requester borra el suyo.
// Con reviewID solo un admin puede apuntar a un review ajeno: el admin
// identifica explícitamente qué review borra, nunca por el índice del
// requester.
func (s *ReviewService) DeleteReview(ctx context.Context, movieID, requesterID primitive.ObjectID, requesterRole string, reviewID primitive.ObjectID) error {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperr.NotFound("movie not found")
	}

	var i int
	if reviewID.IsZero() {
		i = movie.ReviewIndexByUser(requesterID)
		if i == -1 {
			return apperr.NotFound("review not found for this user")
		}
	} else {
		i = movie.ReviewIndexByID(reviewID)
		if i == -1 {
			return apperr.NotFound("review not found")
		}
		if movie.Reviews[i].User != requesterID && requesterRole != models.RoleAdmin {
			return apperr.Forbidden("insufficient permissions to delete this review")
		}
	}

	movie.RemoveReviewAt(i) // recalcula el promedio (0 si queda vacío)
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Save(ctx, movie); err != nil {
		return saveErr(err)
	}
	invalidateListCaches(ctx)
	return nil
}

// ListReviews pagina los reviews embebidos y resuelve nombre/avatar de
// cada autor.
func (s *ReviewService) ListReviews(ctx context.Context, movieID primitive.ObjectID, page, limit int) ([]ReviewView, int, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, 0, err
	}
	if movie == nil {
		return nil, 0, apperr.NotFound("movie not found")
	}

	start, end := pageBounds(page, limit, len(movie.Reviews))
	views, err := s.toViews(ctx, movie.Reviews[start:end])
	if err != nil {
		return nil, 0, err
	}
	return views, len(movie.Reviews), nil
}

// Highlights: los n reviews mejor puntuados, desempatando por likes.
func (s *ReviewService) Highlights(ctx context.Context, movieID primitive.ObjectID, n int) ([]ReviewView, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}
	return s.toViews(ctx, movie.TopReviews(n))
}

// AverageRating lee el promedio recomputándolo desde el array de
// reviews. 404 si la película no tiene reviews.
func (s *ReviewService) AverageRating(ctx context.Context, movieID primitive.ObjectID) (float64, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return 0, err
	}
	if movie == nil {
		return 0, apperr.NotFound("movie not found")
	}
	if len(movie.Reviews) == 0 {
		return 0, apperr.NotFound("no reviews found for this movie")
	}

	total := 0
	for _, rv := range movie.Reviews {
		total += rv.Rating
	}
	return float64(total) / float64(len(movie.Reviews)), nil
}

func (s *ReviewService) toViews(ctx context.Context, reviews []models.Review) ([]ReviewView, error) {
	ids := make([]primitive.ObjectID, 0, len(reviews))
	for _, rv := range reviews {
		ids = append(ids, rv.User)
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	out := make([]ReviewView, 0, len(reviews))
	for _, rv := range reviews {
		info := ReviewerInfo{ID: rv.User}
		if u, ok := byID[rv.User]; ok {
			info.Name = u.Name
			info.Avatar = u.Avatar
		}
		out = append(out, ReviewView{
			ID:         rv.ID,
			User:       info,
			Rating:     rv.Rating,
			ReviewText: rv.ReviewText,
			Likes:      rv.Likes,
			CreatedAt:  rv.CreatedAt,
		})
	}
	return out, nil
}
