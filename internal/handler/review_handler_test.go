package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memMovieStore: colección movies de un solo documento, en memoria.
type memMovieStore struct {
	movie *models.Movie
}

func (s *memMovieStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Movie, error) {
	if s.movie == nil || s.movie.ID != id {
		return nil, nil
	}
	cp := *s.movie
	cp.Reviews = append([]models.Review(nil), s.movie.Reviews...)
	return &cp, nil
}

func (s *memMovieStore) Save(_ context.Context, m *models.Movie) error {
	s.movie = m
	return nil
}

type memUserDirectory struct{}

func (memUserDirectory) FindByIDs(_ context.Context, _ []primitive.ObjectID) ([]models.User, error) {
	return nil, nil
}

func newReviewRouter(store *memMovieStore) http.Handler {
	svc := service.NewReviewService(store, memUserDirectory{})
	h := NewReviewHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Post("/movies/{id}/reviews", h.Add)
		r.Delete("/movies/{id}/reviews", h.Delete)
	})
	r.Get("/movies/{id}/reviews", h.List)
	return r
}

func bearerFor(t *testing.T, userID primitive.ObjectID, role string) string {
	t.Helper()
	return "Bearer " + signToken(t, jwt.MapClaims{
		"sub":  userID.Hex(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func TestReviewFlowThroughRouter(t *testing.T) {
	movie := &models.Movie{ID: primitive.NewObjectID(), Title: "Taxi Driver"}
	store := &memMovieStore{movie: movie}
	router := newReviewRouter(store)
	userID := primitive.NewObjectID()

	// alta del review
	req := httptest.NewRequest(http.MethodPost, "/movies/"+movie.ID.Hex()+"/reviews",
		jsonBody(`{"rating":4,"reviewText":"imperdible"}`))
	req.Header.Set("Authorization", bearerFor(t, userID, "normal"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 4.0, store.movie.AverageRating)

	// el mismo usuario no puede reseñar dos veces
	req = httptest.NewRequest(http.MethodPost, "/movies/"+movie.ID.Hex()+"/reviews",
		jsonBody(`{"rating":1,"reviewText":"cambié de idea"}`))
	req.Header.Set("Authorization", bearerFor(t, userID, "normal"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusConflict), body["status"])
	assert.NotEmpty(t, body["errorMessage"])

	// lectura pública sin token, con metadata de paginación
	req = httptest.NewRequest(http.MethodGet, "/movies/"+movie.ID.Hex()+"/reviews", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body = map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	payload, ok := body["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, payload["total"])
	assert.Equal(t, 1.0, payload["totalPages"])

	// borrado del review propio
	req = httptest.NewRequest(http.MethodDelete, "/movies/"+movie.ID.Hex()+"/reviews", nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "normal"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.movie.Reviews)
	assert.Equal(t, 0.0, store.movie.AverageRating)
}

func TestReviewValidationThroughRouter(t *testing.T) {
	movie := &models.Movie{ID: primitive.NewObjectID()}
	store := &memMovieStore{movie: movie}
	router := newReviewRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/movies/"+movie.ID.Hex()+"/reviews",
		jsonBody(`{"rating":9,"reviewText":"fuera de rango"}`))
	req.Header.Set("Authorization", bearerFor(t, primitive.NewObjectID(), "normal"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminDeletesForeignReview(t *testing.T) {
	owner := primitive.NewObjectID()
	review := models.Review{ID: primitive.NewObjectID(), User: owner, Rating: 5}
	movie := &models.Movie{
		ID:            primitive.NewObjectID(),
		Reviews:       []models.Review{review},
		AverageRating: 5,
	}
	store := &memMovieStore{movie: movie}
	router := newReviewRouter(store)

	url := "/movies/" + movie.ID.Hex() + "/reviews?reviewId=" + review.ID.Hex()

	// un usuario normal ajeno no puede
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", bearerFor(t, primitive.NewObjectID(), "normal"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// un admin sí, apuntando al review por id
	req = httptest.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", bearerFor(t, primitive.NewObjectID(), "admin"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.movie.Reviews)
}
