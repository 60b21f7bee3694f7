package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memUserStore: colección users de un solo documento, en memoria.
type memUserStore struct {
	user *models.User
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, nil
	}
	cp := *s.user
	return &cp, nil
}

func (s *memUserStore) Save(_ context.Context, u *models.User) error {
	s.user = u
	return nil
}

type memMovieResolver struct{}

func (memMovieResolver) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Movie, error) {
	return nil, nil
}

func (memMovieResolver) FindByIDs(_ context.Context, _ []primitive.ObjectID) ([]models.Movie, error) {
	return nil, nil
}

func newWishlistRouter(store *memUserStore) http.Handler {
	svc := service.NewWishlistService(store, memMovieResolver{})
	h := NewWishlistHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Post("/users/lists", h.CreateList)
	})
	return r
}

// Un body sin el campo movies se rechaza con 400: "no mandé el array" no
// es lo mismo que "mandé un array vacío".
func TestCreateListRequiresMoviesField(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	store := &memUserStore{user: user}
	router := newWishlistRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/users/lists",
		jsonBody(`{"title":"clásicos"}`))
	req.Header.Set("Authorization", bearerFor(t, user.ID, "normal"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Empty(t, store.user.CustomLists)
}

func TestCreateListAcceptsEmptyMoviesArray(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	store := &memUserStore{user: user}
	router := newWishlistRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/users/lists",
		jsonBody(`{"title":"para después","movies":[]}`))
	req.Header.Set("Authorization", bearerFor(t, user.ID, "normal"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, store.user.CustomLists, 1)
	assert.Equal(t, "para después", store.user.CustomLists[0].Title)
	assert.NotNil(t, store.user.CustomLists[0].Movies)
	assert.Empty(t, store.user.CustomLists[0].Movies)
}
