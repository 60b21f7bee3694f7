package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	user  *models.User
	saves int
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	cp := *f.user
	cp.Wishlist = append([]primitive.ObjectID(nil), f.user.Wishlist...)
	cp.CustomLists = append([]models.CustomList(nil), f.user.CustomLists...)
	return &cp, nil
}

func (f *fakeUserStore) Save(_ context.Context, u *models.User) error {
	f.user = u
	f.saves++
	return nil
}

// fakeMovieResolver conoce un conjunto fijo de películas existentes.
type fakeMovieResolver struct {
	movies map[primitive.ObjectID]models.Movie
}

func (f *fakeMovieResolver) FindByID(_ context.Context, id primitive.ObjectID) (*models.Movie, error) {
	if m, ok := f.movies[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (f *fakeMovieResolver) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func newWishlistFixture() (*fakeUserStore, *fakeMovieResolver, *WishlistService, primitive.ObjectID, primitive.ObjectID) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()
	users := &fakeUserStore{user: &models.User{ID: userID}}
	movies := &fakeMovieResolver{movies: map[primitive.ObjectID]models.Movie{
		movieID: {ID: movieID, Title: "Alien"},
	}}
	return users, movies, NewWishlistService(users, movies), userID, movieID
}

func TestAddToWishlist(t *testing.T) {
	users, _, svc, userID, movieID := newWishlistFixture()

	wishlist, already, err := svc.AddToWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, []primitive.ObjectID{movieID}, wishlist)
	assert.Equal(t, 1, users.saves)
}

func TestAddToWishlistTwiceDoesNotDuplicate(t *testing.T) {
	users, _, svc, userID, movieID := newWishlistFixture()

	_, _, err := svc.AddToWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)

	wishlist, already, err := svc.AddToWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Len(t, wishlist, 1)
	// el segundo agregado ni siquiera escribe
	assert.Equal(t, 1, users.saves)
}

func TestAddToWishlistMovieMustExist(t *testing.T) {
	_, _, svc, userID, _ := newWishlistFixture()

	_, _, err := svc.AddToWishlist(context.Background(), userID, primitive.NewObjectID())
	assert.Equal(t, http.StatusNotFound, apperr.CodeOf(err))
}

func TestRemoveFromWishlist(t *testing.T) {
	users, _, svc, userID, movieID := newWishlistFixture()

	_, _, err := svc.AddToWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)

	wishlist, missing, err := svc.RemoveFromWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)
	assert.False(t, missing)
	assert.Empty(t, wishlist)

	// sacar lo que ya no está no es error
	_, missing, err = svc.RemoveFromWishlist(context.Background(), userID, movieID)
	require.NoError(t, err)
	assert.True(t, missing)
	assert.Equal(t, 2, users.saves)
}

func TestGetWishlistSkipsDanglingRefs(t *testing.T) {
	users, _, svc, userID, movieID := newWishlistFixture()

	// una referencia válida y una colgando (película borrada)
	users.user.Wishlist = []primitive.ObjectID{movieID, primitive.NewObjectID()}

	summaries, total, err := svc.GetWishlist(context.Background(), userID, 1, 10)
	require.NoError(t, err)
	// el total cuenta las referencias, el resultado solo las resolubles
	assert.Equal(t, 2, total)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Alien", summaries[0].Title)
}

func TestCreateCustomList(t *testing.T) {
	users, _, svc, userID, movieID := newWishlistFixture()

	list, err := svc.CreateCustomList(context.Background(), userID, "Clásicos", "mis clásicos", []primitive.ObjectID{movieID})
	require.NoError(t, err)
	assert.False(t, list.ID.IsZero())
	assert.Equal(t, "Clásicos", list.Title)
	assert.Len(t, users.user.CustomLists, 1)
}

func TestCreateCustomListValidation(t *testing.T) {
	_, _, svc, userID, movieID := newWishlistFixture()

	_, err := svc.CreateCustomList(context.Background(), userID, "   ", "", []primitive.ObjectID{movieID})
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))

	_, err = svc.CreateCustomList(context.Background(), userID, "Clásicos", "", nil)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))

	// un array vacío es válido: la lista arranca sin películas
	_, err = svc.CreateCustomList(context.Background(), userID, "Clásicos", "", []primitive.ObjectID{})
	assert.NoError(t, err)
}

func TestCreateCustomListDuplicateTitle(t *testing.T) {
	_, _, svc, userID, movieID := newWishlistFixture()

	_, err := svc.CreateCustomList(context.Background(), userID, "Clásicos", "", []primitive.ObjectID{movieID})
	require.NoError(t, err)

	_, err = svc.CreateCustomList(context.Background(), userID, "Clásicos", "otra", []primitive.ObjectID{})
	assert.Equal(t, http.StatusConflict, apperr.CodeOf(err))

	// distinta capitalización es otro título
	_, err = svc.CreateCustomList(context.Background(), userID, "clásicos", "", []primitive.ObjectID{})
	assert.NoError(t, err)
}

func TestListCustomListsResolvesMovies(t *testing.T) {
	_, _, svc, userID, movieID := newWishlistFixture()

	_, err := svc.CreateCustomList(context.Background(), userID, "Clásicos", "", []primitive.ObjectID{movieID, primitive.NewObjectID()})
	require.NoError(t, err)

	views, total, err := svc.ListCustomLists(context.Background(), userID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)
	// la referencia colgando no aparece
	require.Len(t, views[0].Movies, 1)
	assert.Equal(t, "Alien", views[0].Movies[0].Title)
}
