package service

import (
	"context"
	"strings"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
}

// movieResolver existe para validar que la película referida exista y
// para proyectar los detalles en wishlist / custom lists.
type movieResolver interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Movie, error)
}

type WishlistService struct {
	users  userStore
	movies movieResolver
}

func NewWishlistService(users userStore, movies movieResolver) *WishlistService {
	return &WishlistService{users: users, movies: movies}
}

// AddToWishlist agrega la película a la wishlist del usuario. Si ya
// estaba, la operación es idempotente: no toca el documento y devuelve
// already=true para que el handler lo reporte.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, movieID primitive.ObjectID) (wishlist []primitive.ObjectID, already bool, err error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, apperr.NotFound("user not found")
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, false, err
	}
	if movie == nil {
		return nil, false, apperr.NotFound("movie not found")
	}

	if !user.AddToWishlist(movieID) {
		return user.Wishlist, true, nil
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, false, saveErr(err)
	}
	return user.Wishlist, false, nil
}

// RemoveFromWishlist saca la película por valor. Que no estuviera no es
// un error duro: se devuelve missing=true y el handler lo reporta.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, movieID primitive.ObjectID) (wishlist []primitive.ObjectID, missing bool, err error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, apperr.NotFound("user not found")
	}

	if !user.RemoveFromWishlist(movieID) {
		return user.Wishlist, true, nil
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, false, saveErr(err)
	}
	return user.Wishlist, false, nil
}

// GetWishlist pagina la wishlist y resuelve cada referencia a su resumen
// de película. Las referencias colgando (película borrada) simplemente
// no aparecen en el resultado.
func (s *WishlistService) GetWishlist(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.MovieSummary, int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, apperr.NotFound("user not found")
	}

	start, end := pageBounds(page, limit, len(user.Wishlist))
	pageIDs := user.Wishlist[start:end]

	summaries, err := s.resolveSummaries(ctx, pageIDs)
	if err != nil {
		return nil, 0, err
	}
	return summaries, len(user.Wishlist), nil
}

// CreateCustomList crea una lista con nombre. El título es único dentro
// del usuario (byte a byte), no globalmente.
func (s *WishlistService) CreateCustomList(ctx context.Context, userID primitive.ObjectID, title, description string, movieIDs []primitive.ObjectID) (*models.CustomList, error) {
	if strings.TrimSpace(title) == "" || movieIDs == nil {
		return nil, apperr.BadRequest("please provide a list name and an array of movie ids")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if user.HasCustomList(title) {
		return nil, apperr.Conflict("a list with this name already exists")
	}

	list := models.CustomList{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Movies:      movieIDs,
	}
	user.CustomLists = append(user.CustomLists, list)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, saveErr(err)
	}
	return &list, nil
}

// CustomListView es la lista con sus películas resueltas a resúmenes.
type CustomListView struct {
	ID          primitive.ObjectID    `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Movies      []models.MovieSummary `json:"movies"`
}

// ListCustomLists pagina la lista-de-listas del usuario.
func (s *WishlistService) ListCustomLists(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]CustomListView, int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, apperr.NotFound("user not found")
	}

	start, end := pageBounds(page, limit, len(user.CustomLists))

	views := make([]CustomListView, 0, end-start)
	for _, list := range user.CustomLists[start:end] {
		movies, err := s.resolveSummaries(ctx, list.Movies)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, CustomListView{
			ID:          list.ID,
			Title:       list.Title,
			Description: list.Description,
			Movies:      movies,
		})
	}
	return views, len(user.CustomLists), nil
}

// resolveSummaries mantiene el orden de los ids tal como están en la
// lista del usuario.
func (s *WishlistService) resolveSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.MovieSummary, error) {
	movies, err := s.movies.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	out := make([]models.MovieSummary, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m.Summary())
		}
	}
	return out, nil
}
