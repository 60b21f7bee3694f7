package handler

import (
	"net/http"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistHandler struct {
	svc *service.WishlistService
}

func NewWishlistHandler(s *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: s}
}

type wishlistRequest struct {
	MovieID string `json:"movieId" validate:"required"`
}

// @Summary Agregar a wishlist
// @Description Idempotente: si la película ya estaba responde 200 sin duplicar
// @Tags wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body wishlistRequest true "película"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /users/wishlist [post]
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req wishlistRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}
	movieID, err := primitive.ObjectIDFromHex(req.MovieID)
	if err != nil {
		respondErr(w, apperr.BadRequest("invalid movieId"))
		return
	}

	wishlist, already, err := h.svc.AddToWishlist(r.Context(), UserIDFromContext(r.Context()), movieID)
	if err != nil {
		respondErr(w, err)
		return
	}
	msg := "movie added to wishlist"
	if already {
		msg = "movie already in wishlist"
	}
	respond(w, http.StatusOK, map[string]any{"wishlist": wishlist}, msg)
}

// @Summary Sacar de la wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]any
// @Router /users/wishlist/{movieId} [delete]
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieId")
	if err != nil {
		respondErr(w, err)
		return
	}

	wishlist, missing, err := h.svc.RemoveFromWishlist(r.Context(), UserIDFromContext(r.Context()), movieID)
	if err != nil {
		respondErr(w, err)
		return
	}
	msg := "movie removed from wishlist"
	if missing {
		msg = "movie was not in wishlist"
	}
	respond(w, http.StatusOK, map[string]any{"wishlist": wishlist}, msg)
}

// @Summary Ver wishlist
// @Description Wishlist con las películas resueltas; las borradas se saltean
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /users/wishlist [get]
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	movies, total, err := h.svc.GetWishlist(r.Context(), UserIDFromContext(r.Context()), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"movies":     movies,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "wishlist retrieved successfully")
}

type customListRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Movies      []string `json:"movies"`
}

// @Summary Crear lista personalizada
// @Description El título es único dentro del usuario
// @Tags wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body customListRequest true "datos"
// @Success 201 {object} models.CustomList
// @Failure 409 {object} map[string]string
// @Router /users/lists [post]
func (h *WishlistHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req customListRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}
	movieIDs, err := parseIDs(req.Movies, "movies")
	if err != nil {
		respondErr(w, err)
		return
	}

	list, err := h.svc.CreateCustomList(r.Context(), UserIDFromContext(r.Context()), req.Title, req.Description, movieIDs)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, list, "custom list created successfully")
}

// @Summary Listas personalizadas
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /users/lists [get]
func (h *WishlistHandler) Lists(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	lists, total, err := h.svc.ListCustomLists(r.Context(), UserIDFromContext(r.Context()), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"lists":      lists,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "custom lists retrieved successfully")
}
