package handler

import (
	"net/http"
	"strconv"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s}
}

type addReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required"`
}

// @Summary Agregar review
// @Description Un review por usuario por película. Recalcula el averageRating.
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body addReviewRequest true "datos"
// @Success 201 {object} models.Review
// @Failure 409 {object} map[string]string
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req addReviewRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	review, err := h.svc.AddReview(r.Context(), movieID, UserIDFromContext(r.Context()), req.Rating, req.ReviewText)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, review, "review added successfully")
}

type updateReviewRequest struct {
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText"`
}

// @Summary Actualizar review propio
// @Description Actualización parcial del review del usuario autenticado
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body updateReviewRequest true "datos"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/reviews [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req updateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	review, err := h.svc.UpdateReview(r.Context(), movieID, UserIDFromContext(r.Context()), req.Rating, req.ReviewText)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, review, "review updated successfully")
}

// @Summary Borrar review
// @Description Sin reviewId borra el review propio. Con ?reviewId= el dueño o un admin pueden borrar ese review puntual.
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "movieId"
// @Param reviewId query string false "review puntual a borrar"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/reviews [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}

	reviewID := primitive.NilObjectID
	if v := r.URL.Query().Get("reviewId"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			respondErr(w, apperr.BadRequest("invalid reviewId"))
			return
		}
		reviewID = id
	}

	err = h.svc.DeleteReview(r.Context(), movieID, UserIDFromContext(r.Context()), RoleFromContext(r.Context()), reviewID)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "review deleted successfully")
}

// @Summary Reviews de una película
// @Tags reviews
// @Produce json
// @Param id path string true "movieId"
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	page, limit := pageParams(r)
	reviews, total, err := h.svc.ListReviews(r.Context(), movieID, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"reviews":    reviews,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "reviews retrieved successfully")
}

// @Summary Reviews destacados
// @Description Los mejores reviews por rating (likes como desempate)
// @Tags reviews
// @Produce json
// @Param id path string true "movieId"
// @Param limit query int false "cantidad (default: 3)"
// @Success 200 {array} service.ReviewView
// @Router /movies/{id}/reviews/highlights [get]
func (h *ReviewHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if n <= 0 {
		n = 3
	}
	reviews, err := h.svc.Highlights(r.Context(), movieID, n)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, reviews, "review highlights retrieved successfully")
}

// @Summary Promedio de rating
// @Tags reviews
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/reviews/average [get]
func (h *ReviewHandler) Average(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	avg, err := h.svc.AverageRating(r.Context(), movieID)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"averageRating": avg}, "average rating retrieved successfully")
}
