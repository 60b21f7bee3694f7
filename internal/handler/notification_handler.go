package handler

import (
	"net/http"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(s *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: s}
}

// @Summary Próximos estrenos
// @Tags notifications
// @Produce json
// @Success 200 {array} models.MovieSummary
// @Router /notifications/upcoming-movies [get]
func (h *NotificationHandler) UpcomingMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.UpcomingMovies(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, movies, "upcoming movies retrieved successfully")
}

type preferencesRequest struct {
	NotificationsEnabled *bool `json:"notificationsEnabled" validate:"required"`
}

// @Summary Preferencia de notificaciones
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body preferencesRequest true "habilitar/deshabilitar"
// @Success 200 {object} map[string]any
// @Router /notifications/preferences [put]
func (h *NotificationHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	u, err := h.svc.SetPreference(r.Context(), UserIDFromContext(r.Context()), *req.NotificationsEnabled)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"notificationsEnabled": u.NotificationsEnabled,
	}, "notification preferences updated successfully")
}

// @Summary Notificaciones del usuario
// @Description Genera notificaciones por los próximos estrenos y devuelve la lista completa
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.Notifications(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, notifications, "notifications retrieved successfully")
}
