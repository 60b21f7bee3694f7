package handler

import (
	"net/http"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Role                 string             `json:"role"`
	Avatar               string             `json:"avatar,omitempty"`
	Preferences          models.Preferences `json:"preferences"`
	NotificationsEnabled bool               `json:"notificationsEnabled"`
	CreatedAt            string             `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:                   u.ID.Hex(),
		Name:                 u.Name,
		Email:                u.Email,
		Role:                 u.Role,
		Avatar:               u.Avatar,
		Preferences:          u.Preferences,
		NotificationsEnabled: u.NotificationsEnabled,
		CreatedAt:            u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=normal admin"`
	Avatar   string `json:"avatar"`

	FavoriteGenres []string `json:"favoriteGenres"`
}

// @Summary Register
// @Description Crea un usuario nuevo (role normal salvo que se indique admin)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Avatar:         req.Avatar,
		FavoriteGenres: req.FavoriteGenres,
	})
	if err != nil {
		respondErr(w, err)
		return
	}

	respond(w, http.StatusCreated, toUserResponse(u), "user registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	}, "login successful")
}

// @Summary Perfil propio
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toUserResponse(u), "user profile")
}

type updateProfileRequest struct {
	Name           *string  `json:"name"`
	Avatar         *string  `json:"avatar"`
	FavoriteGenres []string `json:"favoriteGenres"`
	FavoriteActors []string `json:"favoriteActors"`
}

// @Summary Actualizar perfil propio
// @Description Actualiza nombre, avatar y preferencias. Todos los campos son opcionales.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body updateProfileRequest true "datos a actualizar"
// @Success 200 {object} userResponse
// @Failure 400 {object} map[string]string
// @Router /users/me [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	data := service.UpdateProfileData{
		Name:           req.Name,
		Avatar:         req.Avatar,
		FavoriteGenres: req.FavoriteGenres,
	}
	if req.FavoriteActors != nil {
		actors := make([]primitive.ObjectID, 0, len(req.FavoriteActors))
		for _, hex := range req.FavoriteActors {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				respondErr(w, apperr.BadRequest("invalid actor id in favoriteActors"))
				return
			}
			actors = append(actors, id)
		}
		data.FavoriteActors = actors
	}

	u, err := h.svc.UpdateProfile(r.Context(), UserIDFromContext(r.Context()), data)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toUserResponse(u), "profile updated successfully")
}

// @Summary Listar usuarios (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "página (default: 1)"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {object} map[string]any
// @Router /admin/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	users, total, err := h.svc.ListUsers(r.Context(), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	respond(w, http.StatusOK, map[string]any{
		"users":      resp,
		"total":      total,
		"totalPages": totalPages(total, limit),
	}, "users retrieved successfully")
}

// @Summary Obtener usuario por id (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "userId"
// @Success 200 {object} userResponse
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	u, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toUserResponse(u), "user retrieved successfully")
}

// @Summary Borrar usuario (ADMIN)
// @Description Borra la cuenta. Sus reviews y posts quedan con la referencia colgante.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "userId"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "user deleted successfully")
}
