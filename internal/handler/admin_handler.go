package handler

import (
	"net/http"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"
)

type AdminHandler struct {
	stats   *service.AdminService
	catalog *service.CatalogService
}

func NewAdminHandler(stats *service.AdminService, catalog *service.CatalogService) *AdminHandler {
	return &AdminHandler{stats: stats, catalog: catalog}
}

// @Summary Estadísticas del sitio (ADMIN)
// @Description Películas populares, usuarios totales, altas recientes, más reseñadas y comunidades más activas
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.SiteStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, stats, "site statistics retrieved successfully")
}

type personRequest struct {
	Name        string         `json:"name" validate:"required"`
	Biography   string         `json:"biography"`
	Filmography []string       `json:"filmography"`
	Awards      []models.Award `json:"awards"`
	Photos      []string       `json:"photos"`
}

// @Summary Alta de actor (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body personRequest true "datos"
// @Success 201 {object} models.Actor
// @Failure 400 {object} map[string]string
// @Router /admin/actors [post]
func (h *AdminHandler) AddActor(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}
	filmography, err := parseIDs(req.Filmography, "filmography")
	if err != nil {
		respondErr(w, err)
		return
	}

	actor, err := h.catalog.AddActor(r.Context(), service.PersonData{
		Name:        req.Name,
		Biography:   req.Biography,
		Filmography: filmography,
		Awards:      req.Awards,
		Photos:      req.Photos,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, actor, "actor added successfully")
}

// @Summary Alta de director (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body personRequest true "datos"
// @Success 201 {object} models.Director
// @Failure 400 {object} map[string]string
// @Router /admin/directors [post]
func (h *AdminHandler) AddDirector(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}
	filmography, err := parseIDs(req.Filmography, "filmography")
	if err != nil {
		respondErr(w, err)
		return
	}

	director, err := h.catalog.AddDirector(r.Context(), service.PersonData{
		Name:        req.Name,
		Biography:   req.Biography,
		Filmography: filmography,
		Awards:      req.Awards,
		Photos:      req.Photos,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, director, "director added successfully")
}

// @Summary Perfil de actor
// @Description Actor con su filmografía resuelta
// @Tags movies
// @Produce json
// @Param id path string true "actorId"
// @Success 200 {object} service.ActorProfile
// @Failure 404 {object} map[string]string
// @Router /actors/{id} [get]
func (h *AdminHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	profile, err := h.catalog.GetActor(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, profile, "actor retrieved successfully")
}

// @Summary Perfil de director
// @Tags movies
// @Produce json
// @Param id path string true "directorId"
// @Success 200 {object} service.DirectorProfile
// @Failure 404 {object} map[string]string
// @Router /directors/{id} [get]
func (h *AdminHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	profile, err := h.catalog.GetDirector(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, profile, "director retrieved successfully")
}
