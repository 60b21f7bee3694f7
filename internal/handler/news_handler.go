package handler

import (
	"net/http"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"
)

type NewsHandler struct {
	svc *service.NewsService
}

func NewNewsHandler(s *service.NewsService) *NewsHandler {
	return &NewsHandler{svc: s}
}

type newsRequest struct {
	Title         string     `json:"title" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	PublishedDate *time.Time `json:"publishedDate"`
}

// @Summary Publicar noticia (ADMIN)
// @Tags news
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body newsRequest true "datos"
// @Success 201 {object} models.News
// @Failure 400 {object} map[string]string
// @Router /news [post]
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	published := time.Time{}
	if req.PublishedDate != nil {
		published = *req.PublishedDate
	}
	article, err := h.svc.Create(r.Context(), req.Title, req.Content, req.Author, published)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, article, "news article created successfully")
}

// @Summary Listar noticias
// @Description Más recientes primero
// @Tags news
// @Produce json
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {array} models.News
// @Router /news [get]
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	articles, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, articles, "news retrieved successfully")
}

// @Summary Detalle de noticia
// @Tags news
// @Produce json
// @Param id path string true "newsId"
// @Success 200 {object} models.News
// @Failure 404 {object} map[string]string
// @Router /news/{id} [get]
func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	article, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, article, "news article retrieved successfully")
}

type newsUpdateRequest struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Author        *string    `json:"author"`
	PublishedDate *time.Time `json:"publishedDate"`
}

// @Summary Actualizar noticia (ADMIN)
// @Tags news
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "newsId"
// @Param body body newsUpdateRequest true "datos a actualizar"
// @Success 200 {object} models.News
// @Failure 404 {object} map[string]string
// @Router /news/{id} [put]
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req newsUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	article, err := h.svc.Update(r.Context(), id, service.UpdateNewsData{
		Title:         req.Title,
		Content:       req.Content,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, article, "news article updated successfully")
}

// @Summary Borrar noticia (ADMIN)
// @Tags news
// @Security BearerAuth
// @Produce json
// @Param id path string true "newsId"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "news article deleted successfully")
}
