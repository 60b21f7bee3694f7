package handler

import (
	"net/http"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(s *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: s}
}

type communityRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// @Summary Crear comunidad
// @Tags communities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body communityRequest true "datos"
// @Success 201 {object} models.Community
// @Failure 400 {object} map[string]string
// @Router /communities [post]
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req communityRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	community, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), req.Title, req.Description)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, community, "community created successfully")
}

// @Summary Listar comunidades
// @Tags communities
// @Produce json
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /communities [get]
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	communities, total, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"communities": communities,
		"total":       total,
		"totalPages":  totalPages(total, limit),
	}, "communities retrieved successfully")
}

// @Summary Detalle de comunidad
// @Tags communities
// @Produce json
// @Param id path string true "communityId"
// @Success 200 {object} models.Community
// @Failure 404 {object} map[string]string
// @Router /communities/{id} [get]
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	community, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, community, "community retrieved successfully")
}

type postRequest struct {
	Text string `json:"text" validate:"required"`
}

// @Summary Publicar en una comunidad
// @Description Los posts son de solo agregado, no se editan ni borran
// @Tags communities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "communityId"
// @Param body body postRequest true "texto"
// @Success 201 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /communities/{id}/posts [post]
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req postRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), id, UserIDFromContext(r.Context()), req.Text)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, post, "post created successfully")
}

// @Summary Posts de una comunidad
// @Tags communities
// @Produce json
// @Param id path string true "communityId"
// @Param page query int false "página"
// @Param limit query int false "límite"
// @Success 200 {object} map[string]any
// @Router /communities/{id}/posts [get]
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	page, limit := pageParams(r)
	posts, total, err := h.svc.ListPosts(r.Context(), id, page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"posts":      posts,
		"total":      total,
		"totalPages": totalPages(int64(total), limit),
	}, "posts retrieved successfully")
}

// @Summary Responder un post
// @Tags communities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "communityId"
// @Param postId path string true "postId"
// @Param body body postRequest true "texto"
// @Success 201 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /communities/{id}/posts/{postId}/replies [post]
func (h *CommunityHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	postID, err := idParam(r, "postId")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req postRequest
	if err := decodeBody(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	post, err := h.svc.Reply(r.Context(), id, postID, UserIDFromContext(r.Context()), req.Text)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, post, "reply added successfully")
}

// @Summary Respuestas de un post
// @Tags communities
// @Produce json
// @Param id path string true "communityId"
// @Param postId path string true "postId"
// @Success 200 {array} models.Reply
// @Failure 404 {object} map[string]string
// @Router /communities/{id}/posts/{postId}/replies [get]
func (h *CommunityHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondErr(w, err)
		return
	}
	postID, err := idParam(r, "postId")
	if err != nil {
		respondErr(w, err)
		return
	}
	replies, err := h.svc.ListReplies(r.Context(), id, postID)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, replies, "replies retrieved successfully")
}
