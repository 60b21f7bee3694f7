package handler

import "net/http"

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{"status": "ok"}, "service is healthy")
}
