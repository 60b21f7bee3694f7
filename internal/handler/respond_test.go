package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respond(rec, http.StatusCreated, map[string]any{"id": "x"}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusCreated), body["status"])
	assert.Equal(t, "created", body["message"])
	assert.NotNil(t, body["payload"])
}

func TestRespondErrMapsAppErr(t *testing.T) {
	rec := httptest.NewRecorder()
	respondErr(rec, apperr.Conflict("already exists"))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusConflict), body["status"])
	assert.Equal(t, "already exists", body["errorMessage"])
	// el sobre de error no tiene payload
	_, hasPayload := body["payload"]
	assert.False(t, hasPayload)
}

func TestRespondErrHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondErr(rec, errors.New("mongo: connection refused at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["errorMessage"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestDecodeBodyValidates(t *testing.T) {
	type req struct {
		Email string `json:"email" validate:"required,email"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"email":"no-es-un-mail"}`))
	var dst req
	err := decodeBody(r, &dst)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))

	r = httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"email":"ok@example.com"}`))
	dst = req{}
	assert.NoError(t, decodeBody(r, &dst))
	assert.Equal(t, "ok@example.com", dst.Email)
}

func TestDecodeBodyRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{`))
	var dst struct{}
	err := decodeBody(r, &dst)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(25, 10))
	assert.Equal(t, 2, totalPages(20, 10))
	assert.Equal(t, 0, totalPages(0, 10))

	// limit no positivo usa el default de los services
	assert.Equal(t, 3, totalPages(25, 0))
}

func TestHealthUsesEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	payload, ok := body["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", payload["status"])
}
