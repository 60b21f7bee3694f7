package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, CodeOf(NotFound("nope")))
	assert.Equal(t, http.StatusConflict, CodeOf(Conflict("dup")))
	assert.Equal(t, http.StatusInternalServerError, CodeOf(errors.New("raw")))
}

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", Forbidden("no"))
	assert.Equal(t, http.StatusForbidden, CodeOf(err))
	assert.Equal(t, "context: no", err.Error())
}
