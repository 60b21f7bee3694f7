package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	start, end := pageBounds(1, 10, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = pageBounds(3, 10, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	// fuera de rango: slice vacío
	start, end = pageBounds(9, 10, 25)
	assert.Equal(t, start, end)

	// defaults para valores no positivos
	start, end = pageBounds(0, 0, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, limit)
}
