// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the generic /objects namespace

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjects_UnknownKindPassthrough(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "POST", "/objects/Widget", map[string]any{"color": "blue"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, "blue", created["color"])
	assert.NotEmpty(t, created["id"])
	id := created["id"].(string)

	w = perform(t, router, "GET", "/objects/Widget/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode(t, w))

	w = perform(t, router, "PUT", "/objects/Widget/"+id, map[string]any{"color": "red"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "red", decode(t, w)["color"])

	w = perform(t, router, "DELETE", "/objects/Widget/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, router, "GET", "/objects/Widget", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestObjects_KnownKindStillValidates(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "POST", "/objects/Place", map[string]any{
		"name":           "Loft",
		"user_id":        "u1",
		"price_by_night": "cheap",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "price_by_night must be int", decode(t, w)["error"])
}

func TestObjects_GetMissingReturnsNotFound(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "GET", "/objects/Widget/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w)["error"])
}
