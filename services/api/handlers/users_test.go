// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the user resource handlers

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Create Tests
// =============================================================================

func TestCreateUser_RequiresEmailAndPassword(t *testing.T) {
	router, _ := setupRouter()

	tests := []struct {
		name    string
		payload map[string]any
		wantErr string
	}{
		{"missing email", map[string]any{"password": "pw"}, "Missing email"},
		{"empty email", map[string]any{"email": "", "password": "pw"}, "Missing email"},
		{"missing password", map[string]any{"email": "a@example.com"}, "Missing password"},
		{"empty password", map[string]any{"email": "a@example.com", "password": ""}, "Missing password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, "POST", "/api/v1/users", tt.payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantErr, decode(t, w)["error"])
		})
	}
}

func TestCreateUser_NeverReturnsPassword(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "POST", "/api/v1/users", map[string]any{
		"email":      "a@example.com",
		"password":   "secret",
		"first_name": "Ada",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.NotContains(t, created, "password")
	id := created["id"].(string)

	w = perform(t, router, "GET", "/api/v1/users/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w), "password")

	w = perform(t, router, "GET", "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, item := range decodeList(t, w) {
		assert.NotContains(t, item, "password")
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "POST", "/api/v1/users", []string{"not", "an", "object"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payload", decode(t, w)["error"])
}

// =============================================================================
// Read Tests
// =============================================================================

func TestGetUser_NotFound(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "GET", "/api/v1/users/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w)["error"])
}

func TestGetUser_RoundTrip(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "POST", "/api/v1/users", map[string]any{
		"email": "a@example.com", "password": "pw", "last_name": "Lovelace",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)

	w = perform(t, router, "GET", "/api/v1/users/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode(t, w))
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdateUser_StripsImmutableFields(t *testing.T) {
	router, _ := setupRouter()
	id := createUser(t, router)

	w := perform(t, router, "PUT", "/api/v1/users/"+id, map[string]any{
		"id":         "forged",
		"created_at": "1999-01-01T00:00:00Z",
		"first_name": "Grace",
	})

	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "Grace", updated["first_name"])
}

func TestUpdateUser_NotFound(t *testing.T) {
	router, _ := setupRouter()

	w := perform(t, router, "PUT", "/api/v1/users/nope", map[string]any{"first_name": "X"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser_BadValue(t *testing.T) {
	router, _ := setupRouter()
	id := createUser(t, router)

	w := perform(t, router, "PUT", "/api/v1/users/"+id, map[string]any{"email": 12})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "email must be a string")
}
