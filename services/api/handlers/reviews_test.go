// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the review resource handlers

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

func TestCreateReview_RequiredFieldsAndReferences(t *testing.T) {
	router, _ := setupRouter()
	userID := createUser(t, router)
	placeID := createPlace(t, router, userID)

	tests := []struct {
		name    string
		payload map[string]any
		wantErr string
	}{
		{"missing user_id", map[string]any{"place_id": placeID, "text": "x"}, "Missing user_id"},
		{"missing place_id", map[string]any{"user_id": userID, "text": "x"}, "Missing place_id"},
		{"missing text", map[string]any{"user_id": userID, "place_id": placeID}, "Missing text"},
		{"unknown user", map[string]any{"user_id": "ghost", "place_id": placeID, "text": "x"}, "user_id not found"},
		{"unknown place", map[string]any{"user_id": userID, "place_id": "ghost", "text": "x"}, "place_id not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, "POST", "/api/v1/reviews", tt.payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantErr, decode(t, w)["error"])
		})
	}
}

func TestCreateReview_Succeeds(t *testing.T) {
	router, _ := setupRouter()
	userID := createUser(t, router)
	placeID := createPlace(t, router, userID)

	w := perform(t, router, "POST", "/api/v1/reviews", map[string]any{
		"user_id": userID, "place_id": placeID, "text": "great stay",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, userID, created["user_id"])
	assert.Equal(t, placeID, created["place_id"])
	assert.Equal(t, "great stay", created["text"])
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdateReview_RelationalKeysAreImmutable(t *testing.T) {
	router, _ := setupRouter()
	userID := createUser(t, router)
	placeID := createPlace(t, router, userID)

	w := perform(t, router, "POST", "/api/v1/reviews", map[string]any{
		"user_id": userID, "place_id": placeID, "text": "first take",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = perform(t, router, "PUT", "/api/v1/reviews/"+reviewID, map[string]any{
		"user_id":  "other",
		"place_id": "other",
		"text":     "second take",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode(t, w)
	assert.Equal(t, userID, updated["user_id"], "user_id silently kept")
	assert.Equal(t, placeID, updated["place_id"], "place_id silently kept")
	assert.Equal(t, "second take", updated["text"])
}

func TestUpdateReview_TextMustBeString(t *testing.T) {
	router, _ := setupRouter()
	userID := createUser(t, router)
	placeID := createPlace(t, router, userID)

	w := perform(t, router, "POST", "/api/v1/reviews", map[string]any{
		"user_id": userID, "place_id": placeID, "text": "ok",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = perform(t, router, "PUT", "/api/v1/reviews/"+reviewID, map[string]any{"text": 42})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text must be string", decode(t, w)["error"])
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteReview_Lifecycle(t *testing.T) {
	router, _ := setupRouter()
	userID := createUser(t, router)
	placeID := createPlace(t, router, userID)

	w := perform(t, router, "POST", "/api/v1/reviews", map[string]any{
		"user_id": userID, "place_id": placeID, "text": "ok",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = perform(t, router, "DELETE", "/api/v1/reviews/"+reviewID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String(), "delete responds with an empty body")

	w = perform(t, router, "GET", "/api/v1/reviews/"+reviewID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, router, "DELETE", "/api/v1/reviews/"+reviewID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
