// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Shared helpers for handler tests

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires every handler onto a fresh engine with a fresh
// store, mirroring the production route layout.
func setupRouter() (*gin.Engine, *facade.Facade) {
	f := facade.New(store.New())
	router := gin.New()

	router.GET("/health", HealthCheck)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/users", CreateUser(f))
		v1.GET("/users", ListUsers(f))
		v1.GET("/users/:id", GetUser(f))
		v1.PUT("/users/:id", UpdateUser(f))

		v1.POST("/amenities", CreateAmenity(f))
		v1.GET("/amenities", ListAmenities(f))
		v1.GET("/amenities/:id", GetAmenity(f))
		v1.PUT("/amenities/:id", UpdateAmenity(f))

		v1.POST("/places", CreatePlace(f))
		v1.GET("/places", ListPlaces(f))
		v1.GET("/places/:id", GetPlace(f))
		v1.PUT("/places/:id", UpdatePlace(f))

		v1.POST("/reviews", CreateReview(f))
		v1.GET("/reviews", ListReviews(f))
		v1.GET("/reviews/:id", GetReview(f))
		v1.PUT("/reviews/:id", UpdateReview(f))
		v1.DELETE("/reviews/:id", DeleteReview(f))
	}
	objects := router.Group("/objects")
	{
		objects.POST("/:kind", CreateObject(f))
		objects.GET("/:kind", ListObjects(f))
		objects.GET("/:kind/:id", GetObject(f))
		objects.PUT("/:kind/:id", UpdateObject(f))
		objects.DELETE("/:kind/:id", DeleteObject(f))
	}
	return router, f
}

// perform issues a request with an optional JSON body and returns the
// recorder.
func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON object response.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// decodeList unmarshals a JSON array response.
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createUser creates a user through the API and returns its id.
func createUser(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := perform(t, router, "POST", "/api/v1/users", map[string]any{
		"email":    "owner@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["id"].(string)
}

// createPlace creates a place owned by userID and returns its id.
func createPlace(t *testing.T, router *gin.Engine, userID string) string {
	t.Helper()
	w := perform(t, router, "POST", "/api/v1/places", map[string]any{
		"name":    "loft",
		"user_id": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["id"].(string)
}
