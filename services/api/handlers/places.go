// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/models"
	"github.com/AleutianAI/hbnb/services/api/store"
)

// checkPlaceNumerics validates the bounded/typed numeric fields when they
// appear in a payload. Writes the 400 response and returns false on the
// first failure.
func checkPlaceNumerics(c *gin.Context, payload store.Record) bool {
	if v, ok := payload["price_by_night"]; ok {
		price, err := models.AsInt("price_by_night", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_by_night must be int"})
			return false
		}
		if price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_by_night must be >= 0"})
			return false
		}
	}
	if v, ok := payload["latitude"]; ok && v != nil {
		if _, err := models.AsFloat("latitude", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be float"})
			return false
		}
	}
	if v, ok := payload["longitude"]; ok && v != nil {
		if _, err := models.AsFloat("longitude", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be float"})
			return false
		}
	}
	return true
}

// checkPlaceOwner verifies user_id resolves to an existing user. The
// check crosses entity boundaries, so it lives here rather than in the
// kind-agnostic facade.
func checkPlaceOwner(c *gin.Context, f *facade.Facade, userID string) bool {
	if _, err := f.Get(models.KindUser, userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id not found"})
		return false
	}
	return true
}

// sanitizePlace shapes a place record for a read response: the owner is
// embedded in place of user_id, amenity ids resolve to full records and
// the reviews list is computed by scan. All lookups are best-effort
// snapshots; a reference deleted mid-flight degrades the response rather
// than failing it.
func sanitizePlace(f *facade.Facade, rec store.Record) store.Record {
	out := make(store.Record, len(rec)+2)
	for k, v := range rec {
		out[k] = v
	}

	ownerID, _ := out["user_id"].(string)
	delete(out, "user_id")
	if ownerID != "" {
		if owner, err := f.Get(models.KindUser, ownerID); err == nil {
			out["owner"] = store.Record{"id": owner["id"], "email": owner["email"]}
		} else {
			// Owner deleted since the place was created.
			out["owner"] = store.Record{"id": ownerID}
		}
	} else {
		out["owner"] = nil
	}

	amenities := make([]store.Record, 0)
	switch ids := rec["amenity_ids"].(type) {
	case []string:
		for _, id := range ids {
			if a, err := f.Get(models.KindAmenity, id); err == nil {
				amenities = append(amenities, a)
			}
		}
	case []any:
		for _, raw := range ids {
			id, ok := raw.(string)
			if !ok {
				continue
			}
			if a, err := f.Get(models.KindAmenity, id); err == nil {
				amenities = append(amenities, a)
			}
		}
	}
	out["amenities"] = amenities

	reviews := make([]store.Record, 0)
	for _, r := range f.List(models.KindReview) {
		if r["place_id"] == out["id"] {
			reviews = append(reviews, r)
		}
	}
	out["reviews"] = reviews
	return out
}

// CreatePlace handles POST /api/v1/places. Requires name and a user_id
// that resolves to an existing user.
func CreatePlace(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		if !present(payload, "name") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name"})
			return
		}
		if !checkPlaceNumerics(c, payload) {
			return
		}
		if !present(payload, "user_id") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
			return
		}
		userID, _ := payload["user_id"].(string)
		if !checkPlaceOwner(c, f, userID) {
			return
		}
		rec, err := f.Create(models.KindPlace, payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sanitizePlace(f, rec))
	}
}

// ListPlaces handles GET /api/v1/places.
func ListPlaces(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := f.List(models.KindPlace)
		out := make([]store.Record, 0, len(items))
		for _, rec := range items {
			out = append(out, sanitizePlace(f, rec))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPlace handles GET /api/v1/places/:id.
func GetPlace(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := f.Get(models.KindPlace, c.Param("id"))
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitizePlace(f, rec))
	}
}

// UpdatePlace handles PUT /api/v1/places/:id. A new user_id, when given,
// must resolve to an existing user.
func UpdatePlace(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		stripImmutable(payload, "id", "created_at")
		if !checkPlaceNumerics(c, payload) {
			return
		}
		if present(payload, "user_id") {
			userID, _ := payload["user_id"].(string)
			if !checkPlaceOwner(c, f, userID) {
				return
			}
		}
		rec, err := f.Update(models.KindPlace, c.Param("id"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitizePlace(f, rec))
	}
}
