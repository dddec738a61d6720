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
)

// CreateReview handles POST /api/v1/reviews. Requires user_id, place_id
// and text; both references must resolve at creation time.
func CreateReview(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		if !present(payload, "user_id") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
			return
		}
		if !present(payload, "place_id") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing place_id"})
			return
		}
		if !present(payload, "text") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
			return
		}
		userID, _ := payload["user_id"].(string)
		if _, err := f.Get(models.KindUser, userID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id not found"})
			return
		}
		placeID, _ := payload["place_id"].(string)
		if _, err := f.Get(models.KindPlace, placeID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "place_id not found"})
			return
		}
		rec, err := f.Create(models.KindReview, payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// ListReviews handles GET /api/v1/reviews.
func ListReviews(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, f.List(models.KindReview))
	}
}

// GetReview handles GET /api/v1/reviews/:id.
func GetReview(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := f.Get(models.KindReview, c.Param("id"))
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// UpdateReview handles PUT /api/v1/reviews/:id. The relational keys are
// fixed at creation, so user_id and place_id are stripped along with the
// usual immutables.
func UpdateReview(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		stripImmutable(payload, "id", "created_at", "user_id", "place_id")
		if v, ok := payload["text"]; ok {
			if _, isStr := v.(string); !isStr {
				c.JSON(http.StatusBadRequest, gin.H{"error": "text must be string"})
				return
			}
		}
		rec, err := f.Update(models.KindReview, c.Param("id"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DeleteReview handles DELETE /api/v1/reviews/:id.
func DeleteReview(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := f.Delete(models.KindReview, c.Param("id")); err != nil {
			writeFacadeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
