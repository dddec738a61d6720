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

// CreateAmenity handles POST /api/v1/amenities. Requires name.
func CreateAmenity(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		if !present(payload, "name") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name"})
			return
		}
		rec, err := f.Create(models.KindAmenity, payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// ListAmenities handles GET /api/v1/amenities.
func ListAmenities(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, f.List(models.KindAmenity))
	}
}

// GetAmenity handles GET /api/v1/amenities/:id.
func GetAmenity(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := f.Get(models.KindAmenity, c.Param("id"))
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// UpdateAmenity handles PUT /api/v1/amenities/:id.
func UpdateAmenity(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		stripImmutable(payload, "id", "created_at")
		rec, err := f.Update(models.KindAmenity, c.Param("id"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
