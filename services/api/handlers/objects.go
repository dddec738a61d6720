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
)

// The /objects namespace is a thin generic front over the facade. Known
// kinds still validate; anything else passes straight through to the
// store. Useful for poking at the system without the per-entity rules.

// CreateObject handles POST /objects/:kind.
func CreateObject(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		rec, err := f.Create(c.Param("kind"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// ListObjects handles GET /objects/:kind.
func ListObjects(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, f.List(c.Param("kind")))
	}
}

// GetObject handles GET /objects/:kind/:id.
func GetObject(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := f.Get(c.Param("kind"), c.Param("id"))
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// UpdateObject handles PUT /objects/:kind/:id.
func UpdateObject(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		stripImmutable(payload, "id", "created_at")
		rec, err := f.Update(c.Param("kind"), c.Param("id"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DeleteObject handles DELETE /objects/:kind/:id.
func DeleteObject(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := f.Delete(c.Param("kind"), c.Param("id")); err != nil {
			writeFacadeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
