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

// sanitizeUser strips the password before a user record leaves the API.
func sanitizeUser(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}

// CreateUser handles POST /api/v1/users. Requires email and password.
func CreateUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		if !present(payload, "email") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
			return
		}
		if !present(payload, "password") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing password"})
			return
		}
		rec, err := f.Create(models.KindUser, payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sanitizeUser(rec))
	}
}

// ListUsers handles GET /api/v1/users.
func ListUsers(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := f.List(models.KindUser)
		out := make([]store.Record, 0, len(items))
		for _, rec := range items {
			out = append(out, sanitizeUser(rec))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetUser handles GET /api/v1/users/:id.
func GetUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := f.Get(models.KindUser, c.Param("id"))
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitizeUser(rec))
	}
}

// UpdateUser handles PUT /api/v1/users/:id. Immutable fields are stripped,
// not rejected.
func UpdateUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := bindPayload(c)
		if !ok {
			return
		}
		stripImmutable(payload, "id", "created_at")
		rec, err := f.Update(models.KindUser, c.Param("id"), payload)
		if err != nil {
			writeFacadeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitizeUser(rec))
	}
}
