// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the per-entity HTTP resource handlers.
//
// Each handler performs request-shape checks (required fields, numeric
// bounds), cross-entity referential checks against the facade, then calls
// the facade and shapes the response. The first failing check wins; error
// bodies are always {"error": message}.
//
// Status mapping: 201 create, 200 read/update, 204 delete, 404 not-found,
// 400 validation/shape/reference failure.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/store"
)

// bindPayload decodes the request body into a record. On malformed JSON
// or a non-object body it writes 400 and returns false.
func bindPayload(c *gin.Context) (store.Record, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return nil, false
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, true
}

// present reports whether the payload carries a non-empty value for key.
// Absent keys, nils and empty strings all count as missing.
func present(payload store.Record, key string) bool {
	v, ok := payload[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// stripImmutable drops fields that may never change through the API.
// They are silently ignored rather than rejected.
func stripImmutable(payload store.Record, fields ...string) {
	for _, field := range fields {
		delete(payload, field)
	}
}

// writeFacadeError converts a facade error to its HTTP shape: 404 with a
// fixed "Not found" body, or 400 carrying the validation message.
func writeFacadeError(c *gin.Context, err error) {
	if facade.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
