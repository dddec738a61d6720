// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package models defines the four HBNB entity shapes and their
// construction, defaulting and validation rules.
//
// Each entity embeds Base (id plus creation and update timestamps) and
// converts to and from the plain records the store keeps. Field coercion
// follows lenient numeric conversion: floats truncate to ints and numeric
// strings parse, but a non-numeric value for a numeric field is a hard
// error raised before any store mutation.
package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Entity kind names as used by the store, facade, HTTP layer and console.
const (
	KindUser    = "User"
	KindPlace   = "Place"
	KindAmenity = "Amenity"
	KindReview  = "Review"
)

// Kinds lists every known entity kind.
var Kinds = []string{KindUser, KindPlace, KindAmenity, KindReview}

// validate is the shared validator instance for entity structs.
var validate = validator.New()

// Base carries the fields every entity shares. The id is opaque and never
// reassigned; created_at is immutable after creation; updated_at is
// refreshed on every successful mutation.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NowISO returns the current UTC time as an ISO-8601 string with a
// trailing literal "Z".
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.999999Z07:00")
}

// NewBase returns a Base with a fresh id and both timestamps set to now.
func NewBase() Base {
	now := NowISO()
	return Base{ID: NewID(), CreatedAt: now, UpdatedAt: now}
}

// NewID returns a 32-character lowercase hex id.
func NewID() string {
	u := uuid.New()
	out := make([]byte, 0, 32)
	const hexdigits = "0123456789abcdef"
	for _, b := range u {
		out = append(out, hexdigits[b>>4], hexdigits[b&0x0f])
	}
	return string(out)
}

// fillBase populates base fields from a record, generating fresh values
// for anything absent.
func (b *Base) fillBase(rec map[string]any) {
	*b = NewBase()
	if v, ok := rec["id"].(string); ok && v != "" {
		b.ID = v
	}
	if v, ok := rec["created_at"].(string); ok && v != "" {
		b.CreatedAt = v
	}
	if v, ok := rec["updated_at"].(string); ok && v != "" {
		b.UpdatedAt = v
	}
}

// baseRecord writes the shared fields into a record.
func (b Base) baseRecord(rec map[string]any) {
	rec["id"] = b.ID
	rec["created_at"] = b.CreatedAt
	rec["updated_at"] = b.UpdatedAt
}

// Touch refreshes the updated_at timestamp.
func (b *Base) Touch() {
	b.UpdatedAt = NowISO()
}
