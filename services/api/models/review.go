// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package models

// Review is a user's writeup about a place. Both foreign keys are fixed at
// creation; the HTTP layer strips any attempt to change them on update.
type Review struct {
	Base
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
	Text    string `json:"text"`
}

// ReviewFromRecord builds a Review from a plain record.
func ReviewFromRecord(rec map[string]any) (*Review, error) {
	r := &Review{}
	r.fillBase(rec)
	if err := r.apply(rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) apply(rec map[string]any) error {
	var err error
	for k, v := range rec {
		switch k {
		case "user_id":
			r.UserID, err = AsString("user_id", v)
		case "place_id":
			r.PlaceID, err = AsString("place_id", v)
		case "text":
			r.Text, err = AsString("text", v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdates merges an update payload and refreshes updated_at.
func (r *Review) ApplyUpdates(updates map[string]any) error {
	if err := r.apply(updates); err != nil {
		return err
	}
	r.Touch()
	return nil
}

// Validate runs the struct-tag checks.
func (r *Review) Validate() error {
	return validate.Struct(r)
}

// Record converts the review to a plain record for storage.
func (r *Review) Record() map[string]any {
	rec := map[string]any{
		"user_id":  r.UserID,
		"place_id": r.PlaceID,
		"text":     r.Text,
	}
	r.baseRecord(rec)
	return rec
}
