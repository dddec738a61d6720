// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package models

// Amenity is a named feature a place can offer (wifi, pool, parking).
type Amenity struct {
	Base
	Name string `json:"name"`
}

// AmenityFromRecord builds an Amenity from a plain record.
func AmenityFromRecord(rec map[string]any) (*Amenity, error) {
	a := &Amenity{}
	a.fillBase(rec)
	if err := a.apply(rec); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) apply(rec map[string]any) error {
	if v, ok := rec["name"]; ok {
		name, err := AsString("name", v)
		if err != nil {
			return err
		}
		a.Name = name
	}
	return nil
}

// ApplyUpdates merges an update payload and refreshes updated_at.
func (a *Amenity) ApplyUpdates(updates map[string]any) error {
	if err := a.apply(updates); err != nil {
		return err
	}
	a.Touch()
	return nil
}

// Validate runs the struct-tag checks.
func (a *Amenity) Validate() error {
	return validate.Struct(a)
}

// Record converts the amenity to a plain record for storage.
func (a *Amenity) Record() map[string]any {
	rec := map[string]any{"name": a.Name}
	a.baseRecord(rec)
	return rec
}
