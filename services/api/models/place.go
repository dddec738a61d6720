// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package models

// Place is a rentable property. It references its owner by user_id and
// zero or more amenities by id; referential integrity against those ids is
// checked at the HTTP boundary, not here. Latitude and longitude are
// pointers because "unset" and 0.0 are different things on a map.
type Place struct {
	Base
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	UserID          string   `json:"user_id"`
	NumberRooms     int      `json:"number_rooms" validate:"gte=0"`
	NumberBathrooms int      `json:"number_bathrooms" validate:"gte=0"`
	MaxGuest        int      `json:"max_guest" validate:"gte=0"`
	PriceByNight    int      `json:"price_by_night" validate:"gte=0"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	AmenityIDs      []string `json:"amenity_ids"`
}

// PlaceFromRecord builds a Place from a plain record, coercing the numeric
// fields. A non-numeric value for a numeric field fails fast, before any
// store mutation.
func PlaceFromRecord(rec map[string]any) (*Place, error) {
	p := &Place{}
	p.fillBase(rec)
	if err := p.apply(rec); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) apply(rec map[string]any) error {
	var err error
	for k, v := range rec {
		switch k {
		case "name":
			p.Name, err = AsString("name", v)
		case "description":
			p.Description, err = AsString("description", v)
		case "user_id":
			p.UserID, err = AsString("user_id", v)
		case "number_rooms":
			p.NumberRooms, err = AsInt("number_rooms", v)
		case "number_bathrooms":
			p.NumberBathrooms, err = AsInt("number_bathrooms", v)
		case "max_guest":
			p.MaxGuest, err = AsInt("max_guest", v)
		case "price_by_night":
			p.PriceByNight, err = AsInt("price_by_night", v)
		case "latitude":
			if v == nil {
				p.Latitude = nil
				continue
			}
			var f float64
			f, err = AsFloat("latitude", v)
			p.Latitude = &f
		case "longitude":
			if v == nil {
				p.Longitude = nil
				continue
			}
			var f float64
			f, err = AsFloat("longitude", v)
			p.Longitude = &f
		case "amenity_ids":
			p.AmenityIDs, err = AsStringSlice("amenity_ids", v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdates merges an update payload: id and created_at are skipped and
// updated_at is refreshed.
func (p *Place) ApplyUpdates(updates map[string]any) error {
	if err := p.apply(updates); err != nil {
		return err
	}
	p.Touch()
	return nil
}

// Validate runs the struct-tag checks (non-negative counters and price).
func (p *Place) Validate() error {
	return validate.Struct(p)
}

// Record converts the place to a plain record for storage.
func (p *Place) Record() map[string]any {
	amenityIDs := p.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []string{}
	}
	rec := map[string]any{
		"name":             p.Name,
		"description":      p.Description,
		"user_id":          p.UserID,
		"number_rooms":     p.NumberRooms,
		"number_bathrooms": p.NumberBathrooms,
		"max_guest":        p.MaxGuest,
		"price_by_night":   p.PriceByNight,
		"amenity_ids":      amenityIDs,
	}
	if p.Latitude != nil {
		rec["latitude"] = *p.Latitude
	} else {
		rec["latitude"] = nil
	}
	if p.Longitude != nil {
		rec["longitude"] = *p.Longitude
	} else {
		rec["longitude"] = nil
	}
	p.baseRecord(rec)
	return rec
}
