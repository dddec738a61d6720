// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package models

// User is an account that can own places and author reviews. The password
// is stored as given; the HTTP layer is responsible for never serializing
// it back out.
type User struct {
	Base
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserFromRecord builds a User from a plain record, picking only known
// fields. String fields reject non-string values.
func UserFromRecord(rec map[string]any) (*User, error) {
	u := &User{}
	u.fillBase(rec)
	if err := u.apply(rec); err != nil {
		return nil, err
	}
	return u, nil
}

// apply sets known fields from rec, coercing values. Unknown keys are
// ignored, matching the permissive construction rule.
func (u *User) apply(rec map[string]any) error {
	var err error
	for k, v := range rec {
		switch k {
		case "email":
			u.Email, err = AsString("email", v)
		case "password":
			u.Password, err = AsString("password", v)
		case "first_name":
			u.FirstName, err = AsString("first_name", v)
		case "last_name":
			u.LastName, err = AsString("last_name", v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdates merges an update payload: id and created_at are skipped and
// updated_at is refreshed.
func (u *User) ApplyUpdates(updates map[string]any) error {
	if err := u.apply(updates); err != nil {
		return err
	}
	u.Touch()
	return nil
}

// Validate runs the struct-tag checks.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// Record converts the user to a plain record for storage.
func (u *User) Record() map[string]any {
	rec := map[string]any{
		"email":      u.Email,
		"password":   u.Password,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
	u.baseRecord(rec)
	return rec
}
