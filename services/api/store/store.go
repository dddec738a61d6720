// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store provides process-lifetime keyed storage for entity records.
//
// Records are stored per entity kind as plain field maps. The store is
// intentionally lightweight so it can be swapped for a DB-backed
// implementation behind the same facade with minimal changes.
//
// # Aliasing
//
// Every read and write passes through a deep copy. No reference to a stored
// record ever escapes the store boundary, so callers can freely mutate what
// they get back without corrupting stored state.
//
// # Thread Safety
//
// A single RWMutex guards all per-kind maps. Concurrent creates never
// produce duplicate ids and update interleavings are serialized.
package store

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one stored instance of an entity kind: a mapping from field
// name to value. Values are limited to what JSON can carry (strings,
// float64, bool, nil, []any, map[string]any).
type Record map[string]any

// Store holds records keyed by kind and id for the lifetime of the process.
// All state is lost on restart; there is no durable layer behind it.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]map[string]Record)}
}

// nowISO returns the current UTC time in ISO-8601 with a trailing "Z".
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.999999Z07:00")
}

// newID returns a fresh 32-character lowercase hex id.
func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// kindMap returns the map for kind, creating it if needed.
// Caller must hold the write lock.
func (s *Store) kindMap(kind string) map[string]Record {
	m, ok := s.data[kind]
	if !ok {
		m = make(map[string]Record)
		s.data[kind] = m
	}
	return m
}

// Create stores a copy of fields under a freshly generated id, stamping
// created_at and updated_at. Any client-supplied id is discarded; the
// returned record is an independent copy.
func (s *Store) Create(kind string, fields Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	now := nowISO()
	rec := cloneRecord(fields)
	delete(rec, "id")
	rec["id"] = id
	rec["created_at"] = now
	rec["updated_at"] = now
	s.kindMap(kind)[id] = rec
	return cloneRecord(rec)
}

// Get returns a copy of the record, or false if absent.
func (s *Store) Get(kind, id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[kind][id]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}

// List returns copies of all records of the given kind. Order is
// unspecified.
func (s *Store) List(kind string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.data[kind]))
	for _, rec := range s.data[kind] {
		out = append(out, cloneRecord(rec))
	}
	return out
}

// ListAll returns copies of every stored record grouped by kind.
func (s *Store) ListAll() map[string][]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]Record, len(s.data))
	for kind, recs := range s.data {
		group := make([]Record, 0, len(recs))
		for _, rec := range recs {
			group = append(group, cloneRecord(rec))
		}
		out[kind] = group
	}
	return out
}

// Update merges changes into the stored record field by field, refreshes
// updated_at and returns a copy. The id and created_at keys in changes are
// ignored; they are never reassigned after creation. Returns false if no
// record exists.
func (s *Store) Update(kind, id string, changes Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[kind][id]
	if !ok {
		return nil, false
	}
	for k, v := range changes {
		if k == "id" || k == "created_at" {
			continue
		}
		rec[k] = cloneValue(v)
	}
	rec["updated_at"] = nowISO()
	return cloneRecord(rec), true
}

// Delete removes the record unconditionally and reports whether one was
// removed. There is no cascading: records referencing the deleted id keep
// their dangling references.
func (s *Store) Delete(kind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[kind][id]; !ok {
		return false
	}
	delete(s.data[kind], id)
	return true
}

// Count returns the number of records of the given kind.
func (s *Store) Count(kind string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[kind])
}

// Clear drops every stored record of every kind.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]map[string]Record)
}
