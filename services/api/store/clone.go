// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

// cloneRecord returns an independent deep copy of a record.
func cloneRecord(rec Record) Record {
	if rec == nil {
		return Record{}
	}
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the container shapes JSON decoding produces.
// Scalars are returned as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case Record:
		return map[string]any(cloneRecord(val))
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
