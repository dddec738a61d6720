// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package models

import (
	"fmt"
	"math"
	"strconv"
)

// AsString returns v as a string or an error naming the field.
func AsString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", field)
	}
	return s, nil
}

// AsInt converts v to an int. JSON decoding hands numbers over as
// float64, so floats truncate toward zero; numeric strings parse.
func AsInt(field string, v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("%s must be int", field)
		}
		return int(math.Trunc(val)), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%s must be int", field)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be int", field)
	}
}

// AsFloat converts v to a float64; numeric strings parse.
func AsFloat(field string, v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be float", field)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s must be float", field)
	}
}

// AsStringSlice converts v (typically a JSON array decoded as []any)
// to a slice of strings.
func AsStringSlice(field string, v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a list of strings", field)
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", field)
	}
}
