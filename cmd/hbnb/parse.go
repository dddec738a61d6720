// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AleutianAI/hbnb/services/api/store"
)

// parseUpdates parses an update argument blob: a JSON object first, and
// failing that, key=value tokens with double-quote support for values
// containing spaces.
func parseUpdates(raw string) (store.Record, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, nil
	}

	tokens, err := splitTokens(raw)
	if err != nil {
		return nil, err
	}
	updates := store.Record{}
	for _, token := range tokens {
		k, v, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, `"`)
		updates[k] = v
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no attributes parsed")
	}
	return updates, nil
}

// splitTokens splits on spaces while keeping double-quoted segments
// together. An unterminated quote is an error.
func splitTokens(raw string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	for _, r := range raw {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
