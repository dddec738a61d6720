// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for console argument parsing

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/hbnb/services/api/store"
)

func TestParseUpdates_JSONObject(t *testing.T) {
	updates, err := parseUpdates(`{"name": "Loft", "price_by_night": 80}`)

	require.NoError(t, err)
	assert.Equal(t, "Loft", updates["name"])
	assert.Equal(t, float64(80), updates["price_by_night"])
}

func TestParseUpdates_KeyValuePairs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want store.Record
	}{
		{
			"single pair",
			`name=Loft`,
			store.Record{"name": "Loft"},
		},
		{
			"multiple pairs",
			`first_name=Betty last_name=Holberton`,
			store.Record{"first_name": "Betty", "last_name": "Holberton"},
		},
		{
			"quoted value with spaces",
			`name="Cozy downtown loft" city=SF`,
			store.Record{"name": "Cozy downtown loft", "city": "SF"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, err := parseUpdates(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, updates)
		})
	}
}

func TestParseUpdates_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unterminated quote", `name="Cozy loft`},
		{"no pairs at all", `gibberish`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseUpdates(tt.raw)

			assert.Error(t, err)
		})
	}
}

func TestSplitTokens_QuotedSegments(t *testing.T) {
	tokens, err := splitTokens(`a=1 b="two words"  c=3`)

	require.NoError(t, err)
	assert.Equal(t, []string{`a=1`, `b="two words"`, `c=3`}, tokens)
}

func TestSplitKindID(t *testing.T) {
	kind, id, ok := splitKindID("User abc123")
	require.True(t, ok)
	assert.Equal(t, "User", kind)
	assert.Equal(t, "abc123", id)

	_, _, ok = splitKindID("User")
	assert.False(t, ok)

	_, _, ok = splitKindID("")
	assert.False(t, ok)
}
