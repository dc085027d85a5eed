// Copyright (c) 2026 Pokereview. All rights reserved.

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokereview/pokereview/pkg/normalize"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{"case_insensitive", "Pikachu", "pIKACHU", true},
		{"surrounding_whitespace", "  Electric ", "electric", true},
		{"unicode_folding", "Straße", "STRASSE", true},
		{"different_names", "Pikachu", "Raichu", false},
		{"inner_whitespace_preserved", "Mr Mime", "MrMime", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, normalize.Fold(tt.a), normalize.Fold(tt.b))
			} else {
				assert.NotEqual(t, normalize.Fold(tt.a), normalize.Fold(tt.b))
			}
		})
	}
}

func TestPair(t *testing.T) {
	// Pair keys must not collapse across field boundaries.
	assert.NotEqual(t, normalize.Pair("ab", "c"), normalize.Pair("a", "bc"))

	// Same pair under case and whitespace variance collides.
	assert.Equal(t, normalize.Pair(" Ash", "KETCHUM "), normalize.Pair("ash", "ketchum"))
}
