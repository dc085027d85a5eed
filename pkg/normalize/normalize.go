// Copyright (c) 2026 Pokereview. All rights reserved.

// Package normalize produces canonical comparison keys for identifying fields.
//
// # Usage
//
// Duplicate detection across sibling records (category names, owner name
// pairs, review titles) is defined on the trimmed, case-folded form of the
// identifying fields, so "  PIKACHU " and "pikachu" collide.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs full Unicode case folding, which is stricter than
// strings.ToLower for non-ASCII input (e.g. German ß, Turkish İ).
var folder = cases.Fold()

// Fold returns the canonical comparison key for an identifying field:
// surrounding whitespace removed, then Unicode case folding applied.
func Fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// Pair returns the canonical comparison key for a two-field identity,
// such as an owner's or reviewer's first/last name pair.
//
// The unit separator keeps ("ab","c") distinct from ("a","bc").
func Pair(first, last string) string {
	return Fold(first) + "\x1f" + Fold(last)
}
