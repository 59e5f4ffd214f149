package common

import (
	"golang.org/x/text/cases"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// FoldKey returns the case-insensitive comparison key for a column or table name.
// A fresh caser is used per call because cases.Caser is not safe for concurrent use.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// FoldSet is a set of names compared case-insensitively.
type FoldSet map[string]struct{}

// NewFoldSet builds a set from names.
func NewFoldSet(names ...string) FoldSet {
	set := make(FoldSet, len(names))
	for _, n := range names {
		set.Add(n)
	}

	return set
}

// Add inserts name and reports whether it was not already present.
func (s FoldSet) Add(name string) bool {
	key := FoldKey(name)
	if _, ok := s[key]; ok {
		return false
	}

	s[key] = struct{}{}

	return true
}

// Has reports whether name is in the set.
func (s FoldSet) Has(name string) bool {
	_, ok := s[FoldKey(name)]
	return ok
}

// DedupFold removes case-insensitive duplicates, keeping the first spelling
// and the original order.
func DedupFold(names []string) []string {
	seen := make(FoldSet, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		if seen.Add(n) {
			out = append(out, n)
		}
	}

	return out
}
