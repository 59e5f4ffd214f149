package match

import (
	"strings"

	"infa2sql/internal/common"
)

// identSuffixes are stripped by NormalizeIdentWithSuffixStrip, longest first.
// Short suffixes such as "dt" or "cd" are left alone, they collide with too
// many real names.
var identSuffixes = []string{"timestamp", "date", "key", "id"}

// NormalizeIdent folds a column identifier for fuzzy matching: separators
// (_, -, ., space) are dropped and the rest is case-folded, so "CustomerID",
// "customer_id" and "CUSTOMER-ID" compare equal.
func NormalizeIdent(s string) string {
	return common.FoldKey(strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, s))
}

// NormalizeIdentWithSuffixStrip normalizes s and strips one common column
// suffix. A name is never stripped down to nothing.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	for _, suffix := range identSuffixes {
		if len(normalized) > len(suffix) && strings.HasSuffix(normalized, suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
