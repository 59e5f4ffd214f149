// Package match provides column-name normalization, Levenshtein distance and
// "did you mean" ranking for columns that could not be found in any source.
//
// Key functions:
//   - NormalizeIdent: folds an identifier for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate source columns for an unmatched target column
package match
