// Package diagnostic provides structured errors, warnings and infos produced
// while turning mappings into SQL.
//
// Conversion never fails on an odd mapping; the generated SQL carries an
// explanatory comment and a diagnostic records what happened, for example:
//   - unsupported or underspecified mappings
//   - CROSS JOIN fallbacks when sources share no columns
//   - target columns filled with NULL, with "did you mean" suggestions
package diagnostic
