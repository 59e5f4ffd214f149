package match

import (
	"sort"
)

// DefaultSuggestionThreshold is the minimum similarity for a candidate to be suggested.
const DefaultSuggestionThreshold = 0.6

// Candidate is a source column scored against a wanted column.
type Candidate struct {
	// Name is the candidate column as spelled in its source.
	Name string
	// Owner is the endpoint the column belongs to (may be empty).
	Owner string
	// Score is the normalized similarity (0-1).
	Score float64
}

// Label returns "owner.name", or just the name when there is no owner.
func (c Candidate) Label() string {
	if c.Owner == "" {
		return c.Name
	}

	return c.Owner + "." + c.Name
}

// Suggest ranks candidates by similarity to want and returns at most limit of
// them scoring at least threshold. Ties keep the candidates' input order.
func Suggest(want string, candidates []Candidate, threshold float64, limit int) []Candidate {
	var ranked []Candidate

	for _, c := range candidates {
		c.Score = NormalizedLevenshteinScore(want, c.Name)
		if c.Score >= threshold {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
