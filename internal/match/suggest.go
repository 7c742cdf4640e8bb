package match

import "sort"

// DefaultThreshold is the minimum Similarity for a suggestion.
const DefaultThreshold = 0.7

// Candidate is a known name scored against a reference.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those reaching
// threshold, best first. Ties keep alphabetical order.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	var ranked []Candidate

	for _, c := range candidates {
		if score := Similarity(name, c); score >= threshold {
			ranked = append(ranked, Candidate{Name: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// Closest returns the best candidate for name at DefaultThreshold.
func Closest(name string, candidates []string) (string, bool) {
	ranked := Rank(name, candidates, DefaultThreshold)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}
