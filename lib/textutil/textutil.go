package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// SplitDisplayName splits a "LAST, First" display form into its parts.
// When no comma is present the whole string is treated as the last name.
func SplitDisplayName(display string) (last, first string) {
	last, first, found := strings.Cut(display, ",")
	last = strings.TrimSpace(last)
	if !found {
		return last, ""
	}
	return last, strings.TrimSpace(first)
}

// ClosestMatch returns the candidate most similar to name by
// Jaro-Winkler distance, along with its similarity score.
func ClosestMatch(name string, candidates []string) (string, float64) {
	name = NormalizeName(name)

	var best string
	var bestScore float64
	for _, c := range candidates {
		score := matchr.JaroWinkler(name, NormalizeName(c), false)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, bestScore
}
