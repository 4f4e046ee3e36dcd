package planner

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// cuisineVocabulary is the fixed classification set for restaurant text.
// Compound entries ("South Indian") win over their substrings when both
// appear at the same spot, via leftmost-longest matching.
var cuisineVocabulary = []string{
	"Indian", "Chinese", "Italian", "Continental", "Local",
	"South Indian", "North Indian", "Thai", "Japanese", "Mediterranean",
}

var cuisineMatcher = func() ahocorasick.AhoCorasick {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return builder.Build(cuisineVocabulary)
}()

// classifyCuisine returns the matching vocabulary term for the restaurant
// text, or "Local" when nothing matches.
func classifyCuisine(text string) string {
	matches := cuisineMatcher.FindAll(text)
	if len(matches) == 0 {
		return "Local"
	}
	return cuisineVocabulary[matches[0].Pattern()]
}
