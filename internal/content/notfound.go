package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

// Suggest returns the known path closest to path, or "" when nothing is
// close enough.
func Suggest(path string, known []string) string {
	if path == "" || len(known) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(path, known)
	if len(ranks) > 0 {
		sort.Slice(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].Target < ranks[j].Target
		})
		return ranks[0].Target
	}
	best, bestDist := "", -1
	for _, candidate := range known {
		d := fuzzy.LevenshteinDistance(strings.ToLower(path), strings.ToLower(candidate))
		if bestDist < 0 || d < bestDist || (d == bestDist && candidate < best) {
			best, bestDist = candidate, d
		}
	}
	if bestDist > len(path)/2 {
		return ""
	}
	return best
}

// NotFound builds the page shown for an unknown path.
func NotFound(path string, known []string) Page {
	suggestion := Suggest(path, known)
	events.Content.Missing(path, suggestion)
	var b strings.Builder
	b.WriteString("# Page not found\n\n")
	fmt.Fprintf(&b, "Nothing lives at `%s`.\n", path)
	if suggestion != "" {
		fmt.Fprintf(&b, "\nDid you mean `%s`?\n", suggestion)
	}
	return Page{Path: path, Title: "Not found", Body: b.String()}
}

// Resolve returns the page at path, or the not-found page and false.
func (l *Library) Resolve(path string) (Page, bool) {
	if p, ok := l.Get(path); ok {
		return p, true
	}
	return NotFound(path, l.Paths()), false
}
