package manifest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to input, or "" when nothing is close
// enough to be a plausible typo.
func suggest(input string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return ""
	}

	limit := len(needle)/3 + 1
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == needle {
			return ""
		}
		d := levenshtein.ComputeDistance(needle, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist >= 0 && bestDist <= limit {
		return best
	}

	// "between" for "space-between"
	for _, c := range candidates {
		if strings.HasSuffix(c, "-"+needle) || strings.HasPrefix(c, needle+"-") {
			return c
		}
	}
	return ""
}
