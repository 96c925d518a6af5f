package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a [0,1] similarity between two normalized keys.
//
// The length-gap short-circuit skips the quadratic edit-distance pass for
// pairs whose lengths alone make them obviously dissimilar; its cutoff and
// fallback score are inherited behavior, kept configurable rather than
// re-derived, because changing them changes match outcomes.
type Scorer struct {
	// LengthRatioCutoff: when |len(a)-len(b)| / len(longer) exceeds this,
	// skip edit distance and return LengthGapScore.
	LengthRatioCutoff float64
	LengthGapScore    float64
}

// DefaultScorer carries the stock constants.
var DefaultScorer = Scorer{LengthRatioCutoff: 0.5, LengthGapScore: 0.3}

// Score is symmetric: Score(a,b) == Score(b,a).
func (sc Scorer) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	longer, shorter := a, b
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}

	// Strong containment, common with abbreviated hotel names.
	if strings.Contains(longer, shorter) {
		return float64(len(shorter)) / float64(len(longer))
	}

	if float64(len(longer)-len(shorter))/float64(len(longer)) > sc.LengthRatioCutoff {
		return sc.LengthGapScore
	}

	d := levenshtein.ComputeDistance(longer, shorter)
	return float64(len(longer)-d) / float64(len(longer))
}

// Similarity scores with the stock constants.
func Similarity(a, b string) float64 { return DefaultScorer.Score(a, b) }
