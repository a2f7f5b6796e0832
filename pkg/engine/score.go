package engine

import (
	"fmt"
	"math"
)

// Score is an evaluation from white's perspective. Positive favours white.
type Score float64

// Inf is better than any finite evaluation. -Inf is its negation.
var Inf = Score(math.Inf(1))

func (s Score) IsInf() bool {
	return math.IsInf(float64(s), 0)
}

func (s Score) String() string {
	switch {
	case math.IsInf(float64(s), 1):
		return "+inf"
	case math.IsInf(float64(s), -1):
		return "-inf"
	default:
		return fmt.Sprintf("%.3f", float64(s))
	}
}

// worst returns the sentinel a side starts from before seeing any move.
func worst(side Side) Score {
	if side.Maximizing() {
		return -Inf
	}
	return Inf
}

func maxScore(a, b Score) Score {
	if b > a {
		return b
	}
	return a
}

func minScore(a, b Score) Score {
	if b < a {
		return b
	}
	return a
}
