// Package reach estimates unique audience reach from impression counts.
//
// Two duplication models are provided. The Poisson model treats impressions
// as independently, randomly distributed across the universe and applies the
// standard media-industry adjustment N(1-e^(-I/N)). The Simple model divides
// impressions by a planned average frequency. Both are closed-form
// approximations, not measurements.
package reach

import (
	"math"
)

// Model selects the duplication model applied to cumulative impressions.
type Model string

const (
	// ModelPoisson is the duplication-adjusted reach model.
	ModelPoisson Model = "Poisson"

	// ModelSimple is the frequency-divided reach model.
	ModelSimple Model = "Simple"
)

// Poisson returns the Poisson-model reach estimate for the given cumulative
// impressions and audience universe size. The universe is floored at 1 and
// the result never exceeds it.
func Poisson(impressions, universeSize float64) float64 {
	n := 1.0
	if isFinite(universeSize) && universeSize > n {
		n = universeSize
	}
	i := 0.0
	if isFinite(impressions) && impressions > 0 {
		i = impressions
	}
	estimate := n * (1 - math.Exp(-i/n))
	return math.Min(n, estimate)
}

// Simple returns impressions divided by the planned average frequency, capped
// at the universe size when that size is a positive finite number. A
// non-positive or non-finite frequency yields 0.
func Simple(impressions, avgFrequency, universeSize float64) float64 {
	if !isFinite(impressions) || !isFinite(avgFrequency) || avgFrequency <= 0 {
		return 0
	}
	estimate := impressions / avgFrequency
	if isFinite(universeSize) && universeSize > 0 {
		return math.Min(universeSize, estimate)
	}
	return estimate
}

// FromImpressions dispatches to the selected model. Any model other than
// ModelSimple falls back to Poisson.
func FromImpressions(impressions, universeSize, avgFrequency float64, model Model) float64 {
	if model == ModelSimple {
		return Simple(impressions, avgFrequency, universeSize)
	}
	return Poisson(impressions, universeSize)
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
