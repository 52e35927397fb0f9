// Package pacing splits a total campaign budget across days.
//
// DistributeEven is the reconciliation-grade split: the returned slots always
// sum to the original total to the cent, with the rounding remainder assigned
// cent by cent in index order so the assignment is deterministic.
// DistributeByWeights is the custom-pacing split; it normalizes weights but
// does not redistribute the rounding remainder, so its sum may drift from the
// total by a few cents on long campaigns.
package pacing

import (
	"math"

	"github.com/svanduffel/reach-planner/pkg/constants"
	"github.com/svanduffel/reach-planner/pkg/mathutil"
)

// DistributeEven splits total into n slots rounded to 2 decimals whose sum
// equals total to the cent. Returns an empty slice for non-positive n or a
// non-finite total.
func DistributeEven(total float64, n int) []float64 {
	if n <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil
	}
	base := math.Floor(total/float64(n)*constants.DecimalPrecision) / constants.DecimalPrecision
	slots := make([]float64, n)
	for i := range slots {
		slots[i] = base
	}
	remainder := mathutil.RoundCurrency(total - base*float64(n))
	for i := 0; remainder > constants.CentStep-0.001; i++ {
		slots[i%n] = mathutil.RoundCurrency(slots[i%n] + constants.CentStep)
		remainder = mathutil.RoundCurrency(remainder - constants.CentStep)
	}
	return slots
}

// DistributeByWeights splits total proportionally to weights, each slot
// rounded to 2 decimals. Negative and non-finite weights count as zero; if no
// weight is positive the split falls back to DistributeEven over the same
// number of slots.
func DistributeByWeights(total float64, weights []float64) []float64 {
	if len(weights) == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil
	}
	normalized := make([]float64, len(weights))
	for i, w := range weights {
		if w > 0 && !math.IsInf(w, 0) {
			normalized[i] = w
		}
	}
	sum := mathutil.Sum(normalized)
	if sum <= 0 {
		return DistributeEven(total, len(weights))
	}
	slots := make([]float64, len(normalized))
	for i, w := range normalized {
		slots[i] = mathutil.RoundCurrency(w / sum * total)
	}
	return slots
}
