package plan

import (
	"strconv"

	"github.com/svanduffel/reach-planner/pkg/mathutil"
)

// EvenShare returns the percentage string one day receives under an even
// split, rounded to 2 decimals (e.g. "33.33" for a 3-day campaign).
func EvenShare(days int) string {
	if days <= 0 {
		return ""
	}
	share := mathutil.RoundTo(100/float64(days), 2)
	return strconv.FormatFloat(share, 'f', 2, 64)
}

// ResizeShares adjusts a custom-share list to the campaign day count.
// Existing entries are preserved by index; new slots are filled with the even
// default share. A non-positive day count clears the list.
func ResizeShares(shares []string, days int) []string {
	if days <= 0 {
		return nil
	}
	even := EvenShare(days)
	out := make([]string, days)
	for i := range out {
		if i < len(shares) {
			out[i] = shares[i]
		} else {
			out[i] = even
		}
	}
	return out
}
