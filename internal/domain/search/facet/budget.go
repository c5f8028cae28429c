package facet

import (
	"strconv"
	"strings"
)

// Budget is a budget bucket token such as "2-3-cr" or "above-8-cr".
type Budget string

// BudgetAbove8Cr is the open-ended top bucket.
const BudgetAbove8Cr Budget = "above-8-cr"

// above8CrFloor is the lower bound, in crores, of the open-ended bucket.
const above8CrFloor = 8

// Bounds returns the bucket interval in crores. open is true for the
// open-ended bucket, whose hi is meaningless. ok is false for malformed tokens.
func (b Budget) Bounds() (lo, hi float64, open, ok bool) {
	if b == BudgetAbove8Cr {
		return above8CrFloor, 0, true, true
	}

	loTok, hiTok, found := strings.Cut(strings.TrimSuffix(string(b), "-cr"), "-")
	if !found {
		return 0, 0, false, false
	}
	lo, err := strconv.ParseFloat(loTok, 64)
	if err != nil {
		return 0, 0, false, false
	}
	hi, err = strconv.ParseFloat(hiTok, 64)
	if err != nil {
		return 0, 0, false, false
	}
	return lo, hi, false, true
}

// Label returns the display label: "2-3-cr" -> "2 3 Cr".
func (b Budget) Label() string {
	return Humanize(string(b))
}
