// Package price turns free-form budget strings ("₹1.5 - 2.3 Cr", "8 Cr onwards")
// into numeric ranges in crores.
package price

import (
	"regexp"
	"strconv"
	"strings"
)

// Range is an inclusive price interval in crores.
type Range struct {
	Min float64
	Max float64
}

// Overlaps reports whether r intersects the closed interval [lo, hi].
func (r Range) Overlaps(lo, hi float64) bool {
	return r.Max >= lo && r.Min <= hi
}

var (
	separators = strings.NewReplacer("–", "-", "—", "-", " to ", "-")
	noise      = regexp.MustCompile(`₹|\$|rs\.?|inr|crores?|onwards|cr|,`)
	residue    = regexp.MustCompile(`[^0-9.\-]`)
	number     = regexp.MustCompile(`\d+(\.\d+)?`)
)

// Parse extracts a price range from text. ok is false when no digit survives
// normalization. A token that cannot be read counts as 0; an unreadable upper
// bound falls back to the lower one.
func Parse(text string) (Range, bool) {
	s := strings.ToLower(text)
	s = separators.Replace(s)
	s = noise.ReplaceAllString(s, "")
	s = strings.TrimRight(strings.TrimSpace(s), "+*")
	// letters become gaps so a word's trailing dot ("approx.") cannot join the next number
	s = residue.ReplaceAllString(s, " ")

	if !strings.ContainsAny(s, "0123456789") {
		return Range{}, false
	}

	lo, hi, isRange := strings.Cut(s, "-")
	if !isRange {
		v, _ := parseToken(s)
		return Range{Min: v, Max: v}, true
	}

	minVal, _ := parseToken(lo)
	maxVal, ok := parseToken(hi)
	if !ok {
		maxVal = minVal
	}
	return Range{Min: minVal, Max: maxVal}, true
}

// parseToken reads the first number of tok, ignoring anything around it.
func parseToken(tok string) (float64, bool) {
	m := number.FindString(tok)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
