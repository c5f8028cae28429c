package facet

import (
	"regexp"
	"strconv"
	"strings"
)

// Configuration is a bedroom-count token such as "2-bhk" or "above-5-bhk".
type Configuration string

// ConfigurationAbove5BHK matches anything larger than five bedrooms.
const ConfigurationAbove5BHK Configuration = "above-5-bhk"

const above5BHKFloor = 5

// Target returns the bedroom count the token asks for.
func (c Configuration) Target() (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSuffix(string(c), "-bhk"), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Label returns the display label: "2-bhk" -> "2 BHK", "above-5-bhk" -> "5+ BHK".
func (c Configuration) Label() string {
	if c == ConfigurationAbove5BHK {
		return "5+ BHK"
	}
	if n, ok := c.Target(); ok {
		return strconv.FormatFloat(n, 'f', -1, 64) + " BHK"
	}
	return Humanize(string(c))
}

var labelNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// MatchConfiguration reports whether a free-form label ("2.5 BHK", "Penthouse 6 BHK")
// satisfies c. Only the first number in the label is considered.
func MatchConfiguration(label string, c Configuration) bool {
	tok := labelNumber.FindString(label)
	if tok == "" {
		return false
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return false
	}

	if c == ConfigurationAbove5BHK {
		return n > above5BHKFloor
	}
	target, ok := c.Target()
	if !ok {
		return false
	}
	return n == target
}
