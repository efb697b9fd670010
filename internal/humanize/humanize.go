// Package humanize renders durations and rates for progress lines.
package humanize

import (
	"fmt"
	"math"
	"strconv"
)

// Unknown is displayed in place of values which are not available yet
// (NaN), infinite or negative.
const Unknown = "?"

const week = 7 * 24 * 60 * 60

func invalid(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0) || x < 0
}

// Duration formats t seconds as a short time interval: "31s", "5m42s",
// "7h36m", "1d02h". Beyond seven days the number of seconds is shown in
// scientific notation.
func Duration(t float64) string {
	if invalid(t) {
		return Unknown
	}
	if t > week {
		return fmt.Sprintf("%.2Es", t)
	}
	n := int64(t)
	if n < 60 {
		return fmt.Sprintf("%ds", n)
	}
	r := n % 60
	n /= 60
	if n < 60 {
		return fmt.Sprintf("%dm%02ds", n, r)
	}
	r = n % 60
	n /= 60
	if n < 24 {
		return fmt.Sprintf("%dh%02dm", n, r)
	}
	r = n % 24
	n /= 24
	return fmt.Sprintf("%dd%02dh", n, r)
}

var prefixes = []struct {
	value  float64
	symbol string
}{
	{1e3, "K"}, {1e6, "M"}, {1e9, "G"}, {1e12, "T"}, {1e15, "P"},
	{1e18, "E"}, {1e21, "Z"}, {1e24, "Y"}, {1e27, "R"}, {1e30, "Q"},
}

// decimals returns how many digits after the point keep 3 significant
// digits for 1 <= x < 1000.
func decimals(x float64) int {
	switch {
	case x < 10:
		return 2
	case x < 100:
		return 1
	}
	return 0
}

// SI formats x with 3 significant digits and an SI magnitude suffix
// ("1.50K", "2.30M"). Values below 1000 get no suffix and keep at least one
// decimal ("950.0"). Values too large for the table fall back to powers
// of ten.
func SI(x float64) string {
	if invalid(x) {
		return Unknown
	}
	if x < 1000 {
		return strconv.FormatFloat(x, 'f', max(decimals(x), 1), 64)
	}
	for i := 0; i+1 < len(prefixes); i++ {
		if x < prefixes[i+1].value {
			x /= prefixes[i].value
			return fmt.Sprintf("%.*f%s", decimals(x), x, prefixes[i].symbol)
		}
	}
	return fmt.Sprintf("%.2G", x)
}
