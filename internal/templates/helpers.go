package templates

import (
	"strconv"

	"github.com/csg33k/ratecalc/internal/domain"
)

// gaugeCircumference is 2πr for the r=45 gauge circle.
const gaugeCircumference = 282.74

// inputValue renders a numeric input's value attribute; zero renders empty
// so untouched fields show their placeholder.
func inputValue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rateValue always renders two decimals, for the synced rate fields.
func rateValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// gaugeColor picks the indicator color: green when the margin meets the
// target, red otherwise. Palette matches the page stylesheet.
func gaugeColor(r domain.Results) string {
	if r.TargetMet {
		return "#2c6e49"
	}
	return "#c0392b"
}
