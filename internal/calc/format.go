package calc

import (
	"math"
	"strconv"
	"strings"
)

// formatter renders values for the display and for write-back.
type formatter struct {
	places int
}

// display renders v for the interactive display. It keeps more fractional
// digits than the final field precision so intermediate results are not
// rounded away mid-calculation. No grouping separators.
func (f formatter) display(v float64) string {
	prec := f.places
	if prec < 6 {
		prec = 6
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

// commit renders v for write-back: rounded to the field precision and
// clamped to zero. The hosted fields hold money and mileage, which are
// never negative.
func (f formatter) commit(v float64) float64 {
	pow := math.Pow(10, float64(f.places))
	v = math.Round(v*pow) / pow
	if v <= 0 {
		return 0
	}
	return v
}
