package pdfcomposer

import (
	"fmt"
	"strconv"
	"strings"
)

// Margin conversion constants. Input is millimeters; headless Chrome wants
// inches.
const (
	DefaultMarginMM = 10.0
	mmPerInch       = 25.4
)

// Margins holds the four page margins in inches, in CSS order:
// top, right, bottom, left.
type Margins [4]float64

// Margin accessors.
func (m Margins) Top() float64    { return m[0] }
func (m Margins) Right() float64  { return m[1] }
func (m Margins) Bottom() float64 { return m[2] }
func (m Margins) Left() float64   { return m[3] }

// DefaultMargins returns 10mm margins on all four sides, in inches.
func DefaultMargins() Margins {
	d := DefaultMarginMM / mmPerInch
	return Margins{d, d, d, d}
}

// ParseMargins converts a whitespace-separated margin specification in
// millimeters into inches. Like CSS shorthand, it accepts one to four
// values:
//
//	"10"          all four sides
//	"10 20"       top/bottom, left/right
//	"10 20 15"    top, left/right, bottom
//	"10 20 15 5"  top, right, bottom, left
//
// Tokens must be unsigned integers. Any malformed token makes the whole
// specification invalid: the defaults are returned together with
// ErrMalformedMargins so the caller can warn and continue.
func ParseMargins(spec string) (Margins, error) {
	fields := strings.Fields(spec)

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return DefaultMargins(), fmt.Errorf("%w: [%s]", ErrMalformedMargins, strings.Join(fields, ", "))
		}
		values = append(values, float64(n)/mmPerInch)
	}

	switch len(values) {
	case 1:
		return Margins{values[0], values[0], values[0], values[0]}, nil
	case 2:
		return Margins{values[0], values[1], values[0], values[1]}, nil
	case 3:
		return Margins{values[0], values[1], values[2], values[1]}, nil
	case 4:
		return Margins{values[0], values[1], values[2], values[3]}, nil
	}
	// Zero or more than four values: fall back silently to the defaults,
	// the same as an empty specification.
	return DefaultMargins(), nil
}
