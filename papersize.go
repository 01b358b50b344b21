package pdfcomposer

import (
	"fmt"
	"strings"
)

// PaperSize identifies one of the supported paper formats.
// Covers ISO 216 A and B series, common US sizes, and Japanese JIS B sizes.
type PaperSize string

// Supported paper sizes.
const (
	PaperA0  PaperSize = "A0"
	PaperA1  PaperSize = "A1"
	PaperA2  PaperSize = "A2"
	PaperA3  PaperSize = "A3"
	PaperA4  PaperSize = "A4"
	PaperA5  PaperSize = "A5"
	PaperA6  PaperSize = "A6"
	PaperA7  PaperSize = "A7"
	PaperA8  PaperSize = "A8"
	PaperA9  PaperSize = "A9"
	PaperA10 PaperSize = "A10"

	PaperB0  PaperSize = "B0"
	PaperB1  PaperSize = "B1"
	PaperB2  PaperSize = "B2"
	PaperB3  PaperSize = "B3"
	PaperB4  PaperSize = "B4"
	PaperB5  PaperSize = "B5"
	PaperB6  PaperSize = "B6"
	PaperB7  PaperSize = "B7"
	PaperB8  PaperSize = "B8"
	PaperB9  PaperSize = "B9"
	PaperB10 PaperSize = "B10"

	PaperHalfLetter  PaperSize = "HalfLetter"
	PaperLetter      PaperSize = "Letter"
	PaperLegal       PaperSize = "Legal"
	PaperJuniorLegal PaperSize = "JuniorLegal"
	PaperLedger      PaperSize = "Ledger"
	PaperTabloid     PaperSize = "Tabloid"

	PaperJISB0  PaperSize = "JISB0"
	PaperJISB1  PaperSize = "JISB1"
	PaperJISB2  PaperSize = "JISB2"
	PaperJISB3  PaperSize = "JISB3"
	PaperJISB4  PaperSize = "JISB4"
	PaperJISB5  PaperSize = "JISB5"
	PaperJISB6  PaperSize = "JISB6"
	PaperJISB7  PaperSize = "JISB7"
	PaperJISB8  PaperSize = "JISB8"
	PaperJISB9  PaperSize = "JISB9"
	PaperJISB10 PaperSize = "JISB10"
)

// paperDimension holds a portrait width/height pair in inches.
// Headless Chrome expects page dimensions in inches.
type paperDimension struct {
	width  float64
	height float64
}

// paperDimensions maps every supported size to its portrait dimensions.
var paperDimensions = map[PaperSize]paperDimension{
	PaperA0:  {33.1, 46.8},
	PaperA1:  {23.4, 33.1},
	PaperA2:  {16.5, 23.4},
	PaperA3:  {11.7, 16.5},
	PaperA4:  {8.3, 11.7},
	PaperA5:  {5.8, 8.3},
	PaperA6:  {4.1, 5.8},
	PaperA7:  {2.9, 4.1},
	PaperA8:  {2.0, 2.9},
	PaperA9:  {1.5, 2.0},
	PaperA10: {1.0, 1.5},

	PaperB0:  {39.4, 55.7},
	PaperB1:  {27.8, 39.4},
	PaperB2:  {19.7, 27.8},
	PaperB3:  {13.9, 19.7},
	PaperB4:  {9.8, 13.9},
	PaperB5:  {6.9, 9.8},
	PaperB6:  {4.9, 6.9},
	PaperB7:  {3.5, 4.9},
	PaperB8:  {2.4, 3.5},
	PaperB9:  {1.7, 2.4},
	PaperB10: {1.2, 1.7},

	PaperHalfLetter:  {5.5, 8.5},
	PaperLetter:      {8.5, 11.0},
	PaperLegal:       {8.5, 14.0},
	PaperJuniorLegal: {8.0, 5.0},
	PaperLedger:      {17.0, 11.0},
	PaperTabloid:     {11.0, 17.0},

	PaperJISB0:  {40.6, 57.3},
	PaperJISB1:  {28.7, 40.6},
	PaperJISB2:  {20.3, 28.7},
	PaperJISB3:  {14.3, 20.3},
	PaperJISB4:  {10.1, 14.3},
	PaperJISB5:  {7.2, 10.1},
	PaperJISB6:  {5.0, 7.2},
	PaperJISB7:  {3.6, 5.0},
	PaperJISB8:  {2.5, 3.6},
	PaperJISB9:  {1.8, 2.5},
	PaperJISB10: {1.3, 1.8},
}

// ParsePaperSize resolves a size name to its canonical PaperSize,
// ignoring case, so "a4", "A4", and "letter" all work on the command line.
func ParsePaperSize(name string) (PaperSize, error) {
	for size := range paperDimensions {
		if strings.EqualFold(name, string(size)) {
			return size, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaperSize, name)
}

// Validate checks that the paper size is a known format.
func (p PaperSize) Validate() error {
	if _, ok := paperDimensions[p]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPaperSize, string(p))
	}
	return nil
}

// Dimensions returns the portrait width and height in inches.
// Unknown sizes fall back to A4.
func (p PaperSize) Dimensions() (width, height float64) {
	d, ok := paperDimensions[p]
	if !ok {
		d = paperDimensions[PaperA4]
	}
	return d.width, d.height
}

// Orientation selects portrait or landscape page layout.
type Orientation string

// Supported orientations.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Validate checks that the orientation is portrait or landscape.
func (o Orientation) Validate() error {
	switch o {
	case Portrait, Landscape:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidOrientation, string(o))
}

// Apply returns width and height for the paper size in this orientation.
// Landscape swaps the portrait dimensions.
func (o Orientation) Apply(p PaperSize) (width, height float64) {
	w, h := p.Dimensions()
	if o == Landscape {
		return h, w
	}
	return w, h
}
