package pdfcomposer

import (
	"fmt"
	"strings"
)

// Font identifies one of the 14 standard PostScript fonts available in PDF
// documents without embedding.
type Font string

// Standard PostScript fonts.
const (
	FontCourier            Font = "Courier"
	FontCourierBold        Font = "CourierBold"
	FontCourierBoldOblique Font = "CourierBoldOblique"
	FontCourierOblique     Font = "CourierOblique"

	FontHelvetica            Font = "Helvetica"
	FontHelveticaBold        Font = "HelveticaBold"
	FontHelveticaBoldOblique Font = "HelveticaBoldOblique"
	FontHelveticaOblique     Font = "HelveticaOblique"

	FontSymbol Font = "Symbol"

	FontTimesBold       Font = "TimesBold"
	FontTimesBoldItalic Font = "TimesBoldItalic"
	FontTimesItalic     Font = "TimesItalic"
	FontTimesRoman      Font = "TimesRoman"

	FontZapfDingbats Font = "ZapfDingbats"
)

// fontCSS maps a font to its CSS font-family, font-weight, and font-style.
type fontCSS struct {
	family string
	weight string
	style  string
}

var fontTable = map[Font]fontCSS{
	FontCourier:            {"Courier, monospace", "normal", "normal"},
	FontCourierBold:        {"Courier, monospace", "bold", "normal"},
	FontCourierBoldOblique: {"Courier, monospace", "bold", "italic"},
	FontCourierOblique:     {"Courier, monospace", "normal", "italic"},

	FontHelvetica:            {"Helvetica, sans-serif", "normal", "normal"},
	FontHelveticaBold:        {"Helvetica, sans-serif", "bold", "normal"},
	FontHelveticaBoldOblique: {"Helvetica, sans-serif", "bold", "italic"},
	FontHelveticaOblique:     {"Helvetica, sans-serif", "normal", "italic"},

	FontSymbol: {"Symbol", "normal", "normal"},

	FontTimesBold:       {"'Times New Roman', Times, serif", "bold", "normal"},
	FontTimesBoldItalic: {"'Times New Roman', Times, serif", "bold", "italic"},
	FontTimesItalic:     {"'Times New Roman', Times, serif", "normal", "italic"},
	FontTimesRoman:      {"'Times New Roman', Times, serif", "normal", "normal"},

	FontZapfDingbats: {"'Zapf Dingbats'", "normal", "normal"},
}

// ParseFont resolves a font name to its canonical Font, ignoring case.
func ParseFont(name string) (Font, error) {
	for font := range fontTable {
		if strings.EqualFold(name, string(font)) {
			return font, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFont, name)
}

// Validate checks that the font is one of the standard fourteen.
func (f Font) Validate() error {
	if _, ok := fontTable[f]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFont, string(f))
	}
	return nil
}

// CSS returns the CSS font-family, font-weight, and font-style for the font.
// Unknown fonts fall back to Helvetica.
func (f Font) CSS() (family, weight, style string) {
	c, ok := fontTable[f]
	if !ok {
		c = fontTable[FontHelvetica]
	}
	return c.family, c.weight, c.style
}
