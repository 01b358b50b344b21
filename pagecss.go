package pdfcomposer

import "fmt"

// buildPageCSS generates the print style block for a document: the body
// font (family/weight/style from the font table) and the @page size rule.
// Chrome is told to prefer the CSS page size, so the @page rule is what
// ultimately fixes the paper dimensions.
func buildPageCSS(font Font, pageWidth, pageHeight float64) string {
	family, weight, style := font.CSS()

	return fmt.Sprintf(`<style>
@media print {
body { font-family: %s; font-weight: %s; font-style: %s }

@page {
size: %gin %gin;
}
}
</style>`, family, weight, style, pageWidth, pageHeight)
}
