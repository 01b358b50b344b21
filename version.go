package pdfcomposer

import "fmt"

// PDFVersion is the PDF format version written into the generated file.
// This is the version tag of the PDF container, not the document revision.
type PDFVersion string

// Supported PDF format versions.
const (
	PDFVersion17 PDFVersion = "1.7"
	PDFVersion20 PDFVersion = "2.0"
)

// Validate checks that the version is one of the supported tags.
func (v PDFVersion) Validate() error {
	switch v {
	case PDFVersion17, PDFVersion20:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPDFVersion, string(v))
}

// String returns the version tag, e.g. "1.7".
func (v PDFVersion) String() string { return string(v) }
