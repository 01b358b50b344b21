package pdfcomposer

import "errors"

// Sentinel errors for library operations.
var (
	// Batch-level: the one fatal condition; everything else is per-document.
	ErrNoSourceFiles = errors.New("no source files set")

	// Per-document skip reasons.
	ErrSourceNotFound     = errors.New("source file not found")
	ErrInvalidFrontMatter = errors.New("no valid YAML front matter")
	ErrYAMLKeyNotString   = errors.New("YAML mapping contains a non-string key")
	ErrOutputLocked       = errors.New("output file is locked by another process")

	// Render and PDF failures.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFDecode      = errors.New("failed to decode generated PDF")
	ErrWritePDF       = errors.New("failed to write PDF file")

	// ErrRendererUnavailable is reported for documents that could not be
	// composed because the renderer pool was shut down.
	ErrRendererUnavailable = errors.New("renderer pool is closed")

	// Configuration validation errors.
	ErrInvalidPaperSize   = errors.New("invalid paper size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidFont        = errors.New("invalid font")
	ErrInvalidPDFVersion  = errors.New("invalid PDF version")
	ErrMalformedMargins   = errors.New("malformed margin values")
	ErrInvalidSourcePath  = errors.New("invalid source path")
)
