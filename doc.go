// Package pdfcomposer turns YAML-front-matter Markdown documents into
// styled PDF files using headless Chrome.
//
// # Quick Start
//
// Configure a composer once, then generate:
//
//	comp, err := pdfcomposer.New(
//	    pdfcomposer.WithSourceFiles("docs/report.md", "docs/appendix.md"),
//	    pdfcomposer.WithOutputDirectory("out"),
//	    pdfcomposer.WithPaperSize(pdfcomposer.PaperA5),
//	    pdfcomposer.WithDocInfoEntry(pdfcomposer.DocInfoEntry{Name: "Author", YAMLKey: "author"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer comp.Close()
//
//	results, err := comp.Generate(ctx)
//
// Each source document carries a YAML front-matter block between two ---
// delimiter lines. String values from the block replace {{key}} placeholders
// in the Markdown body and, through doc-info entry rules, populate the PDF
// document information dictionary (Title, Author, Subject, ...).
//
// # Pipeline
//
//  1. Front-matter extraction (two-delimiter line scan)
//  2. YAML block to alphabetically ordered key/value map
//  3. {{key}} placeholder substitution in the Markdown body
//  4. Markdown to HTML via Goldmark (GFM, syntax highlighting)
//  5. HTML to PDF via headless Chrome (go-rod) with the configured
//     paper size, orientation, margins and font
//  6. PDF metadata rewrite (Creator/Producer plus configured entries)
//
// Documents are processed in parallel; failures are reported per document
// and never abort the batch. The only batch-level error is an empty source
// list.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers and CI
// environments, set ROD_BROWSER_BIN to a pre-installed binary; the sandbox
// is disabled automatically when CI=true or ROD_BROWSER_BIN is set.
package pdfcomposer
