package pdfcomposer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pdfcomposer/go-pdfcomposer/internal/fileutil"
)

// DefaultOutputDirectory receives generated PDFs when no destination
// is configured.
const DefaultOutputDirectory = "pdf_composer_pdfs"

// defaultDirPerm is used when creating the output directory tree.
const defaultDirPerm = 0o750

// filePerm is used for generated PDF files.
const filePerm = 0o644

// Result reports the outcome of composing a single source document.
type Result struct {
	// Source is the markdown path the document was composed from.
	Source string

	// Output is the destination PDF path. Set even when the write was
	// skipped so callers can see where the file would have gone.
	Output string

	// Metadata lists the document information entries applied to the PDF,
	// in the order they were written.
	Metadata []DocInfoValue

	// Err is non-nil when the document failed or was skipped. Inspect it
	// with errors.Is against the package sentinels.
	Err error

	// Duration is the wall-clock time spent on this document.
	Duration time.Duration
}

// Composer turns YAML front matter markdown documents into PDF files.
// Configuration is fixed at construction time; a Composer is safe for
// concurrent use and a single Generate call processes its sources in
// parallel.
//
// Call Close when done to release browser resources.
type Composer struct {
	sources    []string
	outputDir  string
	version    PDFVersion
	paperSize  PaperSize
	orient     Orientation
	marginSpec string
	margins    Margins
	font       Font
	rules      docInfoRules
	workers    int
	timeout    time.Duration
	warnings   []string

	converter   htmlConverter
	newRenderer func() pdfRenderer
	pool        *rendererPool
	poolOnce    sync.Once
}

// Option configures a Composer during construction.
type Option func(*Composer)

// WithSourceFiles appends markdown source paths to compose.
func WithSourceFiles(paths ...string) Option {
	return func(c *Composer) {
		c.sources = append(c.sources, paths...)
	}
}

// WithOutputDirectory sets the destination directory for generated PDFs.
// The directory is created on demand.
func WithOutputDirectory(dir string) Option {
	return func(c *Composer) {
		c.outputDir = dir
	}
}

// WithPDFVersion sets the PDF version written to the file header.
func WithPDFVersion(v PDFVersion) Option {
	return func(c *Composer) {
		c.version = v
	}
}

// WithPaperSize sets the page dimensions used for rendering.
func WithPaperSize(p PaperSize) Option {
	return func(c *Composer) {
		c.paperSize = p
	}
}

// WithOrientation sets portrait or landscape page orientation.
func WithOrientation(o Orientation) Option {
	return func(c *Composer) {
		c.orient = o
	}
}

// WithMargins sets page margins from a CSS shorthand style specification
// of one to four whole millimetre values, e.g. "20 15". A malformed
// specification falls back to the defaults and records a warning
// retrievable through Warnings.
func WithMargins(spec string) Option {
	return func(c *Composer) {
		c.marginSpec = spec
	}
}

// WithFont sets the base font applied to the document body.
func WithFont(f Font) Option {
	return func(c *Composer) {
		c.font = f
	}
}

// WithDocInfoEntry maps a PDF document information field to a front
// matter key. Reserved names (title, author, subject, keywords) are
// canonicalized regardless of case; any other name is written verbatim
// as a custom information field.
func WithDocInfoEntry(entry DocInfoEntry) Option {
	return func(c *Composer) {
		c.rules.add(entry)
	}
}

// WithWorkers sets the number of parallel workers. Zero or negative
// selects an automatic size derived from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Composer) {
		c.workers = n
	}
}

// WithRenderTimeout bounds the browser rendering step for each document.
func WithRenderTimeout(d time.Duration) Option {
	return func(c *Composer) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a Composer with the given options. Source paths and
// configuration values are validated eagerly so that Generate only
// reports per-document failures.
func New(opts ...Option) (*Composer, error) {
	c := &Composer{
		outputDir: DefaultOutputDirectory,
		version:   PDFVersion17,
		paperSize: PaperA4,
		orient:    Portrait,
		margins:   DefaultMargins(),
		font:      FontHelvetica,
		rules:     docInfoRules{},
		timeout:   defaultRenderTimeout,
		converter: newGoldmarkConverter(),
	}
	c.newRenderer = func() pdfRenderer { return newRodRenderer(c.timeout) }

	for _, opt := range opts {
		opt(c)
	}

	if err := c.version.Validate(); err != nil {
		return nil, err
	}
	if err := c.paperSize.Validate(); err != nil {
		return nil, err
	}
	if err := c.orient.Validate(); err != nil {
		return nil, err
	}
	if err := c.font.Validate(); err != nil {
		return nil, err
	}
	for _, src := range c.sources {
		if err := validateSourcePath(src); err != nil {
			return nil, err
		}
	}
	if c.marginSpec != "" {
		m, err := ParseMargins(c.marginSpec)
		if err != nil {
			c.warnings = append(c.warnings, fmt.Sprintf("using default margins: %v", err))
		}
		c.margins = m
	}

	return c, nil
}

// validateSourcePath rejects paths that cannot yield a document name,
// such as empty strings or paths ending in a separator.
func validateSourcePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidSourcePath)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return fmt.Errorf("%w: %s ends in a separator", ErrInvalidSourcePath, path)
	}
	if _, err := fileutil.DerivedName(path); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSourcePath, path)
	}
	return nil
}

// Warnings returns non-fatal configuration notices recorded during
// construction, such as a malformed margin specification.
func (c *Composer) Warnings() []string {
	return c.warnings
}

// OutputDirectory returns the configured destination directory.
func (c *Composer) OutputDirectory() string {
	return c.outputDir
}

// Generate composes every configured source document into a PDF.
// Documents are processed in parallel; a failure in one document never
// aborts the others. The only fatal condition is an empty source list.
//
// Results are returned in source order. The error is non-nil only when
// no work could be attempted at all.
func (c *Composer) Generate(ctx context.Context) ([]Result, error) {
	if len(c.sources) == 0 {
		return nil, ErrNoSourceFiles
	}

	c.poolOnce.Do(func() {
		c.pool = newRendererPool(ResolveWorkers(c.workers), c.newRenderer)
	})

	results := make([]Result, len(c.sources))
	jobs := make(chan int, len(c.sources))

	var wg sync.WaitGroup
	workers := ResolveWorkers(c.workers)
	if workers > len(c.sources) {
		workers = len(c.sources)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderer := c.pool.acquire()
			if renderer == nil {
				for idx := range jobs {
					results[idx] = Result{
						Source: c.sources[idx],
						Err:    fmt.Errorf("%w: %s", ErrRendererUnavailable, c.sources[idx]),
					}
				}
				return
			}
			defer c.pool.release(renderer)

			for idx := range jobs {
				results[idx] = c.composeDocument(ctx, renderer, c.sources[idx])
			}
		}()
	}

	for i := range c.sources {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results, nil
}

// Close releases all browser resources held by the Composer.
func (c *Composer) Close() error {
	if c.pool == nil {
		return nil
	}
	return c.pool.close()
}

// composeDocument runs the full pipeline for a single source file:
// read, split front matter, parse YAML, merge placeholders, convert to
// HTML, render to PDF, apply document metadata and write the output.
func (c *Composer) composeDocument(ctx context.Context, renderer pdfRenderer, source string) Result {
	start := time.Now()
	res := Result{Source: source}
	defer func() { res.Duration = time.Since(start) }()

	derived, err := fileutil.DerivedName(source)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s", ErrInvalidSourcePath, source)
		return res
	}
	res.Output = filepath.Join(c.outputDir, derived+".pdf")

	if !fileutil.FileExists(source) {
		res.Err = fmt.Errorf("%w: %s", ErrSourceNotFound, source)
		return res
	}
	content, err := os.ReadFile(source)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrSourceNotFound, source, err)
		return res
	}

	split, err := SplitFrontMatter(string(content))
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", source, err)
		return res
	}
	if !split.Valid() {
		res.Err = fmt.Errorf("%w: %s", ErrInvalidFrontMatter, source)
		return res
	}

	fm, err := ParseFrontMatter(split.YAML)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", source, err)
		return res
	}
	values := fm.Strings()

	merged := MergeFrontMatter(fm, split.Markdown)

	renderCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fragment, err := c.converter.ToHTML(renderCtx, merged)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrHTMLConversion, source, err)
		return res
	}

	title := derived
	if t, ok := values["title"]; ok && t != "" {
		title = t
	}

	width, height := c.orient.Apply(c.paperSize)
	page := wrapHTMLDocument(title, buildPageCSS(c.font, width, height), fragment)

	pdf, err := renderer.Render(renderCtx, RenderRequest{
		HTML:              page,
		PaperWidth:        width,
		PaperHeight:       height,
		Margins:           c.margins,
		PreferCSSPageSize: true,
	})
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", source, err)
		return res
	}

	out, entries, err := applyDocMetadata(renderCtx, pdf, docMetadata{
		Version:     c.version,
		Rules:       c.rules.clone(),
		Strings:     values,
		DerivedName: derived,
	})
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", source, err)
		return res
	}
	res.Metadata = entries

	if err := os.MkdirAll(c.outputDir, defaultDirPerm); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrWritePDF, res.Output, err)
		return res
	}

	locked, err := fileutil.IsLocked(res.Output)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrWritePDF, res.Output, err)
		return res
	}
	if locked {
		res.Err = fmt.Errorf("%w: %s", ErrOutputLocked, res.Output)
		return res
	}

	if err := os.WriteFile(res.Output, out, filePerm); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrWritePDF, res.Output, err)
		return res
	}

	return res
}
