package pdfcomposer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/pdfcomposer/go-pdfcomposer/internal/fileutil"
)

// RenderRequest carries one document's print parameters to the renderer.
// Assembled fresh per document; never shared between concurrent renders.
type RenderRequest struct {
	HTML              string
	PaperWidth        float64 // inches
	PaperHeight       float64 // inches
	Margins           Margins // inches, top/right/bottom/left
	PreferCSSPageSize bool
}

// pdfRenderer abstracts HTML to PDF rendering to enable testing without a
// browser.
type pdfRenderer interface {
	Render(ctx context.Context, req RenderRequest) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)

// defaultRenderTimeout bounds page load when the caller's context has no
// deadline.
const defaultRenderTimeout = 30 * time.Second

// rodRenderer implements pdfRenderer using go-rod headless Chrome.
// Rod automatically downloads Chromium on first run if not found.
// Each renderer owns one browser; renderers are pooled one per worker, so
// no internal locking is needed.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given page-load timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Render writes the HTML to a temp file, opens it in headless Chrome, and
// prints it to PDF with the requested paper geometry. Returns explicit
// errors instead of panicking when browser operations fail.
func (r *rodRenderer) Render(ctx context.Context, req RenderRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(req.HTML, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Respect the context deadline when it is tighter than the default.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(req.PaperWidth),
		PaperHeight:       floatPtr(req.PaperHeight),
		MarginTop:         floatPtr(req.Margins.Top()),
		MarginRight:       floatPtr(req.Margins.Right()),
		MarginBottom:      floatPtr(req.Margins.Bottom()),
		MarginLeft:        floatPtr(req.Margins.Left()),
		PreferCSSPageSize: req.PreferCSSPageSize,
		PrintBackground:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
