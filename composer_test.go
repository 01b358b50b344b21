package pdfcomposer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// fakeRenderer satisfies pdfRenderer without a browser. It records every
// request and hands back a well-formed PDF, or a configured error.
type fakeRenderer struct {
	mu       sync.Mutex
	requests []RenderRequest
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, req RenderRequest) ([]byte, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return renderedPDF(), nil
}

func (f *fakeRenderer) Close() error { return nil }

func (f *fakeRenderer) lastRequest(t *testing.T) RenderRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("renderer was never invoked")
	}
	return f.requests[len(f.requests)-1]
}

// newTestComposer builds a Composer wired to a fake renderer.
func newTestComposer(t *testing.T, fake *fakeRenderer, opts ...Option) *Composer {
	t.Helper()

	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.newRenderer = func() pdfRenderer { return fake }
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

const sampleDoc = `---
title: Quarterly Report
author: Ana
generator: test-suite
---
# {{title}}

Written by {{author}}.
`

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "report.md", sampleDoc)
	out := filepath.Join(dir, "out")

	fake := &fakeRenderer{}
	c := newTestComposer(t, fake,
		WithSourceFiles(src),
		WithOutputDirectory(out),
		WithDocInfoEntry(DocInfoEntry{Name: "author", YAMLKey: "author"}),
	)

	results, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	res := results[0]
	if res.Err != nil {
		t.Fatalf("result error = %v", res.Err)
	}
	if want := filepath.Join(out, "report.pdf"); res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}

	pdf, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF-1.7\n") {
		t.Errorf("output header = %q, want %%PDF-1.7", pdf[:12])
	}

	info := infoStrings(t, pdf)
	if info["Author"] != "Ana" {
		t.Errorf("Author = %q, want Ana", info["Author"])
	}
	if info["Creator"] != "test-suite" {
		t.Errorf("Creator = %q, want generator value", info["Creator"])
	}
	if info["Producer"] != PackageName {
		t.Errorf("Producer = %q, want %q", info["Producer"], PackageName)
	}

	// Placeholders were merged before HTML conversion, and the page title
	// came from the front matter.
	html := fake.lastRequest(t).HTML
	if !strings.Contains(html, "Written by Ana.") {
		t.Error("author placeholder was not substituted")
	}
	if strings.Contains(html, "{{author}}") {
		t.Error("placeholder token survived into the HTML")
	}
	if !strings.Contains(html, "<title>Quarterly Report</title>") {
		t.Error("page title was not taken from the front matter")
	}
}

func TestGenerate_PageGeometry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "slides.md", "---\ntitle: Deck\n---\nBody\n")

	fake := &fakeRenderer{}
	c := newTestComposer(t, fake,
		WithSourceFiles(src),
		WithOutputDirectory(filepath.Join(dir, "out")),
		WithPaperSize(PaperLetter),
		WithOrientation(Landscape),
		WithMargins("20 10"),
	)

	if _, err := c.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := fake.lastRequest(t)
	if req.PaperWidth != 11.0 || req.PaperHeight != 8.5 {
		t.Errorf("paper = %v x %v, want 11 x 8.5 (landscape letter)", req.PaperWidth, req.PaperHeight)
	}
	wantTop := 20.0 / 25.4
	if req.Margins.Top() != wantTop {
		t.Errorf("top margin = %v, want %v", req.Margins.Top(), wantTop)
	}
	if !req.PreferCSSPageSize {
		t.Error("PreferCSSPageSize = false, want true")
	}
}

func TestGenerate_PerDocumentFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeSource(t, dir, "good.md", sampleDoc)
	noFrontMatter := writeSource(t, dir, "plain.md", "# Just markdown\n")
	badKey := writeSource(t, dir, "badkey.md", "---\n42: numeric\n---\nBody\n")
	nullYAML := writeSource(t, dir, "empty.md", "---\n---\nBody\n")
	missing := filepath.Join(dir, "missing.md")

	fake := &fakeRenderer{}
	c := newTestComposer(t, fake,
		WithSourceFiles(good, noFrontMatter, badKey, nullYAML, missing),
		WithOutputDirectory(filepath.Join(dir, "out")),
	)

	results, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}

	bySource := make(map[string]Result, len(results))
	for _, res := range results {
		bySource[res.Source] = res
	}

	if err := bySource[good].Err; err != nil {
		t.Errorf("good document failed: %v", err)
	}
	if err := bySource[noFrontMatter].Err; !errors.Is(err, ErrInvalidFrontMatter) {
		t.Errorf("plain.md error = %v, want %v", err, ErrInvalidFrontMatter)
	}
	if err := bySource[badKey].Err; !errors.Is(err, ErrYAMLKeyNotString) {
		t.Errorf("badkey.md error = %v, want %v", err, ErrYAMLKeyNotString)
	}
	if err := bySource[nullYAML].Err; !errors.Is(err, ErrInvalidFrontMatter) {
		t.Errorf("empty.md error = %v, want %v", err, ErrInvalidFrontMatter)
	}
	if err := bySource[missing].Err; !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("missing.md error = %v, want %v", err, ErrSourceNotFound)
	}

	// The one good document still produced its PDF.
	if _, err := os.Stat(bySource[good].Output); err != nil {
		t.Errorf("good output missing: %v", err)
	}
}

func TestGenerate_EmptySourceList(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t, &fakeRenderer{})

	if _, err := c.Generate(context.Background()); !errors.Is(err, ErrNoSourceFiles) {
		t.Errorf("Generate() error = %v, want %v", err, ErrNoSourceFiles)
	}
}

func TestGenerate_LockedOutput(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("root bypasses file permissions")
	}

	dir := t.TempDir()
	src := writeSource(t, dir, "report.md", sampleDoc)
	out := filepath.Join(dir, "out")
	if err := os.MkdirAll(out, 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	locked := filepath.Join(out, "report.pdf")
	if err := os.WriteFile(locked, []byte("%PDF"), 0o444); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c := newTestComposer(t, &fakeRenderer{},
		WithSourceFiles(src),
		WithOutputDirectory(out),
	)

	results, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !errors.Is(results[0].Err, ErrOutputLocked) {
		t.Errorf("result error = %v, want %v", results[0].Err, ErrOutputLocked)
	}

	// The locked file was not overwritten.
	content, err := os.ReadFile(locked)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "%PDF" {
		t.Error("locked output file was overwritten")
	}
}

func TestGenerate_RenderFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "report.md", sampleDoc)

	fake := &fakeRenderer{err: ErrPDFGeneration}
	c := newTestComposer(t, fake,
		WithSourceFiles(src),
		WithOutputDirectory(filepath.Join(dir, "out")),
	)

	results, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !errors.Is(results[0].Err, ErrPDFGeneration) {
		t.Errorf("result error = %v, want %v", results[0].Err, ErrPDFGeneration)
	}
}

func TestGenerate_AfterClose(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "report.md", sampleDoc)

	fake := &fakeRenderer{}
	c := newTestComposer(t, fake,
		WithSourceFiles(src),
		WithOutputDirectory(filepath.Join(dir, "out")),
	)

	if _, err := c.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	results, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() after Close error = %v", err)
	}
	if !errors.Is(results[0].Err, ErrRendererUnavailable) {
		t.Errorf("result error = %v, want %v", results[0].Err, ErrRendererUnavailable)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "invalid paper size",
			opts:    []Option{WithPaperSize("A11")},
			wantErr: ErrInvalidPaperSize,
		},
		{
			name:    "invalid orientation",
			opts:    []Option{WithOrientation("diagonal")},
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "invalid font",
			opts:    []Option{WithFont("ComicSans")},
			wantErr: ErrInvalidFont,
		},
		{
			name:    "invalid pdf version",
			opts:    []Option{WithPDFVersion("1.4")},
			wantErr: ErrInvalidPDFVersion,
		},
		{
			name:    "source path ending in separator",
			opts:    []Option{WithSourceFiles("docs/")},
			wantErr: ErrInvalidSourcePath,
		},
		{
			name:    "empty source path",
			opts:    []Option{WithSourceFiles("  ")},
			wantErr: ErrInvalidSourcePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New(tt.opts...); !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_MalformedMarginsWarns(t *testing.T) {
	t.Parallel()

	c, err := New(WithMargins("10 banana"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	warnings := c.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want one entry", warnings)
	}
	if !strings.Contains(warnings[0], "default margins") {
		t.Errorf("warning = %q, want mention of default margins", warnings[0])
	}
	if c.margins != DefaultMargins() {
		t.Errorf("margins = %v, want defaults", c.margins)
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := ResolveWorkers(3); got != 3 {
		t.Errorf("ResolveWorkers(3) = %d, want 3", got)
	}

	auto := ResolveWorkers(0)
	if auto < MinWorkers || auto > MaxWorkers {
		t.Errorf("ResolveWorkers(0) = %d, want within [%d, %d]", auto, MinWorkers, MaxWorkers)
	}
}
