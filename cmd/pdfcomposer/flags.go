package main

import (
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	pdfcomposer "github.com/pdfcomposer/go-pdfcomposer"
)

// Exit codes. Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	exitSuccess = 0 // All documents composed
	exitGeneral = 1 // At least one document failed or was skipped
	exitUsage   = 2 // Invalid flags or no source files
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	config      string
	output      string
	paper       string
	orientation string
	margins     string
	font        string
	pdfVersion  string
	meta        []string
	workers     int
	timeout     time.Duration
	verbose     bool
	showVersion bool
}

// parseFlags parses argv and returns the flags plus positional source
// patterns. argv[0] is the program name.
func parseFlags(argv []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("pdfcomposer", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "YAML config file (flags take precedence)")
	fs.StringVarP(&f.output, "out", "o", pdfcomposer.DefaultOutputDirectory, "output directory for generated PDFs")
	fs.StringVarP(&f.paper, "paper", "p", string(pdfcomposer.PaperA4), "paper size (a4, letter, legal, a0-a10, b0-b10, ...)")
	fs.StringVar(&f.orientation, "orientation", string(pdfcomposer.Portrait), "page orientation: portrait, landscape")
	fs.StringVarP(&f.margins, "margins", "m", "", "page margins in whole mm, 1-4 values (CSS shorthand order)")
	fs.StringVar(&f.font, "font", string(pdfcomposer.FontHelvetica), "base font for the document body")
	fs.StringVar(&f.pdfVersion, "pdf-version", string(pdfcomposer.PDFVersion17), "PDF version: 1.7, 2.0")
	fs.StringArrayVar(&f.meta, "meta", nil, "document info entry as Field=yamlKey (repeatable)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per-document render timeout (e.g. 30s, 2m)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-document timing and warnings")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, nil, err
	}

	if f.config != "" {
		cfg, err := loadConfig(f.config)
		if err != nil {
			return nil, nil, err
		}
		if err := applyConfig(f, cfg, fs.Changed); err != nil {
			return nil, nil, err
		}
	}

	return f, fs.Args(), nil
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: pdfcomposer [flags] <markdown files or globs>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Composes YAML front matter markdown files into PDF documents.")
	fmt.Fprintln(out, "Source arguments may use glob patterns, including ** for recursion.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, fs.FlagUsages())
}

// parseMetaEntries converts repeated --meta Field=yamlKey flags into
// document info entries.
func parseMetaEntries(specs []string) ([]pdfcomposer.DocInfoEntry, error) {
	entries := make([]pdfcomposer.DocInfoEntry, 0, len(specs))
	for _, spec := range specs {
		name, key, ok := strings.Cut(spec, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --meta entry %q: want Field=yamlKey", spec)
		}
		entries = append(entries, pdfcomposer.DocInfoEntry{
			Name:    strings.TrimSpace(name),
			YAMLKey: strings.TrimSpace(key),
		})
	}
	return entries, nil
}

// buildOptions translates parsed flags into composer options.
func buildOptions(f *cliFlags, sources []string) ([]pdfcomposer.Option, error) {
	entries, err := parseMetaEntries(f.meta)
	if err != nil {
		return nil, err
	}

	paper, err := pdfcomposer.ParsePaperSize(f.paper)
	if err != nil {
		return nil, err
	}
	font, err := pdfcomposer.ParseFont(f.font)
	if err != nil {
		return nil, err
	}

	opts := []pdfcomposer.Option{
		pdfcomposer.WithSourceFiles(sources...),
		pdfcomposer.WithOutputDirectory(f.output),
		pdfcomposer.WithPaperSize(paper),
		pdfcomposer.WithOrientation(pdfcomposer.Orientation(strings.ToLower(f.orientation))),
		pdfcomposer.WithFont(font),
		pdfcomposer.WithPDFVersion(pdfcomposer.PDFVersion(f.pdfVersion)),
		pdfcomposer.WithWorkers(f.workers),
	}
	if f.margins != "" {
		opts = append(opts, pdfcomposer.WithMargins(f.margins))
	}
	if f.timeout > 0 {
		opts = append(opts, pdfcomposer.WithRenderTimeout(f.timeout))
	}
	for _, e := range entries {
		opts = append(opts, pdfcomposer.WithDocInfoEntry(e))
	}
	return opts, nil
}
