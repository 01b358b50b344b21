package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	pdfcomposer "github.com/pdfcomposer/go-pdfcomposer"
)

// timeRounding trims per-document durations in verbose output.
const timeRounding = time.Millisecond

// expandSources resolves glob patterns in the positional arguments.
// Literal paths pass through untouched so that a missing file is still
// reported per document rather than silently dropped. Matches are
// deduplicated and sorted for stable output ordering.
func expandSources(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var sources []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		sources = append(sources, path)
	}

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %v", pattern, err)
		}
		ordered := append([]string(nil), matches...)
		sort.Strings(ordered)
		for _, m := range ordered {
			add(m)
		}
	}
	return sources, nil
}

// hasGlobMeta reports whether the pattern contains glob metacharacters.
func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// run composes all matched sources and reports per-document outcomes.
func run(ctx context.Context, flags *cliFlags, patterns []string, stdout, stderr io.Writer) int {
	sources, err := expandSources(patterns)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	opts, err := buildOptions(flags, sources)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	composer, err := pdfcomposer.New(opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer func() {
		if cerr := composer.Close(); cerr != nil && flags.verbose {
			fmt.Fprintf(stderr, "cleanup: %v\n", cerr)
		}
	}()

	for _, warning := range composer.Warnings() {
		fmt.Fprintf(stderr, "warning: %s\n", warning)
	}

	results, err := composer.Generate(ctx)
	if err != nil {
		if errors.Is(err, pdfcomposer.ErrNoSourceFiles) {
			fmt.Fprintln(stderr, "no source files matched; nothing to do")
			return exitUsage
		}
		fmt.Fprintln(stderr, err)
		return exitGeneral
	}

	return report(results, flags.verbose, stdout, stderr)
}

// report prints one line per document and returns the process exit code.
func report(results []pdfcomposer.Result, verbose bool, stdout, stderr io.Writer) int {
	var failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(stderr, "✗ %s: %v\n", res.Source, res.Err)
		case verbose:
			fmt.Fprintf(stdout, "✓ %s -> %s (%s)\n", res.Source, res.Output, res.Duration.Round(timeRounding))
		default:
			fmt.Fprintf(stdout, "✓ %s -> %s\n", res.Source, res.Output)
		}
	}

	if verbose {
		fmt.Fprintf(stdout, "%d composed, %d failed\n", len(results)-failed, failed)
	}
	if failed > 0 {
		return exitGeneral
	}
	return exitSuccess
}
