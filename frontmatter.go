package pdfcomposer

import (
	"bufio"
	"fmt"
	"strings"
)

// frontMatterDelimiter separates the YAML block from the Markdown body.
// A delimiter line contains exactly "---" after trimming.
const frontMatterDelimiter = "---"

// maxDelimiters is the number of delimiter lines that have structural
// meaning; any later "---" line is ordinary body content.
const maxDelimiters = 2

// FrontMatterSplit is the result of splitting a raw document.
type FrontMatterSplit struct {
	// YAML holds the raw lines between the two delimiters, newline-terminated.
	YAML string
	// Markdown holds everything after the second delimiter line, verbatim.
	Markdown string
	// Delimiters counts delimiter lines seen, capped at two. A document
	// with fewer than two has no valid front matter.
	Delimiters int
}

// Valid reports whether both delimiters were found.
func (s FrontMatterSplit) Valid() bool { return s.Delimiters >= maxDelimiters }

// SplitFrontMatter scans the document line by line and separates the YAML
// front-matter block from the Markdown body. Lines before the second
// delimiter that are not delimiters themselves belong to the YAML block;
// everything after the second delimiter line belongs to the body. The
// delimiter lines produce no output.
func SplitFrontMatter(content string) (FrontMatterSplit, error) {
	var split FrontMatterSplit
	var yaml, markdown strings.Builder

	// The scan buffer must hold the longest line; documents embedding
	// data-URI images can carry lines well past the default limit.
	maxLine := 1 << 20
	if len(content) >= maxLine {
		maxLine = len(content) + 1
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == frontMatterDelimiter && split.Delimiters < maxDelimiters {
			split.Delimiters++
			continue
		}

		if split.Delimiters < maxDelimiters {
			yaml.WriteString(line)
			yaml.WriteString("\n")
			continue
		}

		markdown.WriteString(line)
		markdown.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return FrontMatterSplit{}, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}

	split.YAML = yaml.String()
	split.Markdown = markdown.String()
	return split, nil
}
