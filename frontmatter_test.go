package pdfcomposer

import (
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		wantYAML     string
		wantMarkdown string
		wantValid    bool
	}{
		{
			name:         "standard document",
			content:      "---\ntitle: Report\n---\n# Heading\n\nBody text.\n",
			wantYAML:     "title: Report\n",
			wantMarkdown: "# Heading\n\nBody text.\n",
			wantValid:    true,
		},
		{
			name:         "empty yaml block",
			content:      "---\n---\n# Only body\n",
			wantYAML:     "",
			wantMarkdown: "# Only body\n",
			wantValid:    true,
		},
		{
			name:         "delimiter with surrounding whitespace",
			content:      "  ---  \ntitle: Spaced\n\t---\t\nBody\n",
			wantYAML:     "title: Spaced\n",
			wantMarkdown: "Body\n",
			wantValid:    true,
		},
		{
			name:         "later dashes are body content",
			content:      "---\ntitle: Rules\n---\nabove\n---\nbelow\n",
			wantYAML:     "title: Rules\n",
			wantMarkdown: "above\n---\nbelow\n",
			wantValid:    true,
		},
		{
			name:         "single delimiter is invalid",
			content:      "---\ntitle: Broken\nNo closing line\n",
			wantYAML:     "title: Broken\nNo closing line\n",
			wantMarkdown: "",
			wantValid:    false,
		},
		{
			name:         "no delimiters is invalid",
			content:      "# Just markdown\n",
			wantYAML:     "# Just markdown\n",
			wantMarkdown: "",
			wantValid:    false,
		},
		{
			name:         "empty input is invalid",
			content:      "",
			wantYAML:     "",
			wantMarkdown: "",
			wantValid:    false,
		},
		{
			name:         "content before first delimiter joins yaml block",
			content:      "stray\n---\ntitle: Odd\n---\nBody\n",
			wantYAML:     "stray\ntitle: Odd\n",
			wantMarkdown: "Body\n",
			wantValid:    true,
		},
		{
			name:         "four dashes is not a delimiter",
			content:      "----\ntitle: Nope\n----\nBody\n",
			wantYAML:     "----\ntitle: Nope\n----\nBody\n",
			wantMarkdown: "",
			wantValid:    false,
		},
		{
			name:         "body ending without trailing newline",
			content:      "---\na: 1\n---\nlast line",
			wantYAML:     "a: 1\n",
			wantMarkdown: "last line\n",
			wantValid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			split, err := SplitFrontMatter(tt.content)
			if err != nil {
				t.Fatalf("SplitFrontMatter() error = %v", err)
			}
			if split.YAML != tt.wantYAML {
				t.Errorf("YAML = %q, want %q", split.YAML, tt.wantYAML)
			}
			if split.Markdown != tt.wantMarkdown {
				t.Errorf("Markdown = %q, want %q", split.Markdown, tt.wantMarkdown)
			}
			if split.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", split.Valid(), tt.wantValid)
			}
		})
	}
}

func TestSplitFrontMatter_LongLine(t *testing.T) {
	t.Parallel()

	// A single body line larger than the default scan buffer, as produced
	// by an embedded data-URI image. It must come back intact.
	line := "![img](data:image/png;base64," + strings.Repeat("A", 3<<20) + ")"
	content := "---\ntitle: Big\n---\n" + line + "\n"

	split, err := SplitFrontMatter(content)
	if err != nil {
		t.Fatalf("SplitFrontMatter() error = %v", err)
	}
	if !split.Valid() {
		t.Fatal("Valid() = false, want true")
	}
	if split.YAML != "title: Big\n" {
		t.Errorf("YAML = %q, want %q", split.YAML, "title: Big\n")
	}
	if split.Markdown != line+"\n" {
		t.Errorf("Markdown length = %d, want %d", len(split.Markdown), len(line)+1)
	}
}
