package pdfcomposer

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		wantKeys []string
		wantErr  error
	}{
		{
			name:     "keys come back alphabetical",
			yaml:     "zebra: last\nalpha: first\nmike: middle\n",
			wantKeys: []string{"alpha", "mike", "zebra"},
		},
		{
			name:     "single entry",
			yaml:     "title: Report\n",
			wantKeys: []string{"title"},
		},
		{
			name:    "empty block is invalid",
			yaml:    "",
			wantErr: ErrInvalidFrontMatter,
		},
		{
			name:    "whitespace only block is invalid",
			yaml:    "   \n\n",
			wantErr: ErrInvalidFrontMatter,
		},
		{
			name:    "sequence root is invalid",
			yaml:    "- one\n- two\n",
			wantErr: ErrInvalidFrontMatter,
		},
		{
			name:    "malformed yaml is invalid",
			yaml:    "title: [unclosed\n",
			wantErr: ErrInvalidFrontMatter,
		},
		{
			name:    "numeric key rejects whole block",
			yaml:    "title: fine\n42: not fine\n",
			wantErr: ErrYAMLKeyNotString,
		},
		{
			name:    "boolean key rejects whole block",
			yaml:    "true: nope\n",
			wantErr: ErrYAMLKeyNotString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, err := ParseFrontMatter(tt.yaml)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseFrontMatter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrontMatter() error = %v", err)
			}
			if got := fm.Keys(); !reflect.DeepEqual(got, tt.wantKeys) {
				t.Errorf("Keys() = %v, want %v", got, tt.wantKeys)
			}
		})
	}
}

func TestFrontMatter_Strings(t *testing.T) {
	t.Parallel()

	fm, err := ParseFrontMatter("title: Report\ncount: 3\ndraft: true\nnothing: null\ntags:\n  - a\n  - b\nauthor: Ana\n")
	if err != nil {
		t.Fatalf("ParseFrontMatter() error = %v", err)
	}

	want := map[string]string{
		"title":  "Report",
		"author": "Ana",
	}
	if got := fm.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v, want %v", got, want)
	}

	if n := fm.Len(); n != 6 {
		t.Errorf("Len() = %d, want 6", n)
	}
	if _, ok := fm.Get("count"); !ok {
		t.Error("Get(count) reported absent, want present")
	}
	if _, ok := fm.GetString("count"); ok {
		t.Error("GetString(count) = ok for non-string value")
	}
	if s, ok := fm.GetString("title"); !ok || s != "Report" {
		t.Errorf("GetString(title) = %q, %v", s, ok)
	}
}
