package pdfcomposer

import (
	"sort"
	"strings"
)

// PackageName is the product identifier written into the Producer entry of
// generated PDFs, and into Creator when the front matter has no "generator"
// value.
const PackageName = "PDF Composer"

// DocInfoEntry associates a PDF document-information dictionary field with
// the YAML front-matter key that supplies its value.
type DocInfoEntry struct {
	// Name of the dictionary field, e.g. "Author" or "Language".
	Name string
	// YAMLKey is looked up in the document's string-valued front matter.
	YAMLKey string
}

// Reserved dictionary field names. These are case-sensitive in the PDF
// specification and must be capitalized; any other field name is stored as
// the caller supplied it.
const (
	fieldTitle    = "Title"
	fieldAuthor   = "Author"
	fieldSubject  = "Subject"
	fieldKeywords = "Keywords"
)

// normalizeDocInfoName canonicalizes reserved field names regardless of the
// caller's capitalization. Non-reserved names pass through unchanged.
func normalizeDocInfoName(name string) string {
	switch strings.ToLower(name) {
	case "title":
		return fieldTitle
	case "author":
		return fieldAuthor
	case "subject":
		return fieldSubject
	case "keywords":
		return fieldKeywords
	}
	return name
}

// docInfoRules is the registry of field-name to YAML-key associations.
// Enumeration is alphabetical by field name; a later registration for the
// same field name overwrites the earlier one.
type docInfoRules map[string]string

// add registers a rule under the normalized field name.
func (r docInfoRules) add(entry DocInfoEntry) {
	r[normalizeDocInfoName(entry.Name)] = entry.YAMLKey
}

// fieldNames returns the registered field names in alphabetical order.
func (r docInfoRules) fieldNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clone returns an independent copy, used to freeze the registry into the
// batch configuration snapshot.
func (r docInfoRules) clone() docInfoRules {
	out := make(docInfoRules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// DocInfoValue is one resolved dictionary write: the field name plus the
// final string value taken from the front matter.
type DocInfoValue struct {
	Field string
	Value string
}

// resolveDocInfo evaluates every rule against the document's string-valued
// front matter. A rule whose YAML key has no string value produces nothing:
// the dictionary write is skipped entirely rather than writing an empty
// value. Results are ordered alphabetically by field name.
func resolveDocInfo(rules docInfoRules, strings map[string]string) []DocInfoValue {
	resolved := make([]DocInfoValue, 0, len(rules))
	for _, field := range rules.fieldNames() {
		value, ok := strings[rules[field]]
		if !ok {
			continue
		}
		resolved = append(resolved, DocInfoValue{Field: field, Value: value})
	}
	return resolved
}
