package pdfcomposer

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/pdfcomposer/go-pdfcomposer/internal/yamlutil"
)

// FrontMatter is the parsed YAML front-matter block as a string-keyed map
// with alphabetical key enumeration. Values keep their decoded YAML types;
// only plain-string values take part in placeholder substitution and
// metadata mapping.
type FrontMatter struct {
	keys   []string // sorted
	values map[string]any
}

// ParseFrontMatter decodes a raw YAML block and converts it.
// Returns ErrInvalidFrontMatter when the block is empty, parses to null, or
// is not a mapping; ErrYAMLKeyNotString when the mapping contains a
// non-string key. The non-string-key check is all-or-nothing: one bad key
// rejects the whole block.
func ParseFrontMatter(yamlText string) (*FrontMatter, error) {
	mapping, err := yamlutil.OrderedMapping([]byte(yamlText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	if mapping == nil {
		return nil, ErrInvalidFrontMatter
	}
	return frontMatterFromMapping(mapping)
}

// frontMatterFromMapping converts a decoded YAML mapping into a FrontMatter.
// First insert wins for duplicate keys, a safety net on top of the parser's
// own uniqueness guarantee.
func frontMatterFromMapping(mapping yaml.MapSlice) (*FrontMatter, error) {
	fm := &FrontMatter{values: make(map[string]any, len(mapping))}

	for _, item := range mapping {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrYAMLKeyNotString, item.Key)
		}
		if _, exists := fm.values[key]; exists {
			continue
		}
		fm.values[key] = item.Value
		fm.keys = append(fm.keys, key)
	}

	sort.Strings(fm.keys)
	return fm, nil
}

// Len returns the number of entries.
func (fm *FrontMatter) Len() int { return len(fm.keys) }

// Keys returns the keys in alphabetical order.
func (fm *FrontMatter) Keys() []string {
	out := make([]string, len(fm.keys))
	copy(out, fm.keys)
	return out
}

// Get returns the raw value for key.
func (fm *FrontMatter) Get(key string) (any, bool) {
	v, ok := fm.values[key]
	return v, ok
}

// GetString returns the value for key when it is a plain string.
func (fm *FrontMatter) GetString(key string) (string, bool) {
	s, ok := fm.values[key].(string)
	return s, ok
}

// Strings returns the subset of entries whose values are plain strings.
// Numbers, booleans, nulls, sequences, and nested mappings are excluded.
func (fm *FrontMatter) Strings() map[string]string {
	out := make(map[string]string, len(fm.values))
	for k, v := range fm.values {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
