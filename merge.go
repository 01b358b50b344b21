package pdfcomposer

import "regexp"

// placeholderPattern matches {{key}} tokens. The capture is a maximal run of
// characters excluding '}', so nested or unbalanced braces stay untouched.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]*)\}\}`)

// MergeFrontMatter substitutes {{key}} placeholders in the Markdown body
// with string values from the front matter. The captured key is used
// verbatim, without trimming. Placeholders whose key is absent, or whose
// value is not a plain string, are left exactly as written. Substitution is
// a single pass: replacement text is never rescanned for placeholders.
func MergeFrontMatter(fm *FrontMatter, body string) string {
	if fm == nil || fm.Len() == 0 {
		return body
	}
	strings := fm.Strings()
	if len(strings) == 0 {
		return body
	}

	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := strings[key]; ok {
			return value
		}
		return match
	})
}
