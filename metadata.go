package pdfcomposer

import (
	"context"
	"fmt"

	"github.com/pdfcomposer/go-pdfcomposer/internal/pdfdoc"
)

// Dictionary keys managed by the metadata pass.
const (
	keyCreator   = "Creator"
	keyProducer  = "Producer"
	generatorKey = "generator" // front-matter key that overrides Creator
)

// docMetadata carries everything the metadata pass needs for one document.
type docMetadata struct {
	Version PDFVersion
	Rules   docInfoRules
	Strings map[string]string // string-valued front matter
	// DerivedName backs the Title entry when no rule supplies one.
	DerivedName string
}

// applyDocMetadata loads the rendered PDF, sets the format version, and
// rewrites the document-information entries. The rewrite targets only
// dictionaries that already carry a Creator key: the renderer stamps
// Creator/Producer into the information dictionary, so its presence marks
// the right object; every other dictionary is left untouched.
//
// Returns the mutated PDF bytes and the resolved entries, for reporting.
func applyDocMetadata(ctx context.Context, pdf []byte, meta docMetadata) ([]byte, []DocInfoValue, error) {
	doc, err := pdfdoc.Load(ctx, pdf)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPDFDecode, err)
	}

	doc.SetVersion(meta.Version.String())

	entries := resolveDocInfo(meta.Rules, meta.Strings)

	creator := PackageName
	if generator, ok := meta.Strings[generatorKey]; ok {
		creator = generator
	}

	titleResolved := false
	for _, e := range entries {
		if e.Field == fieldTitle {
			titleResolved = true
			break
		}
	}

	doc.VisitDictionaries(func(dict pdfdoc.Dictionary) {
		if !dict.Has(keyCreator) {
			return
		}

		dict.SetString(keyCreator, creator)
		dict.SetString(keyProducer, PackageName)

		for _, e := range entries {
			dict.SetString(e.Field, e.Value)
		}

		// Title is always present: fall back to the derived file name
		// when no rule resolved one.
		if !titleResolved {
			dict.SetString(fieldTitle, meta.DerivedName)
		}
	})

	if !titleResolved {
		entries = append(entries, DocInfoValue{Field: fieldTitle, Value: meta.DerivedName})
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return out, entries, nil
}
