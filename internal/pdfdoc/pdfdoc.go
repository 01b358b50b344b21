// Package pdfdoc wraps the pdfkit object model behind the small surface the
// composer needs: load a PDF from bytes, walk and mutate its dictionary
// objects, set the format version, and serialize back to bytes.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/wudi/pdfkit/ir/raw"
	"github.com/wudi/pdfkit/parser"
	"github.com/wudi/pdfkit/writer"
)

// Document is a loaded PDF held at the raw object level.
type Document struct {
	doc *raw.Document
}

// Load parses PDF bytes into a Document.
func Load(ctx context.Context, data []byte) (*Document, error) {
	p := parser.NewDocumentParser(parser.Config{})
	doc, err := p.Parse(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pdfdoc: parsing PDF: %w", err)
	}
	return &Document{doc: doc}, nil
}

// SetVersion sets the format version tag written into the file header,
// e.g. "1.7" or "2.0".
func (d *Document) SetVersion(version string) {
	d.doc.Version = version
}

// Version returns the current format version tag.
func (d *Document) Version() string {
	return d.doc.Version
}

// Dictionary is a mutable view of one PDF dictionary object.
type Dictionary struct {
	obj *raw.DictObj
}

// Has reports whether the dictionary contains key.
func (dict Dictionary) Has(key string) bool {
	_, ok := dict.obj.KV[key]
	return ok
}

// SetString stores a literal string value under key. The value is kept as
// raw bytes; the writer escapes delimiters when it serializes the string,
// and the parser unescapes them on load.
func (dict Dictionary) SetString(key, value string) {
	dict.obj.KV[key] = raw.Str([]byte(value))
}

// GetString returns the string value under key, if it is one.
func (dict Dictionary) GetString(key string) (string, bool) {
	s, ok := dict.obj.KV[key].(raw.StringObj)
	if !ok {
		return "", false
	}
	return string(s.Value()), true
}

// VisitDictionaries walks every object in the document and invokes fn for
// each plain dictionary object. Stream objects and other object kinds are
// skipped; only dictionaries are candidates for metadata mutation.
func (d *Document) VisitDictionaries(fn func(dict Dictionary)) {
	for _, obj := range d.sortedRefs() {
		switch o := d.doc.Objects[obj].(type) {
		case *raw.DictObj:
			fn(Dictionary{obj: o})
		case *raw.StreamObj:
			// Stream dictionaries stay as the renderer produced them.
		default:
			// Scalars, arrays, references: nothing to mutate.
		}
	}
}

// sortedRefs returns object references ordered by object number, for
// deterministic visiting and serialization.
func (d *Document) sortedRefs() []raw.ObjectRef {
	refs := make([]raw.ObjectRef, 0, len(d.doc.Objects))
	for ref := range d.doc.Objects {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Num != refs[j].Num {
			return refs[i].Num < refs[j].Num
		}
		return refs[i].Gen < refs[j].Gen
	})
	return refs
}

// Bytes serializes the document as a classic cross-reference-table PDF:
// header, body objects in number order, xref subsections, trailer.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	version := d.doc.Version
	if version == "" {
		version = "1.7"
	}
	buf.WriteString("%PDF-" + version + "\n")
	// Binary marker comment so transfer tools treat the file as binary.
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	refs := d.sortedRefs()
	offsets := make(map[raw.ObjectRef]int, len(refs))

	w := (&writer.WriterBuilder{}).Build()
	for _, ref := range refs {
		offsets[ref] = buf.Len()
		data, err := w.SerializeObject(ref, d.doc.Objects[ref])
		if err != nil {
			return nil, fmt.Errorf("pdfdoc: serializing object %s: %w", ref, err)
		}
		buf.Write(data)
	}

	xrefOffset := buf.Len()
	writeXref(&buf, refs, offsets)
	d.writeTrailer(&buf, refs)
	buf.WriteString(fmt.Sprintf("startxref\n%d\n%%%%EOF\n", xrefOffset))

	return buf.Bytes(), nil
}

// writeXref emits the cross-reference table. Object 0 is always the head of
// the free list; real objects follow in subsections of consecutive numbers.
func writeXref(buf *bytes.Buffer, refs []raw.ObjectRef, offsets map[raw.ObjectRef]int) {
	buf.WriteString("xref\n")
	buf.WriteString("0 1\n")
	buf.WriteString("0000000000 65535 f \n")

	for i := 0; i < len(refs); {
		j := i
		for j+1 < len(refs) && refs[j+1].Num == refs[j].Num+1 {
			j++
		}
		buf.WriteString(fmt.Sprintf("%d %d\n", refs[i].Num, j-i+1))
		for k := i; k <= j; k++ {
			buf.WriteString(fmt.Sprintf("%010d %05d n \n", offsets[refs[k]], refs[k].Gen))
		}
		i = j + 1
	}
}

// writeTrailer emits the trailer dictionary, carrying over the Root and
// Info references from the parsed file.
func (d *Document) writeTrailer(buf *bytes.Buffer, refs []raw.ObjectRef) {
	maxNum := 0
	for _, ref := range refs {
		if ref.Num > maxNum {
			maxNum = ref.Num
		}
	}

	buf.WriteString("trailer\n<< ")
	buf.WriteString(fmt.Sprintf("/Size %d ", maxNum+1))
	for _, key := range []string{"Root", "Info"} {
		if d.doc.Trailer == nil {
			continue
		}
		obj, ok := d.doc.Trailer.Get(raw.NameLiteral(key))
		if !ok {
			continue
		}
		if ref, isRef := obj.(raw.RefObj); isRef {
			buf.WriteString(fmt.Sprintf("/%s %d %d R ", key, ref.Ref().Num, ref.Ref().Gen))
		}
	}
	buf.WriteString(">>\n")
}
