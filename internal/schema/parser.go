package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"model-generator/internal/diagnostic"
	"model-generator/internal/match"
)

// element is the permissive shape both the root and its children decode into.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

// attr returns the value of an un-namespaced attribute.
func (e *element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

// Parse parses a model document. Exactly one of the results is non-nil.
func Parse(data []byte) (*Document, *Skip) {
	root, err := decodeRoot(data)
	if err != nil {
		return nil, &Skip{Reason: SkipMalformed, Detail: err.Error()}
	}

	name, _ := root.attr(AttrName)
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, &Skip{Reason: SkipMissingName}
	}

	doc := &Document{Name: name}

	position := 0

	for i := range root.Children {
		child := &root.Children[i]
		if child.XMLName.Space != "" || child.XMLName.Local != PropertyElement {
			continue
		}

		position++

		if field, ok := parseProperty(doc, child, position); ok {
			doc.Fields = append(doc.Fields, field)
		}
	}

	return doc, nil
}

// charsetReader decodes documents whose XML declaration names a non-UTF-8
// encoding, such as ISO-8859-1 or windows-1252.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", label, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", label)
	}

	return transform.NewReader(input, enc.NewDecoder()), nil
}

// decodeRoot decodes the single root element and rejects trailing content.
func decodeRoot(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root element
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no root element")
		}

		return nil, err
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return &root, nil
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return nil, fmt.Errorf("unexpected second root element <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, errors.New("unexpected text after root element")
			}
		}
	}
}

// parseProperty converts one Property element into a RawField. Fields without
// a name or a type are dropped and reported.
func parseProperty(doc *Document, el *element, position int) (RawField, bool) {
	name, _ := el.attr(AttrName)
	typ, _ := el.attr(AttrType)
	name = strings.TrimSpace(name)
	typ = strings.TrimSpace(typ)

	label := name
	if label == "" {
		label = fmt.Sprintf("%s#%d", PropertyElement, position)
	}

	reportUnknownAttributes(doc, el, label)

	switch {
	case name == "":
		doc.Diagnostics.AddWarning(diagnostic.CodeFieldDropped,
			"property has no name", doc.Name, label)

		return RawField{}, false
	case typ == "":
		doc.Diagnostics.AddWarning(diagnostic.CodeFieldDropped,
			"property has no type", doc.Name, label)

		return RawField{}, false
	}

	inEntity := flag(doc, el, label, AttrInEntity)
	inEntityTarget := flag(doc, el, label, AttrInEntityTarget)
	inDTO := flag(doc, el, label, AttrInDTO)
	inDtoTarget := flag(doc, el, label, AttrInDtoTarget)

	return RawField{
		Name:     name,
		Type:     typ,
		InEntity: inEntity || inEntityTarget,
		InDTO:    inDTO || inDtoTarget,
	}, true
}

// flag reads a visibility attribute. Absent or unparsable values are false.
func flag(doc *Document, el *element, label, attr string) bool {
	raw, ok := el.attr(attr)
	if !ok {
		return false
	}

	v, valid := parseBool(raw)
	if !valid {
		doc.Diagnostics.AddInfo(diagnostic.CodeInvalidBool,
			fmt.Sprintf("%s=%q is not true or false, treated as false", attr, raw), doc.Name, label)
	}

	return v
}

// parseBool accepts exactly "true" and "false" around optional whitespace.
func parseBool(s string) (value, valid bool) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func reportUnknownAttributes(doc *Document, el *element, label string) {
	for _, a := range el.Attrs {
		if a.Name.Space != "" || a.Name.Local == "xmlns" || isKnownAttribute(a.Name.Local) {
			continue
		}

		doc.Diagnostics.AddWarning(diagnostic.CodeUnknownAttribute,
			fmt.Sprintf("unknown attribute %q is ignored", a.Name.Local), doc.Name, label,
			match.Suggest(a.Name.Local, KnownAttributes)...)
	}
}

func isKnownAttribute(name string) bool {
	for _, known := range KnownAttributes {
		if known == name {
			return true
		}
	}

	return false
}
