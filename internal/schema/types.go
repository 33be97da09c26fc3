package schema

import (
	"model-generator/internal/common"
	"model-generator/internal/diagnostic"
)

// Attribute names recognized on a Property element.
const (
	AttrName           = "name"
	AttrType           = "type"
	AttrInEntity       = "inEntity"
	AttrInEntityTarget = "inEntityTarget"
	AttrInDTO          = "inDTO"
	AttrInDtoTarget    = "inDtoTarget"
)

// PropertyElement is the local name of field declaration elements.
const PropertyElement = "Property"

// KnownAttributes lists every attribute a Property may carry.
var KnownAttributes = []string{
	AttrName, AttrType, AttrInEntity, AttrInEntityTarget, AttrInDTO, AttrInDtoTarget,
}

// Document is a parsed model schema.
type Document struct {
	// Name is the model name taken from the root element.
	Name string
	// Fields are the field declarations in document order, duplicates included.
	Fields []RawField
	// Diagnostics collects dropped fields and suspicious attributes.
	Diagnostics diagnostic.Diagnostics
}

// RawField is one Property declaration.
type RawField struct {
	Name     string
	Type     string
	InEntity bool
	InDTO    bool
}

// SkipReason tells why a whole unit produced no output.
type SkipReason int

const (
	// SkipMalformed - the document is not well-formed XML.
	SkipMalformed SkipReason = iota + 1
	// SkipMissingName - the root element has no usable name.
	SkipMissingName
	// SkipEmit - the generated source could not be rendered.
	SkipEmit
)

// String returns a human-readable reason.
func (r SkipReason) String() string {
	switch r {
	case SkipMalformed:
		return "malformed"
	case SkipMissingName:
		return "missing_name"
	case SkipEmit:
		return "emit_failed"
	default:
		return common.UnknownStr
	}
}

// Skip records why a unit was dropped. It is a value, not an error: a skipped
// unit never fails the batch it belongs to.
type Skip struct {
	Reason SkipReason
	Detail string
}

// String returns a formatted skip description.
func (s *Skip) String() string {
	if s.Detail == "" {
		return s.Reason.String()
	}

	return s.Reason.String() + ": " + s.Detail
}
