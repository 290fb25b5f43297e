package checklist

//go:generate go tool stringer -type=FieldKind -trimprefix=Kind -output=fieldkind_string.go

// FieldKind identifies which of the mutually exclusive field variants a
// checklist field carries.
type FieldKind int

const (
	// KindPlainText is free text without further constraints. It is the
	// zero value and the defensive default for unrecognized variants.
	KindPlainText FieldKind = iota
	// KindPatternText is text constrained by a regular expression.
	KindPatternText
	// KindChoice restricts values to a fixed list.
	KindChoice
)

// Requirement tokens used by checklist documents.
const (
	RequirementMandatory   = "mandatory"
	RequirementRecommended = "recommended"
	RequirementOptional    = "optional"
)

// Checklist is one parsed checklist definition document.
type Checklist struct {
	// Accession uniquely identifies the checklist (e.g. ERC000012).
	Accession string
	// Type is the checklist category as declared by the source document.
	Type        string
	Label       string
	Name        string
	Description string
	Authority   string
	// Groups hold the checklist fields in document order.
	Groups []FieldGroup
}

// FieldGroup is a titled section of related fields.
type FieldGroup struct {
	Name string
	// Restriction describes how many of the group's fields may be used,
	// in the source document's own words.
	Restriction string
	Fields      []Field
}

// Field is a single metadata field definition.
type Field struct {
	Name        string
	Label       string
	Description string
	// Mandatory is true only when the source marks the field as strictly
	// mandatory; recommended and optional both map to false.
	Mandatory bool
	// Requirement is the raw requirement token from the source document.
	Requirement  string
	Multiplicity string
	Kind         FieldKind
	// Pattern is the verbatim regular expression of a PatternText field.
	// It is carried as opaque text, never compiled.
	Pattern string
	// Choices are the permitted values of a Choice field, in document
	// order, duplicates preserved. May be empty when the document lists
	// no usable values.
	Choices []string
	// Units are the measurement units attached to the field, in document
	// order.
	Units []string
}

// FieldCount returns the total number of fields across all groups.
func (c *Checklist) FieldCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Fields)
	}

	return n
}
