package checklist

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed reports a document that decoded as XML but does not carry
// the expected checklist structure: no CHECKLIST element, no DESCRIPTOR
// block, or a blank accession.
var ErrMalformed = errors.New("checklist: malformed document")

// Document mirror structs for encoding/xml. Element and attribute names
// follow the source format exactly.
type xmlChecklistSet struct {
	Checklists []xmlChecklist `xml:"CHECKLIST"`
}

type xmlChecklist struct {
	Accession  string         `xml:"accession,attr"`
	Type       string         `xml:"checklistType,attr"`
	Descriptor *xmlDescriptor `xml:"DESCRIPTOR"`
}

type xmlDescriptor struct {
	Label       string          `xml:"LABEL"`
	Name        string          `xml:"NAME"`
	Description string          `xml:"DESCRIPTION"`
	Authority   string          `xml:"AUTHORITY"`
	Groups      []xmlFieldGroup `xml:"FIELD_GROUP"`
}

type xmlFieldGroup struct {
	Restriction string     `xml:"restrictionType,attr"`
	Name        string     `xml:"NAME"`
	Fields      []xmlField `xml:"FIELD"`
}

type xmlField struct {
	Label        string        `xml:"LABEL"`
	Name         string        `xml:"NAME"`
	Description  string        `xml:"DESCRIPTION"`
	Mandatory    string        `xml:"MANDATORY"`
	Multiplicity string        `xml:"MULTIPLICITY"`
	FieldType    *xmlFieldType `xml:"FIELD_TYPE"`
	Units        []string      `xml:"UNITS>UNIT"`
}

type xmlFieldType struct {
	TextChoice *xmlTextChoiceField `xml:"TEXT_CHOICE_FIELD"`
	Text       *xmlTextField       `xml:"TEXT_FIELD"`
}

type xmlTextField struct {
	Regex string `xml:"REGEX_VALUE"`
}

type xmlTextChoiceField struct {
	Values []string `xml:"TEXT_VALUE>VALUE"`
}

// ParseFile reads and parses a checklist XML file from the given path.
func ParseFile(path string) (*Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist file %s: %w", path, err)
	}
	defer f.Close()

	cl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cl, nil
}

// Parse parses one checklist XML document. The root element may be a
// CHECKLIST_SET (only its first CHECKLIST is consumed) or a bare
// CHECKLIST.
func Parse(r io.Reader) (*Checklist, error) {
	dec := xml.NewDecoder(r)

	root, err := rootElement(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist XML: %w", err)
	}

	var doc xmlChecklist

	switch root.Name.Local {
	case "CHECKLIST_SET":
		var set xmlChecklistSet
		if err := dec.DecodeElement(&set, root); err != nil {
			return nil, fmt.Errorf("failed to parse checklist XML: %w", err)
		}

		if len(set.Checklists) == 0 {
			return nil, fmt.Errorf("%w: CHECKLIST_SET has no CHECKLIST", ErrMalformed)
		}

		doc = set.Checklists[0]
	case "CHECKLIST":
		if err := dec.DecodeElement(&doc, root); err != nil {
			return nil, fmt.Errorf("failed to parse checklist XML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unexpected root element %s", ErrMalformed, root.Name.Local)
	}

	return fromXML(doc)
}

// rootElement advances the decoder to the document's first start element.
func rootElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

func fromXML(doc xmlChecklist) (*Checklist, error) {
	if doc.Descriptor == nil {
		return nil, fmt.Errorf("%w: CHECKLIST has no DESCRIPTOR", ErrMalformed)
	}

	accession := strings.TrimSpace(doc.Accession)
	if accession == "" {
		return nil, fmt.Errorf("%w: CHECKLIST has no accession", ErrMalformed)
	}

	d := doc.Descriptor
	cl := &Checklist{
		Accession:   accession,
		Type:        strings.TrimSpace(doc.Type),
		Label:       strings.TrimSpace(d.Label),
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Authority:   strings.TrimSpace(d.Authority),
		Groups:      make([]FieldGroup, 0, len(d.Groups)),
	}

	for _, g := range d.Groups {
		group := FieldGroup{
			Name:        strings.TrimSpace(g.Name),
			Restriction: strings.TrimSpace(g.Restriction),
			Fields:      make([]Field, 0, len(g.Fields)),
		}

		for _, f := range g.Fields {
			group.Fields = append(group.Fields, fieldFromXML(f))
		}

		cl.Groups = append(cl.Groups, group)
	}

	return cl, nil
}

func fieldFromXML(f xmlField) Field {
	out := Field{
		Name:         strings.TrimSpace(f.Name),
		Label:        strings.TrimSpace(f.Label),
		Description:  strings.TrimSpace(f.Description),
		Requirement:  strings.TrimSpace(f.Mandatory),
		Multiplicity: strings.TrimSpace(f.Multiplicity),
		Units:        cleanTexts(f.Units),
	}
	out.Mandatory = out.Requirement == RequirementMandatory

	// TEXT_CHOICE_FIELD wins if a document carries both variants. Any
	// other content of FIELD_TYPE falls through to plain text.
	switch {
	case f.FieldType == nil:
	case f.FieldType.TextChoice != nil:
		out.Kind = KindChoice
		out.Choices = cleanTexts(f.FieldType.TextChoice.Values)
	case f.FieldType.Text != nil:
		if regex := strings.TrimSpace(f.FieldType.Text.Regex); regex != "" {
			out.Kind = KindPatternText
			out.Pattern = regex
		}
	}

	return out
}

// cleanTexts trims every entry and drops the empty ones, preserving order
// and duplicates.
func cleanTexts(in []string) []string {
	var out []string

	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		out = append(out, s)
	}

	return out
}
