package linkml

import (
	"fmt"
	"strings"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/checklist"
	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/diagnostic"
	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/ordered"
)

// Fixed schema vocabulary.
const (
	// DefaultBaseURI forms schema ids when no base URI is configured.
	DefaultBaseURI = "https://github.com/timrozday/ena-submission-dataharmonizer"
	// DefaultVersion is the schema version stamp.
	DefaultVersion = "1.0.0"
	// DefaultRange is the range of slots without a choice list.
	DefaultRange = "string"

	interfaceClass       = "dh_interface"
	interfaceDescription = "A DataHarmonizer interface"
	unitsLeadIn          = "Allowed units: "
)

// Prefix is one namespace binding, carried in emission order.
type Prefix struct {
	Prefix    string `yaml:"prefix"`
	Reference string `yaml:"reference"`
}

// Options carries caller-supplied schema metadata. Zero fields fall back
// to defaults; ID, Name, Title and Description additionally derive from
// the checklist itself when left empty.
type Options struct {
	// BaseURI forms the schema id together with the accession.
	BaseURI string
	// Version is the schema version stamp.
	Version string
	// Imports lists schema imports in emission order.
	Imports []string
	// Prefixes lists namespace bindings in emission order.
	Prefixes []Prefix

	// ID overrides the derived schema id (base URI plus accession).
	ID string
	// Name overrides the schema name (the accession).
	Name string
	// Title overrides the schema title (the checklist label).
	Title string
	// Description overrides the schema description.
	Description string
}

// DefaultOptions returns the metadata used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		BaseURI: DefaultBaseURI,
		Version: DefaultVersion,
		Imports: []string{"linkml:types"},
		Prefixes: []Prefix{
			{Prefix: "linkml", Reference: "https://w3id.org/linkml/"},
			{Prefix: "ENA", Reference: "https://www.ebi.ac.uk/ena/browser/view/"},
		},
	}
}

// withDefaults fills unset option fields.
func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.BaseURI == "" {
		o.BaseURI = def.BaseURI
	}

	if o.Version == "" {
		o.Version = def.Version
	}

	if o.Imports == nil {
		o.Imports = def.Imports
	}

	if o.Prefixes == nil {
		o.Prefixes = def.Prefixes
	}

	return o
}

// Build derives the schema model from a parsed checklist. It never fails
// on parser output: anything surprising is recorded as a finding and
// derivation continues.
//
// Every field becomes exactly one slot, in traversal order, with a dense
// 1..N rank spanning group boundaries. Choice fields with at least one
// value additionally produce an enum named after the field.
func Build(cl *checklist.Checklist, opts Options) (*Schema, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	opts = opts.withDefaults()

	s := &Schema{
		ID:           opts.ID,
		Name:         opts.Name,
		Title:        opts.Title,
		Description:  opts.Description,
		Version:      opts.Version,
		Imports:      append([]string(nil), opts.Imports...),
		Prefixes:     ordered.New[string](),
		DefaultRange: DefaultRange,
		Classes:      ordered.New[*ClassDef](),
		Slots:        ordered.New[*SlotDef](),
		Enums:        ordered.New[*EnumDef](),
	}

	if s.ID == "" {
		s.ID = strings.TrimRight(opts.BaseURI, "/") + "/" + cl.Accession
	}

	if s.Name == "" {
		s.Name = cl.Accession
	}

	if s.Title == "" {
		s.Title = cl.Label
	}

	if s.Description == "" {
		s.Description = cl.Description
	}

	for _, p := range opts.Prefixes {
		s.Prefixes.Set(p.Prefix, p.Reference)
	}

	main := &ClassDef{
		Name:        cl.Accession,
		Title:       s.Title,
		Description: s.Description,
		IsA:         interfaceClass,
		SlotUsage:   ordered.New[SlotUsage](),
	}

	// Which field produced each enum name, for collision reporting.
	enumSource := make(map[string]string)

	rank := 0
	for _, g := range cl.Groups {
		for _, f := range g.Fields {
			rank++

			if f.Name == "" {
				diags.AddWarning("empty-field-name",
					"field has no NAME; derived slot and enum entries may collide",
					cl.Accession, f.Label)
			}

			if s.Slots.Has(f.Name) {
				diags.AddWarning("duplicate-slot",
					fmt.Sprintf("field %q appears more than once; the later definition wins", f.Name),
					cl.Accession, f.Name)
			}

			slot := &SlotDef{
				Name:        f.Name,
				Title:       f.Label,
				Description: f.Description,
				Range:       DefaultRange,
				Required:    f.Mandatory,
				Pattern:     f.Pattern,
			}

			if f.Kind == checklist.KindChoice {
				if len(f.Choices) == 0 {
					diags.AddInfo("choice-without-values",
						"choice field lists no usable values; treated as plain text",
						cl.Accession, f.Name)
				} else {
					slot.Range = buildEnum(s, f, enumSource, cl.Accession, &diags)
				}
			}

			if len(f.Units) > 0 {
				slot.Comment = unitsLeadIn + strings.Join(f.Units, ", ")
			}

			s.Slots.Set(f.Name, slot)
			main.Slots = append(main.Slots, f.Name)
			main.SlotUsage.Set(f.Name, SlotUsage{Rank: rank, SlotGroup: g.Name})
		}
	}

	s.Classes.Set(interfaceClass, &ClassDef{
		Name:        interfaceClass,
		Description: interfaceDescription,
		FromSchema:  s.ID,
	})
	s.Classes.Set(cl.Accession, main)

	return s, diags
}

// buildEnum registers the enum for a choice field and returns its name.
func buildEnum(s *Schema, f checklist.Field, enumSource map[string]string, accession string, diags *diagnostic.Diagnostics) string {
	name := EnumName(f.Name)

	if prev, ok := enumSource[name]; ok && prev != f.Name {
		diags.AddWarning("enum-collision",
			fmt.Sprintf("fields %q and %q derive the same enum name %q; the later definition wins", prev, f.Name, name),
			accession, f.Name)
	}
	enumSource[name] = f.Name

	enum := &EnumDef{
		Name:   name,
		Values: ordered.New[PermissibleValue](),
	}
	for _, v := range f.Choices {
		enum.Values.Set(v, PermissibleValue{Text: v})
	}

	s.Enums.Set(name, enum)

	return name
}
