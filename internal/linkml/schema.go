package linkml

import (
	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/ordered"
)

// Schema is the root of the derived schema document.
type Schema struct {
	// ID is the schema identifier URI (base URI plus accession).
	ID          string
	Name        string
	Title       string
	Description string
	// Version is the schema version stamp, independent of the source
	// checklist version.
	Version string
	// Imports lists schema imports in emission order.
	Imports []string
	// Prefixes maps namespace prefixes to their expansions, in emission
	// order.
	Prefixes *ordered.Map[string]
	// DefaultRange is the range assumed by slots that do not declare one.
	DefaultRange string
	Classes      *ordered.Map[*ClassDef]
	Slots        *ordered.Map[*SlotDef]
	Enums        *ordered.Map[*EnumDef]
}

// RequiredCount returns the number of required slots.
func (s *Schema) RequiredCount() int {
	n := 0
	s.Slots.Each(func(_ string, slot *SlotDef) {
		if slot.Required {
			n++
		}
	})

	return n
}

// SlotDef describes one data-entry column.
type SlotDef struct {
	Name        string
	Title       string
	Description string
	// Range is the value type: an enum name for choice fields, otherwise
	// the default range.
	Range string
	// Required is carried for every slot, true and false alike.
	Required bool
	// Pattern is an opaque regular expression constraint; empty means
	// unconstrained.
	Pattern string
	// Comment carries the allowed-units annotation; empty means absent.
	// It serializes as a one-element comments list.
	Comment string
}

// EnumDef describes one picklist.
type EnumDef struct {
	Name string
	// Values maps each permissible value to its definition, in document
	// order.
	Values *ordered.Map[PermissibleValue]
}

// PermissibleValue is a single picklist entry.
type PermissibleValue struct {
	Text string
}

// ClassDef describes a schema class. A class without IsA is a root
// interface and serializes in its short shape (name, description,
// from_schema); a derived class serializes its title, slot list and slot
// usage.
type ClassDef struct {
	Name        string
	Title       string
	Description string
	IsA         string
	FromSchema  string
	// Slots lists the slot names owned by the class, in rank order.
	Slots []string
	// SlotUsage carries per-slot placement overrides keyed by slot name.
	SlotUsage *ordered.Map[SlotUsage]
}

// SlotUsage places one slot in the data-entry layout.
type SlotUsage struct {
	// Rank is the 1-based column position.
	Rank int
	// SlotGroup is the title of the section the slot belongs to.
	SlotGroup string
}
