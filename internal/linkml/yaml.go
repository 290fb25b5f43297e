package linkml

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/ordered"
)

// The document is assembled from explicit yaml.Node values: mapping nodes
// keep their keys in insertion order, which encoding through Go maps would
// destroy.

// Marshal renders the schema as deterministic YAML text.
func Marshal(s *Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes the schema as YAML to w.
func Encode(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(schemaNode(s)); err != nil {
		return fmt.Errorf("failed to encode schema YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode schema YAML: %w", err)
	}

	return nil
}

func schemaNode(s *Schema) *yaml.Node {
	root := mappingNode()
	addPair(root, "id", scalarNode(s.ID))
	addPair(root, "name", scalarNode(s.Name))
	addPair(root, "title", scalarNode(s.Title))
	addPair(root, "description", scalarNode(s.Description))
	addPair(root, "version", scalarNode(s.Version))
	addPair(root, "imports", stringSeqNode(s.Imports))
	addPair(root, "prefixes", prefixesNode(s.Prefixes))
	addPair(root, "default_range", scalarNode(s.DefaultRange))
	addPair(root, "classes", classesNode(s.Classes))
	addPair(root, "slots", slotsNode(s.Slots))

	// The enums mapping is omitted entirely when no enum exists.
	if s.Enums.Len() > 0 {
		addPair(root, "enums", enumsNode(s.Enums))
	}

	return root
}

func prefixesNode(prefixes *ordered.Map[string]) *yaml.Node {
	n := mappingNode()
	prefixes.Each(func(prefix, reference string) {
		addPair(n, prefix, scalarNode(reference))
	})

	return n
}

func classesNode(classes *ordered.Map[*ClassDef]) *yaml.Node {
	n := mappingNode()
	classes.Each(func(name string, c *ClassDef) {
		addPair(n, name, classNode(c))
	})

	return n
}

func classNode(c *ClassDef) *yaml.Node {
	n := mappingNode()
	addPair(n, "name", scalarNode(c.Name))

	// A root interface class uses the short shape.
	if c.IsA == "" {
		addPair(n, "description", scalarNode(c.Description))
		addPair(n, "from_schema", scalarNode(c.FromSchema))

		return n
	}

	addPair(n, "title", scalarNode(c.Title))
	addPair(n, "description", scalarNode(c.Description))
	addPair(n, "is_a", scalarNode(c.IsA))
	addPair(n, "slots", stringSeqNode(c.Slots))
	addPair(n, "slot_usage", slotUsageNode(c.SlotUsage))

	return n
}

func slotUsageNode(usage *ordered.Map[SlotUsage]) *yaml.Node {
	n := mappingNode()
	usage.Each(func(slot string, u SlotUsage) {
		entry := mappingNode()
		addPair(entry, "rank", intNode(u.Rank))
		addPair(entry, "slot_group", scalarNode(u.SlotGroup))
		addPair(n, slot, entry)
	})

	return n
}

func slotsNode(slots *ordered.Map[*SlotDef]) *yaml.Node {
	n := mappingNode()
	slots.Each(func(name string, s *SlotDef) {
		addPair(n, name, slotNode(s))
	})

	return n
}

func slotNode(s *SlotDef) *yaml.Node {
	n := mappingNode()
	addPair(n, "name", scalarNode(s.Name))
	addPair(n, "title", scalarNode(s.Title))
	addPair(n, "description", scalarNode(s.Description))
	addPair(n, "range", scalarNode(s.Range))
	addPair(n, "required", boolNode(s.Required))

	if s.Pattern != "" {
		addPair(n, "pattern", scalarNode(s.Pattern))
	}

	if s.Comment != "" {
		addPair(n, "comments", stringSeqNode([]string{s.Comment}))
	}

	return n
}

func enumsNode(enums *ordered.Map[*EnumDef]) *yaml.Node {
	n := mappingNode()
	enums.Each(func(name string, e *EnumDef) {
		addPair(n, name, enumNode(e))
	})

	return n
}

func enumNode(e *EnumDef) *yaml.Node {
	values := mappingNode()
	e.Values.Each(func(text string, v PermissibleValue) {
		entry := mappingNode()
		addPair(entry, "text", scalarNode(v.Text))
		addPair(values, text, entry)
	})

	n := mappingNode()
	addPair(n, "name", scalarNode(e.Name))
	addPair(n, "permissible_values", values)

	return n
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, keyNode(key), value)
}

func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// scalarNode renders a string value. Multiline text uses literal block
// style; everything else keeps the encoder's default style.
func scalarNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		n.Style = yaml.LiteralStyle
	}

	return n
}

// boolNode renders a plain lowercase boolean.
func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func intNode(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func stringSeqNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, it := range items {
		n.Content = append(n.Content, scalarNode(it))
	}

	return n
}
