// Package linkml provides the schema model derived from a parsed checklist
// and its deterministic YAML rendering.
//
// Derivation pipeline:
//  1. Walk checklist groups and their fields in document order
//  2. Produce one slot per field and one enum per choice field with values
//  3. Assemble the class carrying slot order, ranks and group titles
//  4. Render the model as an explicit YAML node tree with stable key order
//
// Every mapping in the model preserves insertion order; nothing is ever
// alphabetized. Rendering the same model twice yields identical bytes,
// which keeps generated schema files diffable.
package linkml
