// Package main provides the CLI entrypoint for ena2linkml.
//
// ena2linkml converts ENA sample checklist definitions (XML) into LinkML
// schema files (YAML) for use with DataHarmonizer:
//   - Parses the fixed checklist document shape into a typed record
//   - Derives slots, enums and a class with ordered display metadata
//   - Emits deterministic, insertion-ordered YAML, one file per checklist
package main

func main() {
	Execute()
}
