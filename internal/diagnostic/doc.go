// Package diagnostic provides structured, non-fatal findings raised while
// deriving a schema from a parsed checklist.
//
// Key capabilities:
//   - Duplicate slot and enum-name collision warnings
//   - Warnings for fields the source document left unnamed
//   - Notes on defensive fallbacks taken during derivation
package diagnostic
