package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds all findings collected while building one schema.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Accession identifies which checklist this relates to (if any).
	Accession string
	// Field identifies which checklist field this relates to (if any).
	Field string
}

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(code, message, accession, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Accession: accession,
		Field:     field,
	})
}

// AddInfo adds an informational finding.
func (d *Diagnostics) AddInfo(code, message, accession, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		Accession: accession,
		Field:     field,
	})
}

// HasWarnings returns true if there are any warning findings.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Empty returns true if nothing was recorded.
func (d *Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// String returns a formatted finding string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Accession != "" {
		prefix = append(prefix, "["+d.Accession+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
