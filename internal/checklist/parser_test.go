package checklist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/checklist"
)

const waterChecklistXML = `<?xml version="1.0" encoding="UTF-8"?>
<CHECKLIST_SET>
  <CHECKLIST accession="ERC000024" checklistType="Sample">
    <DESCRIPTOR>
      <LABEL>GSC MIxS water</LABEL>
      <NAME>GSC MIxS water</NAME>
      <DESCRIPTION>Minimum information about a water sample.</DESCRIPTION>
      <AUTHORITY>GSC</AUTHORITY>
      <FIELD_GROUP restrictionType="Any number or none of the fields">
        <NAME>Environment</NAME>
        <FIELD>
          <LABEL>geographic location (depth)</LABEL>
          <NAME>depth</NAME>
          <DESCRIPTION>Depth is defined as the vertical distance below surface.</DESCRIPTION>
          <FIELD_TYPE>
            <TEXT_FIELD>
              <REGEX_VALUE>(0|((0\.)|([1-9][0-9]*\.?))[0-9]*)([Ee][+-]?[0-9]+)?</REGEX_VALUE>
            </TEXT_FIELD>
          </FIELD_TYPE>
          <MANDATORY>mandatory</MANDATORY>
          <MULTIPLICITY>single</MULTIPLICITY>
          <UNITS>
            <UNIT>m</UNIT>
          </UNITS>
        </FIELD>
        <FIELD>
          <LABEL>trophic level</LABEL>
          <NAME>trophic_level</NAME>
          <DESCRIPTION>Feeding position in food chain.</DESCRIPTION>
          <FIELD_TYPE>
            <TEXT_CHOICE_FIELD>
              <TEXT_VALUE><VALUE>autotroph</VALUE></TEXT_VALUE>
              <TEXT_VALUE><VALUE>heterotroph</VALUE></TEXT_VALUE>
              <TEXT_VALUE><VALUE>mixotroph</VALUE></TEXT_VALUE>
            </TEXT_CHOICE_FIELD>
          </FIELD_TYPE>
          <MANDATORY>optional</MANDATORY>
          <MULTIPLICITY>single</MULTIPLICITY>
        </FIELD>
      </FIELD_GROUP>
      <FIELD_GROUP restrictionType="All field mandatory">
        <NAME>Sample collection</NAME>
        <FIELD>
          <LABEL>sample storage temperature</LABEL>
          <NAME>samp_store_temp</NAME>
          <DESCRIPTION>Temperature at which the sample was stored.</DESCRIPTION>
          <MANDATORY>recommended</MANDATORY>
          <MULTIPLICITY>single</MULTIPLICITY>
          <UNITS>
            <UNIT>°C</UNIT>
          </UNITS>
        </FIELD>
      </FIELD_GROUP>
    </DESCRIPTOR>
  </CHECKLIST>
</CHECKLIST_SET>`

func TestParseFullChecklist(t *testing.T) {
	t.Parallel()

	cl, err := checklist.Parse(strings.NewReader(waterChecklistXML))
	require.NoError(t, err)

	assert.Equal(t, "ERC000024", cl.Accession)
	assert.Equal(t, "Sample", cl.Type)
	assert.Equal(t, "GSC MIxS water", cl.Label)
	assert.Equal(t, "GSC MIxS water", cl.Name)
	assert.Equal(t, "Minimum information about a water sample.", cl.Description)
	assert.Equal(t, "GSC", cl.Authority)

	require.Len(t, cl.Groups, 2)
	assert.Equal(t, "Environment", cl.Groups[0].Name)
	assert.Equal(t, "Any number or none of the fields", cl.Groups[0].Restriction)
	require.Len(t, cl.Groups[0].Fields, 2)
	require.Len(t, cl.Groups[1].Fields, 1)
	assert.Equal(t, 3, cl.FieldCount())

	depth := cl.Groups[0].Fields[0]
	assert.Equal(t, "depth", depth.Name)
	assert.Equal(t, "geographic location (depth)", depth.Label)
	assert.Equal(t, checklist.KindPatternText, depth.Kind)
	assert.Equal(t, `(0|((0\.)|([1-9][0-9]*\.?))[0-9]*)([Ee][+-]?[0-9]+)?`, depth.Pattern)
	assert.True(t, depth.Mandatory)
	assert.Equal(t, checklist.RequirementMandatory, depth.Requirement)
	assert.Equal(t, "single", depth.Multiplicity)
	assert.Equal(t, []string{"m"}, depth.Units)

	trophic := cl.Groups[0].Fields[1]
	assert.Equal(t, checklist.KindChoice, trophic.Kind)
	assert.Equal(t, []string{"autotroph", "heterotroph", "mixotroph"}, trophic.Choices)
	assert.False(t, trophic.Mandatory)
	assert.Empty(t, trophic.Units)

	temp := cl.Groups[1].Fields[0]
	assert.Equal(t, checklist.KindPlainText, temp.Kind)
	assert.Equal(t, checklist.RequirementRecommended, temp.Requirement)
	assert.Equal(t, []string{"°C"}, temp.Units)
}

func TestParseBareChecklistRoot(t *testing.T) {
	t.Parallel()

	const doc = `<CHECKLIST accession="ERC000011">
  <DESCRIPTOR>
    <LABEL>ENA default sample checklist</LABEL>
  </DESCRIPTOR>
</CHECKLIST>`

	cl, err := checklist.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "ERC000011", cl.Accession)
	assert.Equal(t, "ENA default sample checklist", cl.Label)
	assert.Empty(t, cl.Groups)
}

func TestParseFirstChecklistOfSet(t *testing.T) {
	t.Parallel()

	const doc = `<CHECKLIST_SET>
  <CHECKLIST accession="ERC000001"><DESCRIPTOR><LABEL>first</LABEL></DESCRIPTOR></CHECKLIST>
  <CHECKLIST accession="ERC000002"><DESCRIPTOR><LABEL>second</LABEL></DESCRIPTOR></CHECKLIST>
</CHECKLIST_SET>`

	cl, err := checklist.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "ERC000001", cl.Accession)
	assert.Equal(t, "first", cl.Label)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		malformed bool
	}{
		{
			name:      "empty set",
			doc:       `<CHECKLIST_SET></CHECKLIST_SET>`,
			malformed: true,
		},
		{
			name:      "missing descriptor",
			doc:       `<CHECKLIST_SET><CHECKLIST accession="ERC000001"></CHECKLIST></CHECKLIST_SET>`,
			malformed: true,
		},
		{
			name:      "blank accession",
			doc:       `<CHECKLIST accession="  "><DESCRIPTOR><LABEL>x</LABEL></DESCRIPTOR></CHECKLIST>`,
			malformed: true,
		},
		{
			name:      "no accession attribute",
			doc:       `<CHECKLIST><DESCRIPTOR><LABEL>x</LABEL></DESCRIPTOR></CHECKLIST>`,
			malformed: true,
		},
		{
			name:      "unexpected root",
			doc:       `<SAMPLE_SET><SAMPLE/></SAMPLE_SET>`,
			malformed: true,
		},
		{
			name:      "not XML at all",
			doc:       `accession: ERC000001`,
			malformed: false,
		},
		{
			name:      "truncated document",
			doc:       `<CHECKLIST_SET><CHECKLIST accession="ERC000001">`,
			malformed: false,
		},
		{
			name:      "empty input",
			doc:       ``,
			malformed: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cl, err := checklist.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, cl)

			if tt.malformed {
				assert.ErrorIs(t, err, checklist.ErrMalformed)
			} else {
				assert.NotErrorIs(t, err, checklist.ErrMalformed)
			}
		})
	}
}

// wrapField embeds one FIELD body in a minimal valid document.
func wrapField(inner string) string {
	return `<CHECKLIST_SET><CHECKLIST accession="ERC000001"><DESCRIPTOR><LABEL>t</LABEL>` +
		`<FIELD_GROUP><NAME>g</NAME><FIELD>` + inner + `</FIELD></FIELD_GROUP>` +
		`</DESCRIPTOR></CHECKLIST></CHECKLIST_SET>`
}

func TestParseFieldVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   string
		kind    checklist.FieldKind
		pattern string
		choices []string
	}{
		{
			name:  "no field type",
			field: `<NAME>f</NAME>`,
			kind:  checklist.KindPlainText,
		},
		{
			name:  "text field without regex",
			field: `<NAME>f</NAME><FIELD_TYPE><TEXT_FIELD/></FIELD_TYPE>`,
			kind:  checklist.KindPlainText,
		},
		{
			name:  "text field with blank regex",
			field: `<NAME>f</NAME><FIELD_TYPE><TEXT_FIELD><REGEX_VALUE>  </REGEX_VALUE></TEXT_FIELD></FIELD_TYPE>`,
			kind:  checklist.KindPlainText,
		},
		{
			name:    "text field with regex",
			field:   `<NAME>f</NAME><FIELD_TYPE><TEXT_FIELD><REGEX_VALUE>[0-9]+</REGEX_VALUE></TEXT_FIELD></FIELD_TYPE>`,
			kind:    checklist.KindPatternText,
			pattern: `[0-9]+`,
		},
		{
			name: "choice field",
			field: `<NAME>f</NAME><FIELD_TYPE><TEXT_CHOICE_FIELD>` +
				`<TEXT_VALUE><VALUE>a</VALUE></TEXT_VALUE>` +
				`<TEXT_VALUE><VALUE>  </VALUE></TEXT_VALUE>` +
				`<TEXT_VALUE><VALUE>b</VALUE></TEXT_VALUE>` +
				`<TEXT_VALUE><VALUE>a</VALUE></TEXT_VALUE>` +
				`</TEXT_CHOICE_FIELD></FIELD_TYPE>`,
			kind:    checklist.KindChoice,
			choices: []string{"a", "b", "a"},
		},
		{
			name: "choice field with no usable values",
			field: `<NAME>f</NAME><FIELD_TYPE><TEXT_CHOICE_FIELD>` +
				`<TEXT_VALUE><VALUE></VALUE></TEXT_VALUE>` +
				`</TEXT_CHOICE_FIELD></FIELD_TYPE>`,
			kind: checklist.KindChoice,
		},
		{
			name: "choice wins over text",
			field: `<NAME>f</NAME><FIELD_TYPE>` +
				`<TEXT_FIELD><REGEX_VALUE>[a-z]</REGEX_VALUE></TEXT_FIELD>` +
				`<TEXT_CHOICE_FIELD><TEXT_VALUE><VALUE>a</VALUE></TEXT_VALUE></TEXT_CHOICE_FIELD>` +
				`</FIELD_TYPE>`,
			kind:    checklist.KindChoice,
			choices: []string{"a"},
		},
		{
			name:  "unknown variant",
			field: `<NAME>f</NAME><FIELD_TYPE><DATE_FIELD/></FIELD_TYPE>`,
			kind:  checklist.KindPlainText,
		},
		{
			name:  "taxon variant",
			field: `<NAME>f</NAME><FIELD_TYPE><TAXON_FIELD><RESTRICTION>ncbi</RESTRICTION></TAXON_FIELD></FIELD_TYPE>`,
			kind:  checklist.KindPlainText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cl, err := checklist.Parse(strings.NewReader(wrapField(tt.field)))
			require.NoError(t, err)
			require.Len(t, cl.Groups, 1)
			require.Len(t, cl.Groups[0].Fields, 1)

			f := cl.Groups[0].Fields[0]
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.pattern, f.Pattern)
			assert.Equal(t, tt.choices, f.Choices)
		})
	}
}

func TestParseRequirementToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token     string
		mandatory bool
	}{
		{"mandatory", true},
		{" mandatory ", true},
		{"Mandatory", false},
		{"MANDATORY", false},
		{"recommended", false},
		{"optional", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("token "+tt.token, func(t *testing.T) {
			t.Parallel()

			doc := wrapField(`<NAME>f</NAME><MANDATORY>` + tt.token + `</MANDATORY>`)
			cl, err := checklist.Parse(strings.NewReader(doc))
			require.NoError(t, err)

			f := cl.Groups[0].Fields[0]
			assert.Equal(t, tt.mandatory, f.Mandatory)
			assert.Equal(t, strings.TrimSpace(tt.token), f.Requirement)
		})
	}
}

func TestParseUnits(t *testing.T) {
	t.Parallel()

	doc := wrapField(`<NAME>f</NAME><UNITS>` +
		`<UNIT>µm</UNIT><UNIT> </UNIT><UNIT>mm</UNIT><UNIT>µm</UNIT>` +
		`</UNITS>`)

	cl, err := checklist.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	f := cl.Groups[0].Fields[0]
	assert.Equal(t, []string{"µm", "mm", "µm"}, f.Units)
}

func TestParseEmptyGroup(t *testing.T) {
	t.Parallel()

	const doc = `<CHECKLIST accession="ERC000001"><DESCRIPTOR><LABEL>t</LABEL>` +
		`<FIELD_GROUP><NAME>empty</NAME></FIELD_GROUP></DESCRIPTOR></CHECKLIST>`

	cl, err := checklist.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, cl.Groups, 1)
	assert.Equal(t, "empty", cl.Groups[0].Name)
	assert.Empty(t, cl.Groups[0].Fields)
	assert.Equal(t, 0, cl.FieldCount())
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ERC000024.xml")
	require.NoError(t, os.WriteFile(path, []byte(waterChecklistXML), 0o644))

	cl, err := checklist.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ERC000024", cl.Accession)

	_, err = checklist.ParseFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}

func TestFieldKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PlainText", checklist.KindPlainText.String())
	assert.Equal(t, "PatternText", checklist.KindPatternText.String())
	assert.Equal(t, "Choice", checklist.KindChoice.String())
	assert.Equal(t, "FieldKind(9)", checklist.FieldKind(9).String())
}
