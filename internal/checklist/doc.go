// Package checklist provides parsing of ENA sample checklist XML documents
// into a flat typed record.
//
// A checklist document describes the metadata fields a sample submission
// must or may carry. The expected shape is fixed:
//
//	<CHECKLIST_SET>
//	  <CHECKLIST accession="ERC000012" checklistType="Sample">
//	    <DESCRIPTOR>
//	      <LABEL>...</LABEL>
//	      <NAME>...</NAME>
//	      <DESCRIPTION>...</DESCRIPTION>
//	      <AUTHORITY>...</AUTHORITY>
//	      <FIELD_GROUP restrictionType="...">
//	        <NAME>...</NAME>
//	        <FIELD>
//	          <LABEL>...</LABEL>
//	          <NAME>...</NAME>
//	          <DESCRIPTION>...</DESCRIPTION>
//	          <FIELD_TYPE>
//	            <TEXT_FIELD><REGEX_VALUE>...</REGEX_VALUE></TEXT_FIELD>
//	          </FIELD_TYPE>
//	          <MANDATORY>mandatory</MANDATORY>
//	          <MULTIPLICITY>single</MULTIPLICITY>
//	          <UNITS><UNIT>m</UNIT></UNITS>
//	        </FIELD>
//	      </FIELD_GROUP>
//	    </DESCRIPTOR>
//	  </CHECKLIST>
//	</CHECKLIST_SET>
//
// The root may also be a bare CHECKLIST element. Only the first CHECKLIST
// of a set is consumed. Group order and field order are preserved exactly
// as they appear in the document.
//
// Parsing is lenient about field typing: a FIELD whose FIELD_TYPE is
// missing or carries an unrecognized variant is treated as plain text.
// Structural problems (no CHECKLIST, no DESCRIPTOR, blank accession) are
// reported as ErrMalformed.
package checklist
