// Code generated by "stringer -type=FieldKind -trimprefix=Kind -output=fieldkind_string.go"; DO NOT EDIT.

package checklist

import "strconv"

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[KindPlainText-0]
	_ = x[KindPatternText-1]
	_ = x[KindChoice-2]
}

const _FieldKind_name = "PlainTextPatternTextChoice"

var _FieldKind_index = [...]uint8{0, 9, 20, 26}

func (i FieldKind) String() string {
	if i < 0 || i >= FieldKind(len(_FieldKind_index)-1) {
		return "FieldKind(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _FieldKind_name[_FieldKind_index[i]:_FieldKind_index[i+1]]
}
