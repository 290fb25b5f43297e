// Package convert drives checklist files through the parse, build and
// serialize stages and writes the resulting schema files.
//
// The driver converts explicit file lists or whole directories; directory
// scans pick up *.xml entries case-insensitively, in name order. One
// file's failure never stops a batch. A Watcher can re-run single-file
// conversions as documents change on disk.
package convert
