// Package importer loads headers and body parameters from files.
//
// Files may be UTF-8 (with or without a byte-order mark), UTF-16 or UTF-32
// with a byte-order mark; everything is decoded to UTF-8 before parsing.
//
// Header files hold one name=value pair per line. Blank lines and lines
// starting with # are ignored and malformed lines are reported as warnings.
//
// Body files hold a single JSON object, or a YAML mapping for .yaml and
// .yml files. Each top-level field becomes one body parameter.
package importer
