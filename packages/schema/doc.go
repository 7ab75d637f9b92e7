// Package schema validates response bodies against JSON Schema documents.
package schema
