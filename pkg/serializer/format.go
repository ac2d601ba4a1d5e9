// Package serializer writes report documents to files or stdout in CSV,
// JSON, or YAML form. CSV is the default and reproduces the exact row
// layout each document defines; JSON and YAML render the document
// structure for programmatic consumption.
package serializer

import (
	"path/filepath"
	"strings"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatCSV renders the document's CSV layout. The document must
	// implement CSVMarshaler.
	FormatCSV Format = "csv"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML}

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	for _, known := range Formats {
		if f == known {
			return false
		}
	}
	return true
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// FormatFromPath infers the format from a file extension, defaulting to
// CSV when the extension is missing or unrecognized.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}
