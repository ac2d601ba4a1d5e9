package serializer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CSVMarshaler is implemented by documents that define their own CSV row
// layout, including any comment and header rows.
type CSVMarshaler interface {
	MarshalCSV() [][]string
}

// Serializer writes a document to its destination.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
	Close() error
}

// Writer serializes documents to an io.Writer in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter returns a Writer that serializes to w.
func NewWriter(format Format, w io.Writer) *Writer {
	return &Writer{format: format, out: w}
}

// NewStdoutWriter returns a Writer that serializes to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriter returns a Writer that serializes to the given file path,
// creating parent directories as needed. Close flushes and closes the
// file.
func NewFileWriter(format Format, path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{format: format, out: f, closer: f}, nil
}

// Serialize writes data in the Writer's format. CSV output requires data
// to implement CSVMarshaler.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatCSV:
		m, ok := data.(CSVMarshaler)
		if !ok {
			return fmt.Errorf("csv format requires a CSVMarshaler, got %T", data)
		}
		cw := csv.NewWriter(w.out)
		if err := cw.WriteAll(m.MarshalCSV()); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil

	case FormatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		if _, err := w.out.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
		return nil

	case FormatYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		if _, err := w.out.Write(b); err != nil {
			return fmt.Errorf("failed to write yaml: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format: %q", w.format)
	}
}

// Close closes the underlying destination when it owns one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
