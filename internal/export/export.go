// Package export projects generated records into CSV, JSON and terminal
// tables, and decodes CSV and JSON exports back into column mappings.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/record"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects an output projection.
type Format string

const (
	CSV   Format = "csv"
	JSON  Format = "json"
	Table Format = "table"
)

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, Table:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == Table {
		return "txt"
	}
	return string(f)
}

// Write renders records to w in format f.
func Write(w io.Writer, f Format, records []record.Record, cols []string) error {
	switch f {
	case CSV:
		return WriteCSV(w, records, cols)
	case JSON:
		return WriteJSON(w, records)
	case Table:
		return WriteTable(w, records, cols)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteCSV writes a header row followed by one row per record. cols is
// the header to use when records is empty; otherwise the first record's
// columns win.
func WriteCSV(w io.Writer, records []record.Record, cols []string) error {
	cw := csv.NewWriter(w)
	if len(records) > 0 {
		cols = records[0].Columns()
	}
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSON writes records as an indented JSON array. Non-ASCII and HTML
// characters are written literally.
func WriteJSON(w io.Writer, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ReadCSV decodes a CSV export into one mapping per data row.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("read csv: missing header")
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			m[col] = row[i]
		}
		out = append(out, m)
	}
	return out, nil
}

// ReadJSON decodes a JSON export into one mapping per object. Numbers are
// kept in their literal decimal form.
func ReadJSON(r io.Reader) ([]map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var objs []map[string]any
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	out := make([]map[string]string, 0, len(objs))
	for i, o := range objs {
		m := make(map[string]string, len(o))
		for k, v := range o {
			switch v := v.(type) {
			case string:
				m[k] = v
			case json.Number:
				m[k] = v.String()
			default:
				return nil, fmt.Errorf("read json: object %d: key %q has unsupported type %T", i, k, v)
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// FileName returns the export name for a batch produced at t, e.g.
// users_20261017_150405.csv.
func FileName(f Format, t time.Time) string {
	return "users_" + t.Format("20060102_150405") + "." + f.Ext()
}

// Saved describes a written export file.
type Saved struct {
	Name  string
	Bytes int
}

// Size returns the file size in human form, e.g. "4.2 kB".
func (s Saved) Size() string {
	return humanize.Bytes(uint64(s.Bytes))
}

func (s Saved) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Size())
}

// Save renders records in format f and writes them to fsys under the
// name FileName(f, t).
func Save(fsys zfilesystem.ReadWriteFileFS, f Format, records []record.Record, cols []string, t time.Time) (Saved, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, records, cols); err != nil {
		return Saved{}, err
	}

	name := FileName(f, t)
	if err := fsys.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return Saved{}, fmt.Errorf("save %s: %w", name, err)
	}
	return Saved{Name: name, Bytes: buf.Len()}, nil
}
