// Package record generates batches of synthetic QA records.
// Each batch draws from its own seeded source; nothing is shared between calls.
package record

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Record is one generated row: a sequential ID plus one value per enabled
// field. It has no mutating methods.
type Record struct {
	id     int
	set    FieldSet
	values [fieldCount]string
}

// ID returns the 1-based sequence number of the record.
func (r Record) ID() int {
	return r.id
}

// FieldSet returns the fields present in the record.
func (r Record) FieldSet() FieldSet {
	return r.set
}

// Get returns the value of f and whether the record carries it.
func (r Record) Get(f Field) (string, bool) {
	if !r.set.Has(f) {
		return "", false
	}
	return r.values[f], true
}

// Columns returns the record's keys in order, ID first.
func (r Record) Columns() []string {
	return r.set.Columns()
}

// Values returns the record's values aligned with Columns.
func (r Record) Values() []string {
	out := make([]string, 0, r.set.Len()+1)
	out = append(out, strconv.Itoa(r.id))
	for _, f := range r.set.Fields() {
		out = append(out, r.values[f])
	}
	return out
}

// Map returns the record as a column→value mapping with the ID rendered
// in decimal.
func (r Record) Map() map[string]string {
	m := make(map[string]string, r.set.Len()+1)
	m[IDColumn] = strconv.Itoa(r.id)
	for _, f := range r.set.Fields() {
		m[f.String()] = r.values[f]
	}
	return m
}

// MarshalJSON encodes the record as an object whose keys follow the
// declared field order. ID is a number; other values are strings.
// Non-ASCII and HTML characters are written literally.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"` + IDColumn + `":`)
	buf.WriteString(strconv.Itoa(r.id))

	for _, f := range r.set.Fields() {
		buf.WriteByte(',')
		if err := writeJSONString(&buf, f.String()); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[f]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
