package Transformer

import (
	"strconv"
	"strings"
)

// AttributeRecord maps lower-cased field names to raw text values.
// Lookups are case-insensitive and unknown fields are simply absent,
// never an error. Values keep their text form; numeric interpretation
// happens at the accessor.
type AttributeRecord map[string]string

// NewAttributeRecord pairs DBF field names with one row of values.
// DBF rows pad with spaces and NULs, so both sides are stripped.
func NewAttributeRecord(names []string, values []string) AttributeRecord {
	rec := make(AttributeRecord, len(names))
	for i, name := range names {
		if i >= len(values) {
			break
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		rec[key] = strings.Trim(values[i], "\x00 ")
	}
	return rec
}

// Get returns the value for a field name, case-insensitively.
func (r AttributeRecord) Get(name string) (string, bool) {
	v, ok := r[strings.ToLower(name)]
	return v, ok
}

// Int parses the named field as a decimal integer.
func (r AttributeRecord) Int(name string) (int, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
