package tmb

import (
	"fmt"
	"strings"
)

// Record is a single VCF data line split into its tab-delimited columns.
type Record struct {
	LineNumber int
	Fields     []string
}

// Filter returns the FILTER column. Records produced by a RecordReader always
// have one.
func (r *Record) Filter() string {
	return r.Fields[FilterColumn]
}

// Passes reports whether the FILTER column contains PassMarker anywhere,
// including inside a longer token such as "PASS;clustered".
func (r *Record) Passes() bool {
	return strings.Contains(r.Filter(), PassMarker)
}

// MalformedRecordError is returned for a data line that has no FILTER column.
type MalformedRecordError struct {
	LineNumber int
	Fields     int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d has %d tab-separated fields; at least %d are required to read the FILTER column", e.LineNumber, e.Fields, FilterColumn+1)
}
