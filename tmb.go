package tmb

import (
	"context"
	"io"

	"github.com/carbocation/pfx"
)

// PassMarker is the filter-status token identifying a variant that passed all
// quality filters.
const PassMarker = "PASS"

// CommentPrefix begins VCF meta-information and header lines.
const CommentPrefix = "#"

// FilterColumn is the 0-indexed position of the FILTER column in a VCF record.
const FilterColumn = 6

// ExomeSizeMb is the assumed span of the sequenced exome, in megabases.
const ExomeSizeMb = 38

// DefaultPath is read when no input is named.
const DefaultPath = "tumor.vcf.gz"

// Burden holds the outcome of a single counting pass.
type Burden struct {
	Variants int
}

// PerMegabase is the tumor mutational burden: variants per megabase of exome.
func (b Burden) PerMegabase() float64 {
	return float64(b.Variants) / ExomeSizeMb
}

// Count scans decompressed VCF text and counts the records whose FILTER
// column contains PassMarker. A record with too few columns aborts the pass.
func Count(r io.Reader) (Burden, error) {
	var b Burden

	rr := NewRecordReader(r)
	for {
		rec := rr.Read()
		if rec == nil {
			break
		}
		if rec.Passes() {
			b.Variants++
		}
	}

	if err := rr.Error(); err != nil {
		return Burden{}, pfx.Err(err)
	}

	return b, nil
}

// CountFile opens the compressed VCF at path and counts it. The file is
// closed before returning, whether or not the pass succeeded.
func CountFile(ctx context.Context, path string) (Burden, error) {
	v, err := Open(ctx, path)
	if err != nil {
		return Burden{}, pfx.Err(err)
	}
	defer v.Close()

	b, err := Count(v)
	if err != nil {
		return Burden{}, pfx.Err(err)
	}

	return b, nil
}
