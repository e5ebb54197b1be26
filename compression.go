package tmb

import "bytes"

// Compression identifies the codec wrapping a VCF stream
type Compression uint32

const (
	CompressionUnknown Compression = iota
	CompressionGzip
	CompressionZStandard
)

var (
	magicGzip       = []byte{0x1f, 0x8b}
	magicZStandard  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicPeekLength = len(magicZStandard)
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZStandard:
		return "zstd"

	default:
		return "unknown"
	}
}

// DetectCompression inspects the leading bytes of a stream. BGZF files are
// gzip members and are reported as CompressionGzip.
func DetectCompression(prefix []byte) Compression {
	switch {
	case bytes.HasPrefix(prefix, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(prefix, magicZStandard):
		return CompressionZStandard
	}

	return CompressionUnknown
}
