package tmb

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZStandardReader adapts a zstd.Decoder to io.ReadCloser; the decoder's own
// Close has no error result.
type ZStandardReader struct {
	*zstd.Decoder
}

// NewZStandardReader decompresses a zstd stream. Concurrency is pinned to one
// since the stream is consumed sequentially.
func NewZStandardReader(r io.Reader) (*ZStandardReader, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &ZStandardReader{Decoder: d}, nil
}

func (z *ZStandardReader) Close() error {
	z.Decoder.Close()
	return nil
}
