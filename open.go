package tmb

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// StdinPath names standard input as the VCF source.
const StdinPath = "-"

// VCF is an open, decompressing view of a compressed VCF file. It must be
// closed by the caller.
type VCF struct {
	Path        string
	Compression Compression

	reader  io.Reader
	closers []io.Closer
}

// Open resolves path to a local file, standard input ("-") or a Google Cloud
// Storage object ("gs://bucket/object") and wraps it in the decompressor
// indicated by its leading bytes. Input that is neither gzip nor zstd
// compressed is rejected. An empty input is treated as an empty stream.
func Open(ctx context.Context, path string) (*VCF, error) {
	v := &VCF{
		Path: path,
	}

	src, err := openSource(ctx, path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	v.closers = append(v.closers, src)

	if err := v.attachDecompressor(src); err != nil {
		v.Close()
		return nil, pfx.Err(err)
	}

	return v, nil
}

func (v *VCF) attachDecompressor(src io.Reader) error {
	br := bufio.NewReader(src)
	prefix, err := br.Peek(magicPeekLength)
	if err != nil && err != io.EOF {
		return pfx.Err(err)
	}

	if len(prefix) == 0 {
		v.reader = br
		return nil
	}

	v.Compression = DetectCompression(prefix)
	switch v.Compression {
	case CompressionGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return pfx.Err(err)
		}
		v.reader = gr
		v.closers = append(v.closers, gr)
	case CompressionZStandard:
		zr, err := NewZStandardReader(br)
		if err != nil {
			return pfx.Err(err)
		}
		v.reader = zr
		v.closers = append(v.closers, zr)
	default:
		return pfx.Err(fmt.Errorf("%s is not a gzip or zstd compressed VCF (leading bytes %x)", v.Path, prefix))
	}

	return nil
}

// Read yields decompressed VCF text.
func (v *VCF) Read(p []byte) (int, error) {
	return v.reader.Read(p)
}

// Close releases the decompressor and then the underlying source. It is safe
// to call more than once.
func (v *VCF) Close() error {
	var err error
	for i := len(v.closers) - 1; i >= 0; i-- {
		if cerr := v.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	v.closers = nil

	if err != nil {
		return pfx.Err(err)
	}
	return nil
}

func openSource(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}

	if IsGoogleStoragePath(path) {
		return OpenGoogleStorage(ctx, path)
	}

	path, err := ExpandHome(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// ExpandHome replaces a leading "~/" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", pfx.Err(err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}
