package tmb

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// RecordReader iterates over the data lines of decompressed VCF text,
// skipping meta-information and header lines.
type RecordReader struct {
	LinesSeen int
	r         *bufio.Reader
	err       error
}

func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{
		r: bufio.NewReaderSize(r, 1<<16),
	}
}

func (rr *RecordReader) Error() error {
	return rr.err
}

// Read returns the next data record, or nil once the input is exhausted or an
// error occurred. Check Error after Read returns nil.
func (rr *RecordReader) Read() *Record {
	if rr.err != nil {
		return nil
	}

	for {
		line, err := rr.r.ReadString('\n')
		if err != nil && err != io.EOF {
			rr.err = pfx.Err(err)
			return nil
		}
		if line == "" && err == io.EOF {
			return nil
		}
		rr.LinesSeen++

		if strings.HasPrefix(line, CommentPrefix) {
			if err == io.EOF {
				return nil
			}
			continue
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		fields := strings.Split(line, "\t")
		if len(fields) <= FilterColumn {
			rr.err = pfx.Err(&MalformedRecordError{LineNumber: rr.LinesSeen, Fields: len(fields)})
			return nil
		}

		return &Record{LineNumber: rr.LinesSeen, Fields: fields}
	}
}
