package tmb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const scenarioVCF = "#header line\n" +
	"chr1\t100\t.\tA\tT\t50\tPASS\t.\n" +
	"chr1\t200\t.\tG\tC\t30\tLowQual\t.\n" +
	"chr2\t300\t.\tT\tA\t60\tPASS\t.\n"

// tsv joins columns into a VCF data line.
func tsv(cols ...string) string {
	return strings.Join(cols, "\t") + "\n"
}

func writeGzip(t *testing.T, name string, members ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	// Each member is its own gzip stream, as in BGZF.
	for _, m := range members {
		w := gzip.NewWriter(f)
		_, err = w.Write([]byte(m))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	return path
}

func writeZStandard(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return path
}

func writePlain(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
