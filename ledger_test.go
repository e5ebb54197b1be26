package tmb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.sqlite")

	l, err := OpenLedger(path)
	require.NoError(t, err)

	stamp := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return stamp }

	require.NoError(t, l.Record("tumor.vcf.gz", Burden{Variants: 2}))
	require.NoError(t, l.Record("gs://b/other.vcf.gz", Burden{Variants: 0}))
	require.NoError(t, l.Close())

	// Reopening must not clobber earlier rows.
	l, err = OpenLedger(path)
	require.NoError(t, err)
	defer l.Close()

	runs, err := l.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "tumor.vcf.gz", runs[0].Source)
	assert.Equal(t, 2, runs[0].Variants)
	assert.Equal(t, 0.05263157894736842, runs[0].PerMegabase)
	assert.True(t, stamp.Equal(time.Time(runs[0].RecordedAt)))

	assert.Equal(t, "gs://b/other.vcf.gz", runs[1].Source)
	assert.Equal(t, 0, runs[1].Variants)
	assert.Equal(t, 0.0, runs[1].PerMegabase)
	assert.Less(t, runs[0].ID, runs[1].ID)
}

func TestLedgerEmpty(t *testing.T) {
	l, err := OpenLedger(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer l.Close()

	runs, err := l.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWhichSQLiteDriver(t *testing.T) {
	assert.Contains(t, []string{"sqlite", "sqlite3"}, WhichSQLiteDriver())
}
