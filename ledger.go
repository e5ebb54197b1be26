package tmb

import (
	"fmt"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS Run (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	variants INTEGER NOT NULL,
	per_megabase REAL NOT NULL,
	recorded_at INTEGER NOT NULL
);
`

// Ledger is an append-only SQLite record of completed counting passes.
type Ledger struct {
	DB *sqlx.DB

	now func() time.Time
}

// Run conforms to the rows of the "Run" table and can be scanned with sqlx.
type Run struct {
	ID          int64   `db:"id"`
	Source      string  `db:"source"`
	Variants    int     `db:"variants"`
	PerMegabase float64 `db:"per_megabase"`
	RecordedAt  Time    `db:"recorded_at"`
}

// OpenLedger opens the ledger at path, creating the database and its table if
// needed. The SQLite driver depends on whether cgo is available; see
// WhichSQLiteDriver.
func OpenLedger(path string) (*Ledger, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect(whichSQLiteDriver, path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, pfx.Err(fmt.Errorf("unable to create ledger schema: %w", err))
	}

	return &Ledger{DB: db, now: time.Now}, nil
}

func (l *Ledger) Close() error {
	return l.DB.Close()
}

// Record appends the result of a pass over source.
func (l *Ledger) Record(source string, b Burden) error {
	_, err := l.DB.Exec(
		"INSERT INTO Run (source, variants, per_megabase, recorded_at) VALUES (?, ?, ?, ?)",
		source, b.Variants, b.PerMegabase(), Time(l.now()),
	)
	if err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Runs returns every recorded pass in the order it was recorded.
func (l *Ledger) Runs() ([]Run, error) {
	var runs []Run
	if err := l.DB.Select(&runs, "SELECT id, source, variants, per_megabase, recorded_at FROM Run ORDER BY id ASC"); err != nil {
		return nil, pfx.Err(err)
	}

	return runs, nil
}
