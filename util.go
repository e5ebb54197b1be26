package tmb

// WhichSQLiteDriver names the database/sql driver backing the ledger.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
