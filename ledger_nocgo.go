//go:build !cgo

package tmb

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"
