//go:build !cgo

package hapleg

// Pure Go builds read .bgi files through modernc.org/sqlite.

import (
	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"
