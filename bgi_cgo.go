//go:build cgo

package hapleg

// With cgo, .bgi files are read through mattn/go-sqlite3.

import (
	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"
