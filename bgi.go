package hapleg

import (
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// BGIIndex is a read-only handle on a BGEN index (.bgi) file.
type BGIIndex struct {
	DB *sqlx.DB
}

func (b *BGIIndex) Close() error {
	return b.DB.Close()
}

// OpenBGI opens the SQLite index at path read-only. The index must already
// exist; it is never created or modified.
func OpenBGI(path string) (*BGIIndex, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, pfx.Err(err)
	}

	// mode=ro is only honored for URI filenames, which must start with file:.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect(whichSQLiteDriver, path+"?mode=ro")
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &BGIIndex{DB: db}, nil
}

// Positions returns every distinct variant position in the index.
func (b *BGIIndex) Positions() ([]uint32, error) {
	var positions []uint32
	if err := b.DB.Select(&positions, "SELECT DISTINCT position FROM Variant"); err != nil {
		return nil, pfx.Err(err)
	}

	return positions, nil
}

func loadKeepSetFromBGI(path string) (KeepSet, error) {
	bgi, err := OpenBGI(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer bgi.Close()

	positions, err := bgi.Positions()
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return NewKeepSet(positions...), nil
}

// WhichSQLiteDriver names the database/sql driver used for .bgi files.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
