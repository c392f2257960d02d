package hapleg

import (
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// WarnFunc receives recoverable per-line problems. A nil WarnFunc logs them
// with the standard logger.
type WarnFunc func(err *ParseError)

func (w WarnFunc) warn(err *ParseError) {
	if w == nil {
		log.Println(err)
		return
	}
	w(err)
}

// KeepSet is an ascending, duplicate-free list of positions to retain.
type KeepSet []uint32

// NewKeepSet sorts and de-duplicates positions. The input slice is reused.
func NewKeepSet(positions ...uint32) KeepSet {
	slices.Sort(positions)
	return KeepSet(slices.Compact(positions))
}

// Contains reports whether pos is in the set.
func (k KeepSet) Contains(pos uint32) bool {
	_, found := slices.BinarySearch(k, pos)
	return found
}

// Len is the number of distinct positions in the set.
func (k KeepSet) Len() int {
	return len(k)
}

// LoadKeepSet reads one position per line from path. Lines that do not parse
// are passed to warn and skipped. A path ending in .bgi is read as a BGEN
// index instead, and every variant position in it is kept.
func LoadKeepSet(path string, warn WarnFunc, opts ...Option) (KeepSet, error) {
	o := newOptions(opts)

	if strings.HasSuffix(path, ".bgi") {
		return loadKeepSetFromBGI(path)
	}

	in, err := openInput(path, o.client)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var positions []uint32
	for lineNum := 1; ; lineNum++ {
		line, err := readLine(in.Reader)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ReadError{Path: path, Line: lineNum - 1, Err: err}
		}

		pos, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if err != nil {
			warn.warn(&ParseError{Path: path, Line: lineNum, Text: line, Err: err})
			continue
		}
		positions = append(positions, uint32(pos))
	}

	return NewKeepSet(positions...), nil
}
