package hapleg

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LegendReader streams sites from a legend file. The first line of the file is
// a header and is always discarded.
type LegendReader struct {
	SitesSeen int
	path      string
	in        *inputStream
	lineNum   int
}

// OpenLegend opens the legend at path, decompressing it if its suffix calls
// for it.
func OpenLegend(path string, opts ...Option) (*LegendReader, error) {
	o := newOptions(opts)

	in, err := openInput(path, o.client)
	if err != nil {
		return nil, err
	}

	return &LegendReader{
		path: path,
		in:   in,
	}, nil
}

func (lr *LegendReader) Close() error {
	return lr.in.Close()
}

// Read returns the next site. At the end of the file it returns io.EOF. A
// malformed row yields a *ParseError, after which reading may continue; any
// other error means the stream itself failed and nothing more can be read.
func (lr *LegendReader) Read() (*Site, error) {
	if lr.lineNum == 0 {
		if _, err := lr.readLine(); err != nil {
			return nil, err
		}
	}

	line, err := lr.readLine()
	if err != nil {
		return nil, err
	}

	site, err := parseSite(line)
	if err != nil {
		return nil, &ParseError{Path: lr.path, Line: lr.lineNum, Text: line, Err: err}
	}
	lr.SitesSeen++

	return site, nil
}

func (lr *LegendReader) readLine() (string, error) {
	line, err := readLine(lr.in.Reader)
	if err == io.EOF {
		return "", err
	} else if err != nil {
		return "", &ReadError{Path: lr.path, Line: lr.lineNum, Err: err}
	}
	lr.lineNum++

	return line, nil
}

func parseSite(line string) (*Site, error) {
	cols := strings.Fields(line)
	if len(cols) < ColumnAllele1+1 {
		return nil, fmt.Errorf("expected at least %d columns, found %d", ColumnAllele1+1, len(cols))
	}

	pos, err := strconv.ParseUint(cols[ColumnPosition], 10, 32)
	if err != nil {
		return nil, err
	}

	return &Site{
		ID:       cols[ColumnID],
		Position: uint32(pos),
		Allele0:  cols[ColumnAllele0],
		Allele1:  cols[ColumnAllele1],
	}, nil
}

// ReadLegend reads every well-formed site from the legend at path, in file
// order. Malformed rows are passed to warn and left out, so the result can be
// shorter than the file.
func ReadLegend(path string, warn WarnFunc, opts ...Option) ([]Site, error) {
	lr, err := OpenLegend(path, opts...)
	if err != nil {
		return nil, err
	}
	defer lr.Close()

	var legend []Site
	var perr *ParseError
	for {
		site, err := lr.Read()
		if err == io.EOF {
			break
		} else if errors.As(err, &perr) {
			warn.warn(perr)
			continue
		} else if err != nil {
			return nil, err
		}
		legend = append(legend, *site)
	}

	return legend, nil
}
