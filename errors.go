package hapleg

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKeepSites is returned by Config.Validate when no keep-sites file
	// was given. Keeping sites is currently the only supported filter.
	ErrNoKeepSites = errors.New("only option right now is to keep sites; please specify a keep-sites file")

	// ErrNoInputs is returned by Config.Validate when either the haplotype or
	// the legend file is missing.
	ErrNoInputs = errors.New("need to specify both a haplotype and a legend file")
)

// OpenError reports that an input or output could not be opened. It is always
// fatal.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ParseError describes one malformed line. Readers report it and move on to the
// next line.
type ParseError struct {
	Path string
	Line int // 1-based, counting any header line
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v. Offending line was: %q", e.Path, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError reports a failure of the underlying stream, such as a corrupt gzip
// member. Everything after the failure is lost, so it is fatal.
type ReadError struct {
	Path string
	Line int // number of lines successfully read before the failure
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s after line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// AlignmentError reports that the haplotype file and the legend do not have
// the same number of rows.
type AlignmentError struct {
	Legend     int // number of legend sites
	Haplotypes int // number of haplotype lines seen
}

func (e *AlignmentError) Error() string {
	if e.Haplotypes > e.Legend {
		return fmt.Sprintf("haps file contains more lines (%d) than the legend (%d)", e.Haplotypes, e.Legend)
	}

	return fmt.Sprintf("legend contains more lines (%d) than haps file (%d)", e.Legend, e.Haplotypes)
}
