// Package hapleg filters IMPUTE2-style haplotype and legend file pairs down to
// a set of genomic positions.
package hapleg

import "strconv"

// Map columns in the legend file to their positions. Any columns after
// ColumnAllele1 are ignored.
const (
	ColumnID int = iota
	ColumnPosition
	ColumnAllele0
	ColumnAllele1
)

// LegendHeader is the first line of every legend file that hapleg writes.
const LegendHeader = "ID pos allele0 allele1"

// Site is one row of a legend file. The Nth Site of a legend describes the Nth
// line of its haplotype file.
type Site struct {
	ID       string // E.g., RSID
	Position uint32
	Allele0  string // Can contain > 1 character
	Allele1  string // Can contain > 1 character
}

// String renders the site as a space-delimited legend row.
func (s Site) String() string {
	return s.ID + " " + strconv.FormatUint(uint64(s.Position), 10) + " " + s.Allele0 + " " + s.Allele1
}
