package hapleg

import (
	"log"

	"cloud.google.com/go/storage"
)

// DefaultBase is the output prefix used when Config.Base is empty.
const DefaultBase = "out"

// Config holds everything needed for one filter run.
type Config struct {
	Haplotypes string // haplotype file, no header
	Legend     string // legend file, with header
	KeepSites  string // positions to keep, one per line, or a .bgi index
	Base       string // output prefix; defaults to DefaultBase

	// Storage is required only when one of the inputs is a gs:// path.
	Storage *storage.Client

	// Logger receives diagnostics and progress. Defaults to the standard
	// logger.
	Logger *log.Logger
}

// Validate checks that the required inputs were given. It performs no I/O.
func (c *Config) Validate() error {
	if c.KeepSites == "" {
		return ErrNoKeepSites
	}
	if c.Haplotypes == "" || c.Legend == "" {
		return ErrNoInputs
	}

	return nil
}

// Run loads the keep sites and the legend, then filters the haplotypes.
func (c *Config) Run() (Summary, error) {
	if err := c.Validate(); err != nil {
		return Summary{}, err
	}

	base := c.Base
	if base == "" {
		base = DefaultBase
	}

	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	opts := []Option{WithStorageClient(c.Storage), WithLogger(logger)}
	warn := func(err *ParseError) { logger.Println(err) }

	logger.Printf("Reading in sites to keep [%s]\n", c.KeepSites)
	keep, err := LoadKeepSet(c.KeepSites, warn, opts...)
	if err != nil {
		return Summary{}, err
	}
	logger.Println("Keeping up to", keep.Len(), "distinct positions")

	logger.Printf("Reading in legend file [%s]\n", c.Legend)
	legend, err := ReadLegend(c.Legend, warn, opts...)
	if err != nil {
		return Summary{}, err
	}
	logger.Println("Read", len(legend), "sites from the legend")

	summary, err := FilterHaplotypes(keep, legend, c.Haplotypes, base, opts...)
	if err != nil {
		return summary, err
	}
	logger.Printf("Kept %d of %d sites\n", summary.Kept, summary.Processed)

	return summary, nil
}
