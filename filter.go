package hapleg

import (
	"bufio"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// Output file suffixes appended to the base name given to FilterHaplotypes.
const (
	HaplotypeOutputSuffix = ".hap.gz"
	LegendOutputSuffix    = ".legend"
)

// Summary describes a completed filter run.
type Summary struct {
	Processed int // haplotype lines read
	Kept      int // haplotype lines written
}

// FilterHaplotypes streams the haplotype file at hapPath alongside legend and
// writes every line whose site position is in keep to base.hap.gz, and the
// matching sites to base.legend. Both outputs are created or truncated, and
// are closed even if the run fails; an aborted run leaves partial outputs
// behind.
func FilterHaplotypes(keep KeepSet, legend []Site, hapPath, base string, opts ...Option) (summary Summary, err error) {
	o := newOptions(opts)

	in, err := openInput(hapPath, o.client)
	if err != nil {
		return Summary{}, err
	}
	defer in.Close()

	hapOutPath := base + HaplotypeOutputSuffix
	hapFile, err := os.Create(hapOutPath)
	if err != nil {
		return Summary{}, &OpenError{Path: hapOutPath, Err: err}
	}
	defer func() {
		if cerr := hapFile.Close(); err == nil && cerr != nil {
			err = pfx.Err(cerr)
		}
	}()
	zw := gzip.NewWriter(hapFile)
	defer func() {
		if cerr := zw.Close(); err == nil && cerr != nil {
			err = pfx.Err(cerr)
		}
	}()

	legOutPath := base + LegendOutputSuffix
	legFile, err := os.Create(legOutPath)
	if err != nil {
		return Summary{}, &OpenError{Path: legOutPath, Err: err}
	}
	defer func() {
		if cerr := legFile.Close(); err == nil && cerr != nil {
			err = pfx.Err(cerr)
		}
	}()

	o.logger.Printf("Filtering haplotypes file [%s] and writing %s and %s\n", hapPath, hapOutPath, legOutPath)

	return filter(keep, legend, hapPath, in.Reader, zw, legFile, o)
}

// FilterStreams is FilterHaplotypes over already opened, uncompressed
// streams. The legend header is written to legendOut before anything else.
func FilterStreams(keep KeepSet, legend []Site, hap io.Reader, hapOut, legendOut io.Writer, opts ...Option) (Summary, error) {
	br, ok := hap.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(hap)
	}

	return filter(keep, legend, "haplotype stream", br, hapOut, legendOut, newOptions(opts))
}

func filter(keep KeepSet, legend []Site, hapPath string, hap *bufio.Reader, hapOut, legendOut io.Writer, o *options) (summary Summary, err error) {
	hw := bufio.NewWriter(hapOut)
	lw := bufio.NewWriter(legendOut)
	defer func() {
		if ferr := hw.Flush(); err == nil && ferr != nil {
			err = pfx.Err(ferr)
		}
		if ferr := lw.Flush(); err == nil && ferr != nil {
			err = pfx.Err(ferr)
		}
	}()

	if _, err := lw.WriteString(LegendHeader + "\n"); err != nil {
		return summary, pfx.Err(err)
	}

	for {
		line, err := readLine(hap)
		if err == io.EOF {
			break
		} else if err != nil {
			return summary, &ReadError{Path: hapPath, Line: summary.Processed, Err: err}
		}

		if summary.Processed == len(legend) {
			return summary, &AlignmentError{Legend: len(legend), Haplotypes: summary.Processed + 1}
		}

		if site := legend[summary.Processed]; keep.Contains(site.Position) {
			if _, err := hw.WriteString(line); err != nil {
				return summary, pfx.Err(err)
			}
			if err := hw.WriteByte('\n'); err != nil {
				return summary, pfx.Err(err)
			}
			if _, err := lw.WriteString(site.String() + "\n"); err != nil {
				return summary, pfx.Err(err)
			}
			summary.Kept++
		}
		summary.Processed++

		if o.progressInterval > 0 && summary.Processed%o.progressInterval == 0 {
			o.logger.Printf("Kept %d/%d sites\n", summary.Kept, summary.Processed)
		}
	}

	if summary.Processed != len(legend) {
		return summary, &AlignmentError{Legend: len(legend), Haplotypes: summary.Processed}
	}

	return summary, nil
}
