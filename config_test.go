package hapleg

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		cfg      Config
		expected error
	}{
		{Config{Haplotypes: "a.hap", Legend: "a.legend"}, ErrNoKeepSites},
		{Config{KeepSites: "keep.txt", Legend: "a.legend"}, ErrNoInputs},
		{Config{KeepSites: "keep.txt", Haplotypes: "a.hap"}, ErrNoInputs},
		{Config{KeepSites: "keep.txt", Haplotypes: "a.hap", Legend: "a.legend"}, nil},
	}

	for i, c := range cases {
		if err := c.cfg.Validate(); !errors.Is(err, c.expected) {
			t.Errorf("Case %d: got %v, expected %v", i, err, c.expected)
		}
	}
}

func TestConfigRun(t *testing.T) {
	dir := t.TempDir()

	var logs bytes.Buffer
	cfg := Config{
		KeepSites:  writeTestFile(t, dir, "keep.txt", "300\nnot-a-site\n100\n"),
		Legend:     writeTestGzip(t, dir, "in.legend.gz", "id position a0 a1\nrs1 100 A G\nrs2 200 C T\nrs3 300 G A\n"),
		Haplotypes: writeTestGzip(t, dir, "in.hap.gz", "0 1\n1 0\n0 0\n"),
		Base:       filepath.Join(dir, "filtered"),
		Logger:     log.New(&logs, "", 0),
	}

	summary, err := cfg.Run()
	if err != nil {
		t.Fatal(err)
	}

	if summary.Kept != 2 || summary.Processed != 3 {
		t.Errorf("Got %+v, expected 3 processed and 2 kept", summary)
	}
	if got, expected := readTestFile(t, cfg.Base+".legend"), "ID pos allele0 allele1\nrs1 100 A G\nrs3 300 G A\n"; got != expected {
		t.Errorf("Got legend %q, expected %q", got, expected)
	}
	if got := readTestGzip(t, cfg.Base+".hap.gz"); got != "0 1\n0 0\n" {
		t.Errorf("Got haplotypes %q", got)
	}
	if !strings.Contains(logs.String(), "not-a-site") {
		t.Errorf("Expected the malformed keep site to be reported, got logs:\n%s", logs.String())
	}
}

func TestConfigRunStopsBeforeIO(t *testing.T) {
	cfg := Config{Haplotypes: "missing.hap", Legend: "missing.legend"}

	if _, err := cfg.Run(); !errors.Is(err, ErrNoKeepSites) {
		t.Errorf("Got %v, expected %v", err, ErrNoKeepSites)
	}
}
