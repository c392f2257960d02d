// haplegfilter keeps the rows of an IMPUTE2-style haplotype/legend pair whose
// positions appear in a list of sites, writing <base>.hap.gz and
// <base>.legend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/hapleg"
	"github.com/carbocation/pfx"
)

func main() {
	var cfg hapleg.Config
	var help bool
	flag.StringVar(&cfg.Haplotypes, "hap", "", "impute2 haplotypes file (may be gzipped, or a gs:// path)")
	flag.StringVar(&cfg.Legend, "leg", "", "impute2 legend file (may be gzipped, or a gs:// path)")
	flag.StringVar(&cfg.KeepSites, "keepSites", "", "list of sites to keep, one position per line, or a .bgi index")
	flag.StringVar(&cfg.Base, "base", hapleg.DefaultBase, "output file base")
	flag.BoolVar(&help, "help", false, "produce help message")
	flag.Parse()

	if help {
		flag.Usage()
		return
	}

	cfg.Haplotypes = expandHome(cfg.Haplotypes)
	cfg.Legend = expandHome(cfg.Legend)
	cfg.KeepSites = expandHome(cfg.KeepSites)
	cfg.Base = expandHome(cfg.Base)

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg hapleg.Config) error {
	if needsStorage(cfg.Haplotypes, cfg.Legend, cfg.KeepSites) {
		client, err := storage.NewClient(context.Background())
		if err != nil {
			return pfx.Err(fmt.Errorf("could not create Google Storage client: %w", err))
		}
		defer client.Close()
		cfg.Storage = client
	}

	_, err := cfg.Run()
	return err
}

func needsStorage(paths ...string) bool {
	for _, path := range paths {
		if strings.HasPrefix(path, "gs://") {
			return true
		}
	}

	return false
}

// expandHome expands ~ to its proper path, where appropriate.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -hap in.hap.gz -leg in.legend.gz -keepSites sites.txt [-base out]\n\nAllowed options:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}
