package main

import (
	"database/sql"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/I-Am-Dench/mixbuild/config"
	"github.com/I-Am-Dench/mixbuild/database/mixindex"
	"github.com/I-Am-Dench/mixbuild/mix"
)

// Applies the flags that were set on the command line over the config.
func applyFlags(flagset *flag.FlagSet, cfg *config.Config, lang, root, output, index, translated *string, trace *bool) {
	flagset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Language = *lang
		case "root":
			cfg.Root = *root
		case "o":
			cfg.Output = *output
		case "index":
			cfg.Index = *index
		case "translated":
			cfg.Translated = strings.Split(*translated, ",")
		case "trace":
			cfg.Trace = *trace
		}
	})
}

func exportIndex(path string, summary mix.Summary, archive *mix.Archive, name string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	return mixindex.Export(db, filepath.Base(name), summary, archive.Entries)
}

func doPack(args []string) {
	SetLogPrefix("mixbuild(pack): ")

	flagset := flag.NewFlagSet("pack", flag.ExitOnError)
	flagset.BoolVar(&VerboseFlag, "v", false, "Enable verbose logging.")
	trace := flagset.Bool("trace", false, "Log every candidate and entry. Implies -v.")
	configName := flagset.String("config", "", "(.cfg) Optional ldf config file.")
	lang := flagset.String("lang", "E", "Language code of the subtitle sheets.")
	translated := flagset.String("translated", "", "Comma separated language codes of translated text resources. Defaults to all supported languages.")
	root := flagset.String("root", ".", "Directory containing the resource files.")
	output := flagset.String("o", config.DefaultOutput, "The output path of the archive.")
	index := flagset.String("index", "", "Export the entry table to this SQLite database.")
	flagset.Parse(args)

	cfg := config.Default()
	if len(*configName) > 0 {
		c, err := config.ReadFile(*configName)
		if errors.Is(err, os.ErrNotExist) {
			Error.Fatalf("config file does not exist: %s", *configName)
		}

		if err != nil {
			Error.Fatal(err)
		}
		cfg = c
	}
	applyFlags(flagset, cfg, lang, root, output, index, translated, trace)

	if cfg.Trace {
		VerboseFlag = true
	}

	candidates, err := cfg.Candidates()
	if err != nil {
		Error.Fatal(err)
	}

	source := os.DirFS(cfg.Root)

	collector := mix.Collector{Source: source}
	if cfg.Trace {
		collector.Trace = Verbose
	}

	entries, err := collector.Collect(candidates)
	if err != nil {
		Error.Fatal(err)
	}

	archive := mix.New(source, entries)
	if cfg.Trace {
		archive.Trace = Verbose
	}

	Info.Printf("Writing to output MIX file: %s...", cfg.Output)

	summary, err := mix.Create(cfg.Output, archive)
	if err != nil {
		if !errors.Is(err, mix.ErrDestinationOpenFailed) {
			if e := os.Remove(cfg.Output); e != nil {
				Error.Print(e)
			}
		}
		Error.Fatal(err)
	}

	Verbose.Printf("wrote %d bytes; data segment=%d bytes; crc=%08x", summary.Size, summary.DataSize, summary.Crc)

	if len(cfg.Index) > 0 {
		if err := exportIndex(cfg.Index, summary, archive, cfg.Output); err != nil {
			Error.Fatalf("index: %v", err)
		}
		Verbose.Printf("exported entry table to %s", cfg.Index)
	}

	Info.Printf("Total Resource files packed in %s: %d", cfg.Output, summary.NumFiles)
	Info.Print("Done.")
}
