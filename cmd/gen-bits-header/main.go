// Package main provides the CLI entrypoint for gen-bits-header.
//
// gen-bits-header reads genxml hardware descriptions for any number of
// generations and writes a C header with the bit width of every surface
// pitch field, as GENx_* macros plus accessors that pick the right width
// for a generation at runtime:
//
//	gen-bits-header -o genX_bits.h gen6.xml gen7.xml gen75.xml gen8.xml gen9.xml
//
// Flags:
//
//	-o        Output file; "-" or absent writes to stdout
//	-config   Optional YAML config (extra exclusions, aliases, guard)
//	-v        Debug logging
//	-dump     Dump the collected fields to stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"gen-bits-header/internal/bits"
	"gen-bits-header/internal/config"
	"gen-bits-header/internal/diagnostic"
	"gen-bits-header/internal/genxml"
	"gen-bits-header/internal/header"
	"gen-bits-header/internal/output"
)

type options struct {
	Output  string
	Config  string
	Verbose bool
	Dump    bool
	Sources []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("gen-bits-header", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Output, "o", "", `Output file ("-" for stdout)`)
	fs.StringVar(&opts.Output, "output", "", "Same as -o")
	fs.StringVar(&opts.Config, "config", "", "YAML config file")
	fs.BoolVar(&opts.Verbose, "v", false, "Debug logging")
	fs.BoolVar(&opts.Dump, "dump", false, "Dump collected fields to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: gen-bits-header [-o OUTPUT] [-config FILE] [-v] [-dump] SOURCES...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	opts.Sources = fs.Args()
	if len(opts.Sources) == 0 {
		fmt.Fprintln(stderr, "error: no source files")
		fs.Usage()

		return 1
	}

	logger := newLogger(stderr, opts.Verbose)

	if err := generate(opts, stdout, stderr, logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func generate(opts options, stdout, stderr io.Writer, logger *slog.Logger) error {
	cfg := config.Default()

	if opts.Config != "" {
		loaded, err := config.LoadFile(opts.Config)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	reg := bits.NewRegistry()
	extractor := bits.NewExtractor(rules)

	var diags diagnostic.Diagnostics

	for _, src := range opts.Sources {
		doc, err := genxml.LoadFile(src)
		if err != nil {
			return err
		}

		before := reg.Len()

		found, err := extractor.Extract(doc, reg)
		if err != nil {
			return err
		}

		diags.Merge(found)
		logger.Debug("collected fields", "source", src, "gen", doc.Gen.String(), "fields", reg.Len()-before)
	}

	diags.Merge(duplicateWarnings(reg))
	logDiagnostics(logger, diags)

	if opts.Dump {
		spew.Fdump(stderr, reg.ByGeneration())
	}

	emitter := header.NewEmitter(guardFor(cfg, opts.Output))
	if cfg.Copyright != "" {
		emitter.Copyright = cfg.Copyright
	}

	content, err := emitter.Render(reg)
	if err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	return output.Write(opts.Output, content, stdout)
}

func duplicateWarnings(reg *bits.Registry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, token := range reg.Duplicates() {
		diags.AddWarning("duplicate_token", "token declared more than once", "", token)
	}

	return diags
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Infos {
		logger.Debug(d.Message, "code", d.Code, "source", d.Source, "subject", d.Subject)
	}

	for _, d := range diags.Warnings {
		logger.Warn(d.Message, "code", d.Code, "subject", d.Subject)
	}
}

func guardFor(cfg *config.File, path string) string {
	if cfg.Guard != "" {
		return cfg.Guard
	}

	if output.IsStdout(path) {
		return header.GuardFromName(header.StdoutName)
	}

	return header.GuardFromName(path)
}
