package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	format    string
	output    string
	batch     bool
	recursive bool
	workers   int
	assetPath string
	footer    string
}

// lintFlags holds all flags for the lint command.
type lintFlags struct {
	common    commonFlags
	recursive bool
}

// footersFlags holds all flags for the footers command.
type footersFlags struct {
	common    commonFlags
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// parseConvertFlags parses convert command flags and returns positional args.
// A help request returns flag.ErrHelp after the usage is printed to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "output format: html, text, both")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.batch, "batch", "b", false, "convert every file of the input directory")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "include subdirectories in batch mode")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory holding custom footer sets")
	fs.StringVar(&f.footer, "footer", "", "footer set name")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args, w, printConvertUsage)
	return f, rest, err
}

// parseLintFlags parses lint command flags and returns positional args.
func parseLintFlags(args []string, w io.Writer) (*lintFlags, []string, error) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	f := &lintFlags{}

	fs.BoolVarP(&f.recursive, "recursive", "r", false, "include subdirectories")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args, w, printLintUsage)
	return f, rest, err
}

// parseFlagSet parses args with fs, routing pflag output to w.
// Parse failures wrap ErrUsage; a help request returns flag.ErrHelp as is.
func parseFlagSet(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseFootersFlags parses footers command flags.
func parseFootersFlags(args []string, w io.Writer) (*footersFlags, []string, error) {
	fs := flag.NewFlagSet("footers", flag.ContinueOnError)
	f := &footersFlags{}

	fs.StringVar(&f.assetPath, "asset-path", "", "directory holding custom footer sets")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args, w, printFootersUsage)
	return f, rest, err
}
