// Package main is the entry point for the agsedit AGS table editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/dshills/agsedit/internal/app"
	"github.com/dshills/agsedit/internal/view"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type cliOptions struct {
	app      app.Options
	summary  bool
	file     string
	logLevel string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application := app.New(opts.app)

	if _, err := application.Open(opts.file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open %s: %v\n", opts.file, err)
		return 1
	}

	if opts.summary {
		report, err := application.SummaryReport()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(report)
		return 0
	}

	v, err := view.New(application)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := v.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	var encodingName string
	var showVersion bool

	flag.BoolVar(&opts.summary, "summary", false, "Print the file summary report and exit")
	flag.BoolVar(&opts.summary, "s", false, "Print the file summary report and exit (shorthand)")
	defaultLevel := os.Getenv("AGSEDIT_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	flag.StringVar(&opts.logLevel, "log-level", defaultLevel, "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.app.MatrixLimit, "matrix-limit", 0, "Max locations before the report matrix is omitted")
	flag.StringVar(&encodingName, "encoding", "utf-8", "File encoding (utf-8, windows-1252, latin-1)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "agsedit - table editor for AGS geotechnical data files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: agsedit [options] file.ags\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  agsedit boreholes.ags                 Open the table view\n")
		fmt.Fprintf(os.Stderr, "  agsedit -summary boreholes.ags        Print the summary report\n")
		fmt.Fprintf(os.Stderr, "  agsedit -encoding windows-1252 x.ags  Open a legacy-encoded file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("agsedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.app.LogLevel = app.ParseLogLevel(opts.logLevel)

	enc, err := parseEncoding(encodingName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.app.Encoding = enc

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.file = flag.Arg(0)

	return opts
}

func parseEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "utf-8", "utf8", "":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}
