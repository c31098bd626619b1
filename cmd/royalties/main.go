package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/dusk-indust/royalties/internal/catalog"
	"github.com/dusk-indust/royalties/internal/config"
	"github.com/dusk-indust/royalties/internal/demo"
	"github.com/dusk-indust/royalties/internal/logging"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Store     string
	LogLevel  string
	Verbose   bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: royalties [flags] <command>

commands:
  demo              print every contract of the demo roster, sorted by date
  by-date <date>    print the contracts signed on date
  statement         print royalties per author
  export            print the registry as JSON
  diagram           print a Mermaid diagram of authors and books
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs.
type app struct {
	out      io.Writer
	logger   *zap.Logger
	store    string
	registry *catalog.Registry
	roster   *demo.Roster
}

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("royalties", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory containing royalties.yml")
	fs.StringVar(&flags.Store, "store", "", "graph store backend: memory or kuzu")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	a, err := newApp(flags, stdout, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	switch cmd := rest[0]; cmd {
	case "demo":
		return a.runDemo()
	case "by-date":
		if len(rest) < 2 {
			return fmt.Errorf("usage: royalties by-date <date>")
		}
		return a.runByDate(rest[1])
	case "statement":
		return a.runStatement()
	case "export":
		return a.runExport()
	case "diagram":
		return a.runDiagram()
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// newApp merges the config file with flags, builds the logger and seeds the
// demo roster.
func newApp(flags cliFlags, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.Store != "" {
		cfg.Store = flags.Store
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose && cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	reg := catalog.NewRegistry(catalog.WithLogger(logger.Named("registry")))
	roster, err := demo.Seed(reg)
	if err != nil {
		return nil, err
	}

	return &app{
		out:      stdout,
		logger:   logger,
		store:    cfg.StoreOrDefault(),
		registry: reg,
		roster:   roster,
	}, nil
}
