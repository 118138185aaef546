package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/loopcontext/ftlmove"
)

// moveConfig holds flags for the move command.
type moveConfig struct {
	configFile          string
	baseDir             string
	keysFile            string
	sourceFilename      string
	destinationFilename string
	rename              bool
	dryRun              bool
	langs               string
	// set records which flags were given explicitly on the command line.
	set map[string]bool
}

func usageMove(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `usage: ftlmove [move] --strings-to-move-file FILE [options]

Move reads the keys listed in --strings-to-move-file and, for every folder directly
under --base-dir that contains --source-filename, moves the matching messages and
terms into --destination-filename in the same folder. With --rename the source
filename prefix in each moved key is replaced by the destination filename prefix
(common-ok -> new_component-ok).

Flags:
`)
	fs.PrintDefaults()
}

func parseMoveFlags(args []string, output io.Writer) (*moveConfig, error) {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usageMove(fs) }
	var cfg moveConfig
	fs.StringVar(&cfg.configFile, "config", "", "YAML file with default settings; flags given on the command line win.")
	fs.StringVar(&cfg.baseDir, "base-dir", ftlmove.DefaultBaseDir, "Base directory containing language folders.")
	fs.StringVar(&cfg.keysFile, "strings-to-move-file", "", "Path to the file with keys to move (one per line, or a YAML list). Required.")
	fs.StringVar(&cfg.sourceFilename, "source-filename", ftlmove.DefaultSourceFilename, "Source FTL filename to process in each folder.")
	fs.StringVar(&cfg.destinationFilename, "destination-filename", ftlmove.DefaultDestinationFilename, "Destination FTL filename where keys will be moved.")
	fs.BoolVar(&cfg.rename, "rename", false, "Rename moved keys based on the file prefixes.")
	fs.BoolVar(&cfg.dryRun, "dry-run", false, "Report what would be moved without writing any file.")
	fs.StringVar(&cfg.langs, "lang", "", "Comma-separated glob patterns restricting the language folders (e.g. 'en*,pt-BR').")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("move: unexpected argument %q", fs.Arg(0))
	}
	cfg.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })
	return &cfg, nil
}

// migratorConfig builds the library configuration, reporting to w.
func (c *moveConfig) migratorConfig(w io.Writer, file *fileConfig) ftlmove.Config {
	cfg := ftlmove.Config{
		BaseDir:             c.baseDir,
		KeysFile:            c.keysFile,
		SourceFilename:      c.sourceFilename,
		DestinationFilename: c.destinationFilename,
		Rename:              c.rename,
		DryRun:              c.dryRun,
		Languages:           ftlmove.ParsePatterns(c.langs),
	}
	reporter := ftlmove.NewTextReporter(w)
	cfg.Reporter = reporter
	if file == nil {
		reporter.DryRun = cfg.DryRun
		return cfg
	}
	if !c.set["base-dir"] && file.BaseDir != "" {
		cfg.BaseDir = file.BaseDir
	}
	if !c.set["strings-to-move-file"] && file.StringsToMoveFile != "" {
		cfg.KeysFile = file.StringsToMoveFile
	}
	if !c.set["source-filename"] && file.SourceFilename != "" {
		cfg.SourceFilename = file.SourceFilename
	}
	if !c.set["destination-filename"] && file.DestinationFilename != "" {
		cfg.DestinationFilename = file.DestinationFilename
	}
	if !c.set["rename"] {
		cfg.Rename = file.Rename
	}
	if !c.set["dry-run"] {
		cfg.DryRun = file.DryRun
	}
	if !c.set["lang"] {
		cfg.Languages = file.Languages
	}
	reporter.DryRun = cfg.DryRun
	return cfg
}

func runMove(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseMoveFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "ftlmove: %v\n", err)
		return 2
	}
	var file *fileConfig
	if cfg.configFile != "" {
		file, err = loadFileConfig(cfg.configFile)
		if err != nil {
			fmt.Fprintf(stderr, "ftlmove: %v\n", err)
			return 1
		}
	}
	mcfg := cfg.migratorConfig(stdout, file)
	if mcfg.KeysFile == "" {
		fmt.Fprintln(stderr, "ftlmove: move: --strings-to-move-file is required")
		return 2
	}

	migrator, err := ftlmove.NewMigrator(mcfg)
	if err != nil {
		return reportError(stdout, stderr, err)
	}
	stats, err := migrator.Run()
	if err != nil {
		return reportError(stdout, stderr, err)
	}
	printSummary(stdout, stats, mcfg.DryRun)
	return 0
}

// reportError prints err and returns the exit status. Configuration problems
// are diagnostics, not failures: they end the run normally.
func reportError(stdout, stderr io.Writer, err error) int {
	if ftlmove.IsConfigError(err) {
		fmt.Fprintf(stdout, "Error: %v. Exiting.\n", err)
		return 0
	}
	fmt.Fprintf(stderr, "ftlmove: %v\n", err)
	return 1
}

func printSummary(w io.Writer, stats ftlmove.Stats, dryRun bool) {
	if stats.Directories == 0 {
		return
	}
	fmt.Fprintf(w, "\nDone: %d of %d language folders processed, %d skipped, %d keys moved",
		stats.Processed, stats.Directories, stats.Skipped, stats.KeysMoved)
	if stats.KeysRenamed > 0 {
		fmt.Fprintf(w, ", %d renamed", stats.KeysRenamed)
	}
	fmt.Fprintln(w, ".")
	if dryRun {
		fmt.Fprintln(w, "Dry run: no files were written.")
	}
}
