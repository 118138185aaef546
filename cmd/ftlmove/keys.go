package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loopcontext/ftlmove"
	"github.com/loopcontext/ftlmove/internal/fluent"
)

// keysConfig holds flags for the keys command.
type keysConfig struct {
	paths    []string
	out      string
	messages bool
	terms    bool
}

func usageKeys(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `usage: ftlmove keys [options] file.ftl...

Keys prints the unique message and term keys (terms with their leading '-') of the
given FTL files, sorted, one per line. Edit the output down to the keys you want and
pass it to 'ftlmove move --strings-to-move-file'.

Flags:
`)
	fs.PrintDefaults()
}

func parseKeysFlags(args []string, output io.Writer) (*keysConfig, error) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usageKeys(fs) }
	var cfg keysConfig
	fs.StringVar(&cfg.out, "out", "", "Output file. Default stdout.")
	fs.BoolVar(&cfg.messages, "messages", true, "Include message keys.")
	fs.BoolVar(&cfg.terms, "terms", true, "Include term keys.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.paths = fs.Args()
	if len(cfg.paths) == 0 {
		return nil, fmt.Errorf("keys: at least one FTL file is required")
	}
	return &cfg, nil
}

func collectKeys(cfg *keysConfig) ([]string, error) {
	keys := ftlmove.NewKeySet()
	for _, path := range cfg.paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		for _, e := range fluent.Parse(string(src)).Body {
			if (e.Kind == fluent.Message && cfg.messages) || (e.Kind == fluent.Term && cfg.terms) {
				keys[e.Key()] = struct{}{}
			}
		}
	}
	return keys.Sorted(), nil
}

func runKeys(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseKeysFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "ftlmove: %v\n", err)
		return 2
	}
	keys, err := collectKeys(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "ftlmove: %v\n", err)
		return 1
	}
	out := strings.Join(keys, "\n")
	if out != "" {
		out += "\n"
	}
	if cfg.out != "" {
		if err := os.WriteFile(cfg.out, []byte(out), 0644); err != nil {
			fmt.Fprintf(stderr, "ftlmove: write %s: %v\n", cfg.out, err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, out)
	return 0
}
