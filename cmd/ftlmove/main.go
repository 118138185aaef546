package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to a subcommand and returns the process exit status. Without a
// subcommand name the arguments are parsed as "move" flags.
func run(args []string, stdout, stderr io.Writer) int {
	sub := "move"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub, args = args[0], args[1:]
	}
	switch sub {
	case "move":
		return runMove(args, stdout, stderr)
	case "keys":
		return runKeys(args, stdout, stderr)
	case "help":
		usage(stderr)
		return 0
	default:
		fmt.Fprintf(stderr, "ftlmove: unknown subcommand %q\n", sub)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `ftlmove - move Fluent keys between files across language directories

usage: ftlmove [command] [options]

commands:
  move    Move (and optionally rename) keys from a source FTL file to a destination
          FTL file in every language folder. Default when no command is given.
  keys    Print the message and term keys of FTL files, one per line, in the format
          expected by --strings-to-move-file.

Use 'ftlmove move -h' or 'ftlmove keys -h' for command-specific flags.
`)
}
