package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "validate":
		if err := validate(args); err != nil {
			fatal(err)
		}
	case "derive":
		if err := deriveCmd(args); err != nil {
			fatal(err)
		}
	case "runs":
		if err := runs(args); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `lsys - L-system definition language toolkit

Usage:
  lsys <command> [options]

Commands:
  validate   Parse a document and report its validity
  derive     Expand a document's axiom and print the derived sequence
  runs       List recorded derivation runs
  help       Show this help

Run 'lsys <command> -h' for command options.
`)
}
