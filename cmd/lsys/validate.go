package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/lsys-xyz/go-lsys/lsystem/dsl"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys validate <doc.lsys>

Parse a document and report whether it is a valid L-system definition.
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("document file required")
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	sys, err := dsl.Parse(string(src))
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("OK")
	fmt.Printf("  generations=%d angle=%g scale=%g axiom=%s productions=%d\n",
		sys.Generations, sys.Angle, sys.Scale, sys.Axiom, len(sys.Productions))
	return nil
}
