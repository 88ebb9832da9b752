package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lsys-xyz/go-lsys/runlog"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	docFile := fs.String("doc", "", "Only list runs of this document")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys runs <runs.db> [options]

List derivation runs recorded with 'lsys derive --log'.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("database file required")
	}

	docHash := ""
	if *docFile != "" {
		src, err := os.ReadFile(*docFile)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		docHash = runlog.Fingerprint(string(src))
	}

	store, err := runlog.NewSQLiteStore(fs.Arg(0))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), docHash)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, run := range entries {
		fmt.Printf("%s  %s  doc=%.12s  seed=%d  generations=%d  len=%d\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID, run.DocHash,
			run.Seed, run.Generations, run.OutputLen)
	}
	return nil
}
