package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onelog"
	"onenotestore/internal/onenote"
)

func cmdParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	in := fs.String("in", "", "path to a .one or .onetoc2 file")
	maxSteps := fs.Int("max-steps", 0, "global loop cap")
	verbose := fs.Bool("v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}

	mode := "prod"
	if *verbose {
		mode = "dev"
	}
	log, err := onelog.New(mode)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	doc, err := onenote.Decode(data, onefmt.Options{MaxSteps: *maxSteps})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	switch {
	case doc.Notebook != nil:
		log.Info("decoded notebook", "entries", len(doc.Notebook.Entries))
		printTOC(doc.Notebook.Entries, 0)
	case doc.Section != nil:
		printSection(doc.Section)
	}
	return nil
}

func printSection(sec *onenote.Section) {
	name := sec.EntityGuid
	if sec.HasName {
		name = sec.DisplayName
	}
	fmt.Printf("section %s\n", name)
	for i, series := range sec.PageSeries {
		fmt.Printf("  page series %d: %d page(s)\n", i, len(series.Pages))
		for j, page := range series.Pages {
			fmt.Printf("    page %d: %d element(s)\n", j, len(page.Elements))
		}
	}
}

func printTOC(entries []onenote.TOCEntry, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		name := e.Name
		if !e.HasName {
			name = "(unnamed)"
		}
		fmt.Printf("%s%s\n", indent, name)
		printTOC(e.Children, depth+1)
	}
}
