package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onenote"
)

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	in := fs.String("in", "", "path to a .one or .onetoc2 file")
	out := fs.String("out", "", "output file (default: stdout)")
	maxSteps := fs.Int("max-steps", 0, "global loop cap")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	doc, err := onenote.Decode(data, onefmt.Options{MaxSteps: *maxSteps})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	encoded = append(encoded, '\n')

	if *out == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(*out, encoded, 0644)
}
