// Package main provides the seed command-line tool that writes a
// starter catalogue file with one example component.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"catpub/internal/catalog"
)

// exampleEntry is the starter component written into a fresh catalogue.
var exampleEntry = map[string]catalog.RawComponent{
	"ExampleComponent": {
		"link":      "https://example.com",
		"tags":      []any{string(catalog.TagUtil)},
		"summary":   "Short description of what the component does",
		"developer": "Example Developer",
	},
}

func main() {
	output := flag.String("output", "static/components/data.json", "Catalogue file to create")
	force := flag.Bool("force", false, "Overwrite an existing catalogue file")

	flag.Parse()

	if _, err := os.Stat(*output); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "refusing to overwrite %s (use -force)\n", *output)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create directory: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(exampleEntry, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal example catalogue: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote starter catalogue to %s\n", *output)
	fmt.Printf("Valid tags: ")

	for i, tag := range catalog.AllTags() {
		if i > 0 {
			fmt.Print(", ")
		}

		fmt.Print(string(tag))
	}

	fmt.Println()
}
