// Package main provides the checker command: a validation-only dry run
// over the component catalogue. It performs the same field, link and
// image checks as the publisher but writes no content pages, and the
// temporary download directory is removed before exiting.
package main

import (
	"flag"
	"fmt"
	"os"

	"catpub/internal/catalog"
	"catpub/internal/config"
	"catpub/internal/fetch"
	"catpub/internal/logger"
	"catpub/internal/render"
	"catpub/internal/report"
	"catpub/internal/validate"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (optional)")
	dataFile := flag.String("data", "", "Catalogue JSON file (overrides config)")
	tmpDir := flag.String("tmp", "", "Temporary download directory (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	flag.Parse()

	var cfg *config.Config

	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if *dataFile != "" {
		cfg.Publisher.Paths.DataFile = *dataFile
	}

	if *tmpDir != "" {
		cfg.Publisher.Paths.TmpDir = *tmpDir
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	entries, err := catalog.LoadCatalog(cfg.Publisher.Paths.DataFile)
	if err != nil {
		log.Error("Failed to load catalogue", "error", err)
		os.Exit(1)
	}

	log.Info("Checking catalogue", "data", cfg.Publisher.Paths.DataFile, "components", len(entries))

	fetcher := fetch.NewClientWithConfig(&cfg.Publisher.Retry)
	validator := validate.NewValidator(fetcher, cfg.Publisher.Paths.TmpDir)

	// Downloaded images only ever land in the tmp dir, so a dry run
	// leaves nothing behind once it is removed.
	defer os.RemoveAll(cfg.Publisher.Paths.TmpDir)

	var rows []report.Row

	for _, title := range catalog.SortedTitles(entries) {
		component, err := validator.Validate(title, entries[title])
		if err != nil {
			log.Error("Validation failed", "title", title, "error", err)
			os.RemoveAll(cfg.Publisher.Paths.TmpDir)
			os.Exit(1)
		}

		rows = append(rows, report.Row{
			Title:  component.Title,
			Tags:   render.TagList(component.Tags),
			Image:  component.ImageFilename(),
			Status: "ok",
		})
	}

	fmt.Println()
	fmt.Print(report.Table(rows))
	fmt.Println()
	fmt.Printf("All %d components valid\n", len(rows))
}
