// Package main provides the publisher command that turns the component
// catalogue into static content pages.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"catpub/internal/catalog"
	"catpub/internal/config"
	"catpub/internal/fetch"
	"catpub/internal/logger"
	"catpub/internal/render"
	"catpub/internal/report"
	"catpub/internal/validate"
	"catpub/internal/writer"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (optional)")
	dataFile := flag.String("data", "", "Catalogue JSON file (overrides config)")
	contentDir := flag.String("content", "", "Content output directory (overrides config)")
	tmpDir := flag.String("tmp", "", "Temporary download directory (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	flag.Parse()

	cfg, err := loadConfig(*configFile, *dataFile, *contentDir, *tmpDir, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("Starting catalogue publish run", "data", cfg.Publisher.Paths.DataFile, "content", cfg.Publisher.Paths.ContentDir)

	startTime := time.Now()

	// Phase 1: load the catalogue
	entries, err := catalog.LoadCatalog(cfg.Publisher.Paths.DataFile)
	if err != nil {
		log.Error("Failed to load catalogue", "error", err)
		os.Exit(1)
	}

	log.Info("Catalogue loaded", "components", len(entries))

	// Phase 2: prepare writer and validator
	w, err := writer.New(cfg.Publisher.Paths.ContentDir, cfg.Publisher.Paths.TmpDir)
	if err != nil {
		log.Error("Content directory check failed", "error", err)
		os.Exit(1)
	}

	fetcher := fetch.NewClientWithConfig(&cfg.Publisher.Retry)
	validator := validate.NewValidator(fetcher, cfg.Publisher.Paths.TmpDir)

	// Phase 3: validate, render and write, one component at a time.
	// The first failing component aborts the run; pages already written
	// stay on disk.
	var rows []report.Row

	withImage := 0

	for _, title := range catalog.SortedTitles(entries) {
		log.Debug("Processing component", "title", title)

		component, err := validator.Validate(title, entries[title])
		if err != nil {
			log.Error("Validation failed", "title", title, "error", err)
			os.Exit(1)
		}

		if err := w.Write(component, render.Page(component)); err != nil {
			log.Error("Write failed", "title", title, "error", err)
			os.Exit(1)
		}

		if component.HasImage() {
			withImage++
		}

		rows = append(rows, report.Row{
			Title:  component.Title,
			Tags:   render.TagList(component.Tags),
			Image:  component.ImageFilename(),
			Status: "published",
		})
	}

	// Phase 4: drop the temporary download directory
	if err := w.Cleanup(); err != nil {
		log.Warn("Temporary directory cleanup failed", "error", err)
	}

	log.Info("Publish run complete", "components", len(rows), "duration", time.Since(startTime))

	fmt.Println()
	fmt.Print(report.Table(rows))
	fmt.Println()
	fmt.Printf("Published %d components (%d with images) in %v\n", len(rows), withImage, time.Since(startTime))
}

// loadConfig builds the effective configuration from the optional
// config file plus CLI overrides. With no flags at all the defaults
// reproduce the fixed static/components layout.
func loadConfig(configFile, dataFile, contentDir, tmpDir, logLevel string) (*config.Config, error) {
	var cfg *config.Config

	var err error

	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if dataFile != "" {
		cfg.Publisher.Paths.DataFile = dataFile
	}

	if contentDir != "" {
		cfg.Publisher.Paths.ContentDir = contentDir
	}

	if tmpDir != "" {
		cfg.Publisher.Paths.TmpDir = tmpDir
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
