package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/fluent/internal/config"
	"github.com/alexisbeaulieu97/fluent/internal/gallery"
	"github.com/alexisbeaulieu97/fluent/internal/logger"
	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

// appContext bundles what every command needs once flags are resolved.
type appContext struct {
	flags   *rootFlags
	log     *logger.Logger
	logFile *os.File
}

func (a *appContext) level() string {
	if a.flags.verbose {
		return "debug"
	}
	return a.flags.logLevel
}

// setupLogger writes to --log-file when given, else to stderr.
func (a *appContext) setupLogger(stderr io.Writer) error {
	opts := logger.Options{Level: a.level(), HumanReadable: true, Writer: stderr}
	if a.flags.logFile != "" {
		f, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		opts.Writer = f
		opts.HumanReadable = false
	}

	log, err := logger.New(opts)
	if err != nil {
		a.close()
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log
	return nil
}

// galleryLogger is the logger the interactive gallery may use. Without a log
// file nothing can be written while the alternate screen is active.
func (a *appContext) galleryLogger() *logger.Logger {
	if a.logFile == nil {
		return logger.Discard()
	}
	return a.log
}

func (a *appContext) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// loadGallery reads the configured scene and applies the --theme override.
func (a *appContext) loadGallery() (*config.Gallery, error) {
	g, err := config.Load(a.flags.galleryFile)
	if err != nil {
		return nil, err
	}
	if a.flags.theme != "" {
		if _, err := components.ThemeByName(a.flags.theme); err != nil {
			return nil, err
		}
		g.Theme = a.flags.theme
	}
	a.log.WithFields(map[string]any{
		"gallery": a.flags.galleryFile,
		"theme":   g.ThemeName(),
	}).Debug("gallery loaded")
	return g, nil
}

func (a *appContext) newModel(log *logger.Logger) (gallery.Model, error) {
	g, err := a.loadGallery()
	if err != nil {
		return gallery.Model{}, err
	}
	return gallery.NewModel(g, gallery.WithLogger(log))
}
