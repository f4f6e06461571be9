package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/floatinput/internal/config"
	"github.com/alexisbeaulieu97/floatinput/internal/logger"
)

func validateThemePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve theme path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("theme file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("theme path %s is a directory", abs)
	}

	return nil
}

func loadOverrides(flags *rootFlags) (*config.Overrides, error) {
	if err := validateThemePath(flags.themePath); err != nil {
		return nil, err
	}
	overrides, err := config.Load(flags.themePath)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return overrides, nil
}

// openLogger returns a logger writing to --log-file, or a discarding logger
// when no file is given. The terminal belongs to the form.
func openLogger(flags *rootFlags) (*logger.Logger, io.Closer, error) {
	if flags.logFile == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f, Component: "floatinput"})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, f, nil
}
