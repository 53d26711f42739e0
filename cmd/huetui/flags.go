package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func validateGenerateOptions(opts generateOptions) error {
	if opts.Format != "" && opts.Format != "json" && opts.Format != "text" {
		return fmt.Errorf("unknown format %q (use json or text)", opts.Format)
	}
	if opts.ImagePath == "" {
		return nil
	}

	abs, err := filepath.Abs(opts.ImagePath)
	if err != nil {
		return fmt.Errorf("resolve image path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("image file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("image path %s is a directory", abs)
	}

	return nil
}
