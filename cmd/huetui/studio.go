package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huetui/internal/tui"
)

// runStudio starts the interactive palette studio.
func runStudio(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the studio needs an interactive terminal; use `huetui generate` for scripted runs")
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	model := tui.NewModel(app.ctrl, tui.Options{
		ExportDir: exportDir,
		AlertTTL:  time.Duration(app.cfg.AlertTTL) * time.Second,
		Logger:    app.log,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
