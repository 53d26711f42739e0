package tui

import (
	"context"
	"errors"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huetui/internal/controller"
	"github.com/alexisbeaulieu97/huetui/internal/upload"
)

// processFileCmd validates and prepares a selected image file.
func processFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		u, err := upload.ProcessFile(path)
		return FileProcessedMsg{Upload: u, Err: err}
	}
}

// generateCmd runs a full palette generation. A generation already in flight
// makes this a no-op.
func generateCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		pal, err := ctrl.Generate(context.Background())
		if errors.Is(err, controller.ErrBusy) {
			return nil
		}
		return PaletteMsg{Palette: pal, Err: err}
	}
}

// shuffleCmd regenerates the unlocked colors.
func shuffleCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		pal, err := ctrl.Shuffle(context.Background())
		if errors.Is(err, controller.ErrAllLocked) {
			return ShuffleBlockedMsg{}
		}
		return PaletteMsg{Palette: pal, Err: err}
	}
}

// settingsChangedCmd reruns generation for a style/mood/harmony change. The
// controller makes it a no-op when no palette exists or one is in flight.
func settingsChangedCmd(ctrl *controller.Controller, s controller.Settings) tea.Cmd {
	return func() tea.Msg {
		pal, err := ctrl.SettingsChanged(context.Background(), s)
		if pal == nil && err == nil {
			return nil
		}
		return PaletteMsg{Palette: pal, Err: err}
	}
}

// lightingChangedCmd re-tints the current palette for a new lighting value.
func lightingChangedCmd(ctrl *controller.Controller, lighting string) tea.Cmd {
	return func() tea.Msg {
		colors, err := ctrl.LightingChanged(context.Background(), lighting)
		if colors == nil && err == nil {
			return nil
		}
		return LightingAdjustedMsg{Colors: colors, Err: err}
	}
}

// exportCmd renders the palette server-side and writes it under dir.
func exportCmd(ctrl *controller.Controller, dir, name, format string) tea.Cmd {
	return func() tea.Msg {
		path, err := ctrl.Export(context.Background(), dir, name, format)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// copyHexCmd places a hex code on the system clipboard via OSC 52. The
// escape sequence goes to stderr so it bypasses the renderer.
func copyHexCmd(hex string) tea.Cmd {
	return func() tea.Msg {
		_, err := osc52.New(hex).WriteTo(os.Stderr)
		return ClipboardMsg{Hex: hex, Err: err}
	}
}
