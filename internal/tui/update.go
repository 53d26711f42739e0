package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huetui/internal/controller"
	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FileProcessedMsg:
		return m.onFileProcessed(msg)

	case PaletteMsg:
		return m.onPalette(msg)

	case ShuffleBlockedMsg:
		return m, m.alerts.push(alertInfo, "All colors are locked. Unlock at least one to shuffle.")

	case LightingAdjustedMsg:
		// Lighting failures are logged, never alerted.
		if msg.Err != nil {
			m.log.Error(msg.Err, "lighting adjustment failed")
			return m, nil
		}
		// The service may return a different number of colors.
		m.clampCursor()
		return m, nil

	case ExportDoneMsg:
		return m.onExportDone(msg)

	case ClipboardMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "clipboard copy failed")
			return m, nil
		}
		return m, m.alerts.push(alertSuccess, "Copied "+msg.Hex+" to clipboard")

	case AlertExpiredMsg:
		m.alerts.dismiss(msg.ID)
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeUpload:
		return m.onUploadKey(msg)
	case modeExport:
		return m.onExportKey(msg)
	default:
		return m.onNormalKey(msg)
	}
}

func (m Model) onUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.pathInput.Blur()
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		m.mode = modeNormal
		m.pathInput.Blur()
		return m, processFileCmd(path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) onExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.nameInput.Blur()
		return m, nil
	case tea.KeyTab:
		if m.exportFormat == "png" {
			m.exportFormat = "json"
		} else {
			m.exportFormat = "png"
		}
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		return m, exportCmd(m.ctrl, m.exportDir, name, m.exportFormat)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) onNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.alerts.dismissAll()
		return m, nil

	case "u":
		m.mode = modeUpload
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()

	case "x":
		if m.ctrl.Image() == nil {
			return m, nil
		}
		cleared := m.ctrl.RemoveImage()
		m.preview = nil
		m.cursor = 0
		if cleared {
			return m, m.alerts.push(alertInfo, "Image removed; palette cleared")
		}
		return m, m.alerts.push(alertInfo, "Image removed")

	case "g", "enter":
		if m.processing {
			return m, nil
		}
		m.processing = true
		return m, tea.Batch(generateCmd(m.ctrl), m.spinner.Tick)

	case "d":
		if !m.hasPalette() {
			return m, nil
		}
		m.ctrl.Clear()
		m.cursor = 0
		return m, m.alerts.push(alertInfo, "Palette cleared")

	case "s":
		if !m.hasPalette() {
			return m, nil
		}
		return m, shuffleCmd(m.ctrl)

	case "e":
		if !m.hasPalette() {
			return m, nil
		}
		m.mode = modeExport
		m.nameInput.SetValue(m.ctrl.Palette().DisplayName())
		return m, m.nameInput.Focus()

	case "c":
		pal := m.ctrl.Palette()
		if pal == nil || len(pal.Colors) == 0 {
			return m, nil
		}
		if m.cursor >= len(pal.Colors) {
			m.cursor = len(pal.Colors) - 1
		}
		return m, copyHexCmd(pal.Colors[m.cursor].Hex)

	case " ":
		if !m.hasPalette() {
			return m, nil
		}
		m.ctrl.ToggleLock(m.cursor)
		return m, nil

	case "tab":
		if m.focus == focusSwatches {
			m.focus = focusSettings
		} else {
			m.focus = focusSwatches
		}
		return m, nil

	case "up", "k":
		return m.moveCursor(-1), nil

	case "down", "j":
		return m.moveCursor(1), nil

	case "left", "h":
		return m.cycleSetting(-1)

	case "right", "l":
		return m.cycleSetting(1)
	}

	return m, nil
}

func (m Model) moveCursor(delta int) Model {
	if m.focus == focusSettings {
		m.settingCursor += delta
		if m.settingCursor < 0 {
			m.settingCursor = 0
		}
		if m.settingCursor >= len(settingDefs) {
			m.settingCursor = len(settingDefs) - 1
		}
		return m
	}

	m.cursor += delta
	m.clampCursor()
	return m
}

// cycleSetting steps the focused setting to its next value and routes the
// change: lighting re-tints the existing palette, everything else triggers a
// full regeneration (a no-op until a palette exists).
func (m Model) cycleSetting(delta int) (tea.Model, tea.Cmd) {
	if m.focus != focusSettings {
		return m, nil
	}

	def := settingDefs[m.settingCursor]
	current := m.currentSettings()[m.settingCursor]

	idx := 0
	for i, opt := range def.options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(def.options)) % len(def.options)
	value := def.options[idx]

	s := m.ctrl.Settings()
	switch m.settingCursor {
	case settingStyle:
		s.Style = value
	case settingMood:
		s.Mood = value
	case settingLighting:
		return m, lightingChangedCmd(m.ctrl, value)
	case settingHarmony:
		s.Harmony = value
	}

	cmd := settingsChangedCmd(m.ctrl, s)
	if m.hasPalette() && !m.processing {
		// A settings change regenerates, so it blocks like an explicit
		// generate. Without a palette, or mid-flight, the command only
		// records the setting and must not strand the flag.
		m.processing = true
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m Model) onFileProcessed(msg FileProcessedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.alerts.push(alertError, errorText(msg.Err))
	}

	m.ctrl.SetImage(msg.Upload)
	m.preview = msg.Upload.PreviewGrid(previewCols, previewRows)
	return m, m.alerts.push(alertSuccess, "Image ready. Press g to generate a palette.")
}

func (m Model) onPalette(msg PaletteMsg) (tea.Model, tea.Cmd) {
	m.processing = false
	if msg.Err != nil {
		return m, m.alerts.push(alertError, errorText(msg.Err))
	}
	if msg.Palette == nil {
		return m, nil
	}
	m.clampCursor()
	return m, nil
}

func (m Model) onExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Dialog stays open so the name and format survive a retry.
		return m, m.alerts.push(alertError, errorText(msg.Err))
	}
	m.mode = modeNormal
	m.nameInput.Blur()
	return m, m.alerts.push(alertSuccess, "Exported to "+msg.Path)
}

// errorText extracts the user-facing message from a typed error.
func errorText(err error) string {
	var serviceErr *apperrors.ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if errors.Is(err, controller.ErrNoPalette) {
		return "Generate a palette first."
	}
	return err.Error()
}
