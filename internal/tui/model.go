// Package tui is the terminal binding for the palette controller: it maps key
// events to controller operations and renders the resulting state.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huetui/internal/controller"
	"github.com/alexisbeaulieu97/huetui/internal/logger"
	"github.com/alexisbeaulieu97/huetui/internal/palette"
)

// inputMode selects which surface owns the keyboard.
type inputMode int

const (
	modeNormal inputMode = iota
	modeUpload
	modeExport
)

// focusArea selects which panel the cursor keys act on.
type focusArea int

const (
	focusSwatches focusArea = iota
	focusSettings
)

// settingDef is one row of the settings panel. Options mirror what the
// service accepts; the values themselves stay opaque strings.
type settingDef struct {
	name    string
	options []string
}

var settingDefs = []settingDef{
	{name: "style", options: []string{"japandi", "scandinavian", "minimalist", "industrial", "mediterranean"}},
	{name: "mood", options: []string{"calm", "cozy", "luxury", "energetic"}},
	{name: "lighting", options: []string{"daylight", "warm_light", "cool_led"}},
	{name: "harmony", options: []string{"complementary", "analogous", "triadic", "tetradic", "monochromatic"}},
}

const (
	settingStyle = iota
	settingMood
	settingLighting
	settingHarmony
)

// Options configures the TUI at startup.
type Options struct {
	ExportDir string
	AlertTTL  time.Duration
	Logger    *logger.Logger
}

// Model is the Bubbletea state for the palette studio.
type Model struct {
	ctrl *controller.Controller
	log  *logger.Logger

	width  int
	height int

	mode  inputMode
	focus focusArea

	// swatch cursor
	cursor int

	// settings cursor
	settingCursor int

	// imagery
	preview [][]palette.RGB

	// modal inputs
	pathInput textinput.Model
	nameInput textinput.Model

	exportDir    string
	exportFormat string

	spinner    spinner.Model
	processing bool

	alerts *alertList

	quitting bool
}

// NewModel constructs the studio model around a controller.
func NewModel(ctrl *controller.Controller, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	ttl := opts.AlertTTL
	if ttl <= 0 {
		ttl = 4 * time.Second
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	pathInput := textinput.New()
	pathInput.Placeholder = "path to a JPG or PNG"
	pathInput.CharLimit = 512

	nameInput := textinput.New()
	nameInput.Placeholder = palette.DefaultName
	nameInput.CharLimit = 80

	return Model{
		ctrl:         ctrl,
		log:          log,
		mode:         modeNormal,
		focus:        focusSwatches,
		pathInput:    pathInput,
		nameInput:    nameInput,
		exportDir:    opts.ExportDir,
		exportFormat: "png",
		spinner:      s,
		alerts:       newAlertList(ttl),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentSettings reads the controller settings as an ordered value list
// aligned with settingDefs.
func (m Model) currentSettings() []string {
	s := m.ctrl.Settings()
	return []string{s.Style, s.Mood, s.Lighting, s.Harmony}
}

// hasPalette reports whether swatch-dependent actions are available.
func (m Model) hasPalette() bool {
	return m.ctrl.HasPalette()
}

func (m *Model) clampCursor() {
	pal := m.ctrl.Palette()
	if pal == nil || len(pal.Colors) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(pal.Colors) {
		m.cursor = len(pal.Colors) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
