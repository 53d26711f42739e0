package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huetui/internal/palette"
)

const (
	swatchWidth    = 22
	previewCols    = 36
	previewRows    = 24 // pixel rows; two per terminal row of half blocks
	roomRegionRows = 4
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render("huetui • " + m.titleText())
	sections = append(sections, title)

	if m.processing {
		sections = append(sections, m.spinner.View()+" Generating palette…")
	}

	switch m.mode {
	case modeUpload:
		sections = append(sections, m.viewUploadDialog())
	case modeExport:
		sections = append(sections, m.viewExportDialog())
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.viewImagePanel(), m.viewSettings())
	right := lipgloss.JoinVertical(lipgloss.Left, m.viewSwatches(), m.viewRoomPreview())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	if alerts := m.viewAlerts(); alerts != "" {
		sections = append(sections, alerts)
	}
	sections = append(sections, helpStyle.Render(m.helpText()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleText() string {
	if pal := m.ctrl.Palette(); pal != nil {
		return pal.DisplayName()
	}
	return "palette studio"
}

func (m Model) viewUploadDialog() string {
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Select image"),
		m.pathInput.View(),
		helpStyle.Render("enter: accept • esc: cancel"),
	))
}

func (m Model) viewExportDialog() string {
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Export palette"),
		"name:   "+m.nameInput.View(),
		"format: "+selectedStyle.Render(m.exportFormat),
		helpStyle.Render("tab: format • enter: export • esc: close"),
	))
}

// viewImagePanel shows either the upload prompt or the local preview of the
// selected image. The preview never touches the network.
func (m Model) viewImagePanel() string {
	img := m.ctrl.Image()
	if img == nil {
		prompt := mutedStyle.Render("No image selected.\nPress u to choose a JPG or PNG\n(max 16 MB), or g to generate\nfrom style settings alone.")
		return lipgloss.JoinVertical(lipgloss.Left, sectionStyle.Render("Image"), prompt)
	}

	grid := m.preview
	var rows []string
	for y := 0; y < len(grid); y += 2 {
		var b strings.Builder
		top := grid[y]
		var bottom []palette.RGB
		if y+1 < len(grid) {
			bottom = grid[y+1]
		}
		for x := range top {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(top[x].Hex()))
			if bottom != nil && x < len(bottom) {
				style = style.Background(lipgloss.Color(bottom[x].Hex()))
			}
			b.WriteString(style.Render("▀"))
		}
		rows = append(rows, b.String())
	}

	label := fmt.Sprintf("%s (%s)", img.Name, img.MIME)
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Image"),
		strings.Join(rows, "\n"),
		mutedStyle.Render(label),
		helpStyle.Render("x: remove image"),
	)
}

func (m Model) viewSettings() string {
	values := m.currentSettings()

	var rows []string
	for i, def := range settingDefs {
		line := fmt.Sprintf("%-9s ‹ %s ›", def.name, values[i])
		if m.focus == focusSettings && i == m.settingCursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Settings"),
		strings.Join(rows, "\n"),
	)
}

// viewSwatches renders one block per color: the fill, the lock state, the
// role and the four code representations.
func (m Model) viewSwatches() string {
	pal := m.ctrl.Palette()
	if pal == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			sectionStyle.Render("Palette"),
			mutedStyle.Render("Nothing generated yet."),
		)
	}

	var blocks []string
	for i, col := range pal.Colors {
		blocks = append(blocks, m.viewSwatch(i, col))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Palette"),
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...),
	)
}

func (m Model) viewSwatch(i int, col palette.Color) string {
	fill := lipgloss.NewStyle().
		Background(lipgloss.Color(col.Hex)).
		Width(swatchWidth - 2).
		Render(strings.Repeat(" ", swatchWidth-2) + "\n" + strings.Repeat(" ", swatchWidth-2))

	lock := "○"
	if col.Locked {
		lock = lockedStyle.Render("●")
	}

	role := col.Role
	if role == "" {
		role = fmt.Sprintf("Color %d", i+1)
	}

	header := fmt.Sprintf("%s %s", lock, role)
	if m.focus == focusSwatches && i == m.cursor {
		header = selectedStyle.Render("▸ " + header)
	} else {
		header = "  " + header
	}

	codes := strings.Join([]string{
		col.Hex,
		col.RGBString(),
		col.HSLString(),
		col.CMYKString(),
	}, "\n")

	block := lipgloss.JoinVertical(lipgloss.Left, header, fill, mutedStyle.Render(codes))
	return lipgloss.NewStyle().Width(swatchWidth).Render(block)
}

// viewRoomPreview maps the first three colors positionally onto the wall,
// floor and furniture regions. Missing colors leave a region unpainted.
func (m Model) viewRoomPreview() string {
	pal := m.ctrl.Palette()
	if pal == nil {
		return ""
	}

	regions := []string{"wall", "floor", "furniture"}
	var blocks []string
	for i, region := range regions {
		style := lipgloss.NewStyle().Width(16).Height(roomRegionRows).Align(lipgloss.Center)
		if i < len(pal.Colors) {
			style = style.Background(lipgloss.Color(pal.Colors[i].Hex))
		}
		blocks = append(blocks, style.Render(region))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Room preview"),
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...),
	)
}

func (m Model) viewAlerts() string {
	if len(m.alerts.active) == 0 {
		return ""
	}

	var lines []string
	for _, a := range m.alerts.active {
		switch a.level {
		case alertSuccess:
			lines = append(lines, successAlertStyle.Render("✓ "+a.text))
		case alertError:
			lines = append(lines, errorAlertStyle.Render("✗ "+a.text))
		default:
			lines = append(lines, infoAlertStyle.Render("• "+a.text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpText() string {
	if m.mode != modeNormal {
		return ""
	}
	base := "u: image • g: generate • tab: focus • ←/→: setting • q: quit"
	if m.hasPalette() {
		base = "s: shuffle • space: lock • c: copy hex • e: export • d: clear • " + base
	}
	return base
}
