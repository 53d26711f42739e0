package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewWithoutPaletteShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, &stubService{})

	out := m.View()
	require.Contains(t, out, "palette studio")
	require.Contains(t, out, "No image selected")
	require.Contains(t, out, "Nothing generated yet")
	require.NotContains(t, out, "s: shuffle")
}

func TestViewRendersSwatchCodes(t *testing.T) {
	m := modelWithPalette(t)

	out := m.View()
	require.Contains(t, out, "Dusk")
	require.Contains(t, out, "#c81e1e")
	require.Contains(t, out, "rgb(200, 30, 30)")
	require.Contains(t, out, "hsl(")
	require.Contains(t, out, "cmyk(")
	require.Contains(t, out, "Room preview")
	require.Contains(t, out, "wall")
	require.Contains(t, out, "floor")
	require.Contains(t, out, "furniture")
	require.Contains(t, out, "s: shuffle")
}

func TestViewShowsLockGlyphs(t *testing.T) {
	m := modelWithPalette(t)
	m.ctrl.ToggleLock(0)

	out := m.View()
	require.Contains(t, out, "●")
	require.Contains(t, out, "○")
}

func TestViewShowsSettings(t *testing.T) {
	m := modelWithPalette(t)

	out := m.View()
	require.Contains(t, out, "scandinavian")
	require.Contains(t, out, "calm")
	require.Contains(t, out, "daylight")
	require.Contains(t, out, "complementary")
}

func TestTabSwitchesFocus(t *testing.T) {
	m := newTestModel(t, &stubService{})
	require.Equal(t, focusSwatches, m.focus)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.Equal(t, focusSettings, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.Equal(t, focusSwatches, m.focus)
}

func TestCycleStyleUpdatesSettingAndRegenerates(t *testing.T) {
	m := modelWithPalette(t)
	m.focus = focusSettings
	m.settingCursor = settingStyle

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.processing)

	// The regeneration is batched with the spinner tick.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var palMsg *PaletteMsg
	for _, c := range batch {
		if pm, isPal := c().(PaletteMsg); isPal {
			palMsg = &pm
		}
	}
	require.NotNil(t, palMsg)
	require.NoError(t, palMsg.Err)

	// scandinavian is second in the option list, so one step right wraps to
	// minimalist.
	require.Equal(t, "minimalist", m.ctrl.Settings().Style)
}

func TestCycleSettingWithoutPaletteMakesNoRequest(t *testing.T) {
	m := newTestModel(t, &stubService{})
	m.focus = focusSettings
	m.settingCursor = settingMood

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Nil(t, cmd(), "settings change with no palette must be a no-op")
	require.Equal(t, "cozy", m.ctrl.Settings().Mood)
}

func TestCycleLightingRoutesToAdjustment(t *testing.T) {
	m := modelWithPalette(t)
	m.focus = focusSettings
	m.settingCursor = settingLighting

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	adjusted, ok := msg.(LightingAdjustedMsg)
	require.True(t, ok)
	require.NoError(t, adjusted.Err)
	require.Equal(t, "warm_light", m.ctrl.Settings().Lighting)

	// The palette name survives a lighting adjustment untouched.
	require.Equal(t, "Dusk", m.ctrl.Palette().Name)
}
