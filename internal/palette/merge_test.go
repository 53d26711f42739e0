package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hexColor(hex string, locked bool) Color {
	return Color{Hex: hex, Locked: locked}
}

func hexes(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex
	}
	return out
}

func TestMergeShuffledReplacesUnlockedInOrder(t *testing.T) {
	original := []Color{
		hexColor("#aa0000", false),
		hexColor("#00aa00", true),
		hexColor("#0000aa", false),
	}
	generated := []Color{hexColor("#111111", false), hexColor("#222222", false)}

	merged := MergeShuffled(original, generated)
	require.Equal(t, []string{"#111111", "#00aa00", "#222222"}, hexes(merged))
	require.True(t, merged[1].Locked)
}

func TestMergeShuffledFallsBackWhenGeneratedRunsOut(t *testing.T) {
	original := []Color{
		hexColor("#FF0000", false),
		hexColor("#00FF00", true),
		hexColor("#0000FF", false),
	}
	generated := []Color{hexColor("#111111", false)}

	merged := MergeShuffled(original, generated)
	require.Len(t, merged, len(original))
	require.Equal(t, []string{"#111111", "#00FF00", "#0000FF"}, hexes(merged))
}

func TestMergeShuffledAllLockedKeepsOriginal(t *testing.T) {
	original := []Color{hexColor("#a", true), hexColor("#b", true)}
	merged := MergeShuffled(original, []Color{hexColor("#new", false)})
	require.Equal(t, []string{"#a", "#b"}, hexes(merged))
}

func TestMergeShuffledEmptyGenerated(t *testing.T) {
	original := []Color{hexColor("#a", false)}
	require.Equal(t, original, MergeShuffled(original, nil))
}

func TestUnlockedAndAllLocked(t *testing.T) {
	colors := []Color{hexColor("#a", true), hexColor("#b", false), hexColor("#c", true)}
	require.Equal(t, []string{"#b"}, hexes(Unlocked(colors)))
	require.False(t, AllLocked(colors))

	colors[1].Locked = true
	require.True(t, AllLocked(colors))
	require.True(t, AllLocked(nil))
}
