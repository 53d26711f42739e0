package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

func TestFilenameSanitizesSpaces(t *testing.T) {
	require.Equal(t, "Serene_Ocean_Glow_palette.png", Filename("Serene Ocean Glow", FormatPNG))
	require.Equal(t, "Dusk_palette.json", Filename("Dusk", FormatJSON))
}

func TestWritePNGStoresBlobVerbatim(t *testing.T) {
	dir := t.TempDir()
	blob := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	path, err := Write(dir, "My Room", FormatPNG, blob)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "My_Room_palette.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, blob, written)
}

func TestWriteJSONReserializesWithIndentation(t *testing.T) {
	dir := t.TempDir()
	raw := []byte(`{"name":"Dusk","colors":[{"hex":"#aabbcc"}]}`)

	path, err := Write(dir, "Dusk", FormatJSON, raw)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(written), "  \"name\": \"Dusk\"")

	// Content must stay semantically equal to the server response.
	var got, want map[string]any
	require.NoError(t, json.Unmarshal(written, &got))
	require.NoError(t, json.Unmarshal(raw, &want))
	require.Equal(t, want, got)
}

func TestWriteJSONRejectsInvalidBody(t *testing.T) {
	_, err := Write(t.TempDir(), "Dusk", FormatJSON, []byte("not json"))

	var exportErr *apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "absent"), "Dusk", FormatPNG, []byte{1})

	var exportErr *apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
}
