package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, "room.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestProcessFileAcceptsPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	u, err := ProcessFile(path)
	require.NoError(t, err)
	require.Equal(t, "room.png", u.Name)
	require.Equal(t, "image/png", u.MIME)
	require.Positive(t, u.Size)
}

func TestProcessFileRejectsDisallowedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not an image"), 0o644))

	u, err := ProcessFile(path)
	require.Nil(t, u)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "Invalid file type")
}

func TestProcessFileRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	u, err := ProcessFile(path)
	require.Nil(t, u)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "too large")
}

func TestProcessFileRejectsMissingFile(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "nope.png"))

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPreviewGridFitsRequestedBounds(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	u, err := ProcessFile(path)
	require.NoError(t, err)

	grid := u.PreviewGrid(4, 4)
	require.NotEmpty(t, grid)
	require.LessOrEqual(t, len(grid), 4)
	for _, row := range grid {
		require.LessOrEqual(t, len(row), 4)
	}
}

func TestPreviewGridNilUpload(t *testing.T) {
	var u *Upload
	require.Nil(t, u.PreviewGrid(10, 10))
}
