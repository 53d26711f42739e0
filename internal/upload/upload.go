package upload

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/huetui/internal/palette"
	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

// MaxFileSize is the upload ceiling enforced before any decode work.
const MaxFileSize = 16 << 20 // 16 MiB

var allowedTypes = []string{"image/jpeg", "image/png"}

// Upload is an accepted image selection: the file on disk plus a decoded
// thumbnail for the local preview. Nothing here touches the network.
type Upload struct {
	Path string
	Name string
	Size int64
	MIME string

	thumb *image.NRGBA
}

// ProcessFile validates the file at path and prepares it for preview. Files
// with a disallowed content type or over MaxFileSize are rejected with a
// ValidationError and no Upload is produced.
func ProcessFile(path string) (*Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "file does not exist", err)
	}
	if info.Size() > MaxFileSize {
		return nil, apperrors.NewValidationError("file", "File too large. Maximum size is 16MB.", nil)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "could not read file", err)
	}
	if !allowed(mtype) {
		return nil, apperrors.NewValidationError("file", "Invalid file type. Please upload JPG or PNG images only.", nil)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "could not decode image", err)
	}

	// Full-resolution pixels are never needed again; a bounded thumbnail is
	// enough for any preview size the terminal can show.
	thumb := imaging.Fit(img, 320, 320, imaging.Lanczos)

	return &Upload{
		Path:  path,
		Name:  filepath.Base(path),
		Size:  info.Size(),
		MIME:  mtype.String(),
		thumb: thumb,
	}, nil
}

func allowed(mtype *mimetype.MIME) bool {
	for _, t := range allowedTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

// Open returns a fresh reader over the original file for the multipart
// upload. The caller owns closing it.
func (u *Upload) Open() (io.ReadCloser, error) {
	return os.Open(u.Path)
}

// PreviewGrid scales the thumbnail to fit within cols x rows pixels and
// returns its colors row by row. The TUI packs two pixel rows into one
// terminal row of half-block glyphs, so rows is typically twice the height
// in cells.
func (u *Upload) PreviewGrid(cols, rows int) [][]palette.RGB {
	if u == nil || u.thumb == nil || cols <= 0 || rows <= 0 {
		return nil
	}

	scaled := imaging.Fit(u.thumb, cols, rows, imaging.NearestNeighbor)
	bounds := scaled.Bounds()

	grid := make([][]palette.RGB, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]palette.RGB, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := scaled.At(x, y).RGBA()
			row = append(row, palette.RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
		grid = append(grid, row)
	}
	return grid
}
