package tui

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/huetui/internal/palette"
	"github.com/alexisbeaulieu97/huetui/internal/upload"
)

// FileProcessedMsg reports the outcome of validating a selected image file.
type FileProcessedMsg struct {
	Upload *upload.Upload
	Err    error
}

// PaletteMsg carries a freshly generated or shuffled palette.
type PaletteMsg struct {
	Palette *palette.Palette
	Err     error
}

// LightingAdjustedMsg carries re-tinted colors after a lighting change.
// Failures on this path are logged, never alerted.
type LightingAdjustedMsg struct {
	Colors []palette.Color
	Err    error
}

// ShuffleBlockedMsg signals that every color was locked, so no request was
// made.
type ShuffleBlockedMsg struct{}

// ExportDoneMsg reports where an export landed, or why it failed.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// ClipboardMsg reports a clipboard copy attempt.
type ClipboardMsg struct {
	Hex string
	Err error
}

// AlertExpiredMsg dismisses the alert with the matching id.
type AlertExpiredMsg struct {
	ID uuid.UUID
}
