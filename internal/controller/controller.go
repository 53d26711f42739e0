// Package controller owns the client-side palette state and sequences the
// calls against the palette service. It is UI-agnostic: the terminal UI binds
// key events to these operations and renders whatever state they leave behind.
package controller

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/huetui/internal/client"
	"github.com/alexisbeaulieu97/huetui/internal/export"
	"github.com/alexisbeaulieu97/huetui/internal/logger"
	"github.com/alexisbeaulieu97/huetui/internal/palette"
	"github.com/alexisbeaulieu97/huetui/internal/upload"
	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

// ErrBusy is returned when a generate-family operation is already in flight.
// Callers treat it as a silent no-op.
var ErrBusy = errors.New("generation already in progress")

// ErrAllLocked is returned by Shuffle when every color is locked: there is
// nothing to replace, so no request is made. Callers surface it as an
// informational notice.
var ErrAllLocked = errors.New("all colors are locked")

// ErrNoPalette is returned by operations that need an existing palette.
var ErrNoPalette = errors.New("no palette to work with")

// Settings are the categorical generation parameters. The service interprets
// them; the controller only carries them along.
type Settings struct {
	Style    string
	Mood     string
	Lighting string
	Harmony  string
}

// PaletteService is the slice of the palette service the controller uses.
// *client.Client satisfies it.
type PaletteService interface {
	AnalyzeImage(ctx context.Context, file io.Reader, filename string, opts client.GenerateOptions) (*palette.Palette, error)
	GeneratePalette(ctx context.Context, seeds []palette.RGB, opts client.GenerateOptions) (*palette.Palette, error)
	AdjustLighting(ctx context.Context, colors []palette.Color, lighting string) ([]palette.Color, error)
	ExportPalette(ctx context.Context, colors []palette.Color, name, format string) ([]byte, error)
}

// Controller holds the single live palette and the selected image. All state
// transitions go through it; there is exactly one palette at a time and
// generating or clearing replaces it wholesale.
type Controller struct {
	svc PaletteService
	log *logger.Logger

	mu           sync.Mutex
	settings     Settings
	seeds        map[string][]palette.RGB
	pal          *palette.Palette
	imageDerived bool
	image        *upload.Upload
	processing   bool
}

// New creates a Controller with the given service and initial settings.
func New(svc PaletteService, settings Settings, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{svc: svc, settings: settings, log: log}
}

// SetSeedOverrides replaces the built-in seed colors for the given styles.
// Styles without an entry keep their defaults.
func (c *Controller) SetSeedOverrides(seeds map[string][]palette.RGB) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seeds = seeds
}

func (c *Controller) seedsForStyle(style string) []palette.RGB {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seeds, ok := c.seeds[style]; ok && len(seeds) > 0 {
		return seeds
	}
	return palette.SeedsForStyle(style)
}

// Palette returns a snapshot of the live palette, nil before the first
// successful generate. The caller owns the snapshot; the live state changes
// only through Controller methods.
func (c *Controller) Palette() *palette.Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// snapshot copies the palette so callers never share slice memory with the
// live state. Callers must hold c.mu.
func (c *Controller) snapshot() *palette.Palette {
	if c.pal == nil {
		return nil
	}
	return &palette.Palette{
		Name:   c.pal.Name,
		Colors: append([]palette.Color(nil), c.pal.Colors...),
	}
}

// HasPalette reports whether a palette is currently displayed.
func (c *Controller) HasPalette() bool {
	return c.Palette() != nil
}

// Settings returns the current generation settings.
func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Processing reports whether a generate-family call is in flight.
func (c *Controller) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// SetImage records an accepted upload as the current selection.
func (c *Controller) SetImage(u *upload.Upload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = u
}

// Image returns the current selection, nil when none.
func (c *Controller) Image() *upload.Upload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// RemoveImage clears the selection. When the displayed palette came from
// image analysis it is cleared too; a settings-derived palette stays. The
// return value reports whether the palette was dropped.
func (c *Controller) RemoveImage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.image = nil
	if c.imageDerived {
		c.pal = nil
		c.imageDerived = false
		return true
	}
	return false
}

// Clear drops the palette outright.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pal = nil
	c.imageDerived = false
}

func (c *Controller) tryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processing {
		return false
	}
	c.processing = true
	return true
}

func (c *Controller) end() {
	c.mu.Lock()
	c.processing = false
	c.mu.Unlock()
}

// Generate produces a fresh palette. With an image selected it posts the file
// for analysis; otherwise it derives seed colors from the current style and
// asks for a settings-based palette. A call while one is in flight is a
// no-op (ErrBusy). The processing flag is always released, whatever the
// outcome.
func (c *Controller) Generate(ctx context.Context) (*palette.Palette, error) {
	if !c.tryBegin() {
		return nil, ErrBusy
	}
	defer c.end()

	c.mu.Lock()
	settings := c.settings
	img := c.image
	c.mu.Unlock()

	opts := client.GenerateOptions{
		Style:    settings.Style,
		Mood:     settings.Mood,
		Lighting: settings.Lighting,
		Harmony:  settings.Harmony,
	}

	var (
		pal *palette.Palette
		err error
	)
	if img != nil {
		var file io.ReadCloser
		file, err = img.Open()
		if err != nil {
			return nil, apperrors.NewValidationError("file", "could not read the selected image", err)
		}
		pal, err = c.svc.AnalyzeImage(ctx, file, img.Name, opts)
		file.Close()
	} else {
		pal, err = c.svc.GeneratePalette(ctx, c.seedsForStyle(settings.Style), opts)
	}
	if err != nil {
		c.log.Error(err, "palette generation failed")
		return nil, err
	}

	c.mu.Lock()
	c.pal = pal
	c.imageDerived = img != nil
	snap := c.snapshot()
	c.mu.Unlock()

	c.log.WithFields(map[string]any{"colors": len(pal.Colors), "image": img != nil}).Info("palette generated")
	return snap, nil
}

// Shuffle regenerates only the unlocked colors, keeping locked colors fixed
// at their positions. When every color is locked it returns ErrAllLocked
// without touching the network. The response is merged back positionally:
// locked slots keep their original color, unlocked slots consume fresh colors
// in order and fall back to the original when the fresh sequence runs out.
func (c *Controller) Shuffle(ctx context.Context) (*palette.Palette, error) {
	c.mu.Lock()
	if c.pal == nil {
		c.mu.Unlock()
		return nil, ErrNoPalette
	}
	original := append([]palette.Color(nil), c.pal.Colors...)
	name := c.pal.Name
	settings := c.settings
	c.mu.Unlock()

	unlocked := palette.Unlocked(original)
	if len(unlocked) == 0 {
		return nil, ErrAllLocked
	}

	seeds := make([]palette.RGB, len(unlocked))
	for i, col := range unlocked {
		seeds[i] = col.RGB
	}

	fresh, err := c.svc.GeneratePalette(ctx, seeds, client.GenerateOptions{
		Style:    settings.Style,
		Mood:     settings.Mood,
		Lighting: settings.Lighting,
		Harmony:  settings.Harmony,
	})
	if err != nil {
		c.log.Error(err, "shuffle failed")
		return nil, err
	}

	merged := &palette.Palette{
		Name:   name,
		Colors: palette.MergeShuffled(original, fresh.Colors),
	}
	if fresh.Name != "" {
		merged.Name = fresh.Name
	}

	c.mu.Lock()
	c.pal = merged
	snap := c.snapshot()
	c.mu.Unlock()
	return snap, nil
}

// LightingChanged stores the new lighting value and, when a palette exists,
// asks the service to re-tint the current colors. The color list is replaced
// wholesale; the palette name never changes. Without a palette only the
// setting is recorded.
func (c *Controller) LightingChanged(ctx context.Context, lighting string) ([]palette.Color, error) {
	c.mu.Lock()
	c.settings.Lighting = lighting
	if c.pal == nil {
		c.mu.Unlock()
		return nil, nil
	}
	colors := append([]palette.Color(nil), c.pal.Colors...)
	c.mu.Unlock()

	adjusted, err := c.svc.AdjustLighting(ctx, colors, lighting)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.pal != nil {
		c.pal = &palette.Palette{Name: c.pal.Name, Colors: adjusted}
	}
	c.mu.Unlock()
	return adjusted, nil
}

// SettingsChanged stores new style/mood/harmony values and regenerates the
// palette, but only when one already exists and nothing is in flight.
// Before the first explicit generate, changing settings has no visible
// effect and issues no request.
func (c *Controller) SettingsChanged(ctx context.Context, s Settings) (*palette.Palette, error) {
	c.mu.Lock()
	c.settings.Style = s.Style
	c.settings.Mood = s.Mood
	c.settings.Harmony = s.Harmony
	hasPalette := c.pal != nil
	busy := c.processing
	c.mu.Unlock()

	if !hasPalette || busy {
		return nil, nil
	}
	return c.Generate(ctx)
}

// ToggleLock flips the Locked flag of the color at index i and reports the
// new state. Out-of-range indexes are ignored.
func (c *Controller) ToggleLock(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pal == nil || i < 0 || i >= len(c.pal.Colors) {
		return false
	}
	c.pal.Colors[i].Locked = !c.pal.Colors[i].Locked
	return c.pal.Colors[i].Locked
}

// Export renders the palette server-side and writes it under dir using the
// sanitized filename convention. An empty name falls back to the palette's
// display name. The written path is returned.
func (c *Controller) Export(ctx context.Context, dir, name, format string) (string, error) {
	c.mu.Lock()
	pal := c.snapshot()
	c.mu.Unlock()
	if pal == nil {
		return "", ErrNoPalette
	}
	if name == "" {
		name = pal.DisplayName()
	}

	data, err := c.svc.ExportPalette(ctx, pal.Colors, name, format)
	if err != nil {
		return "", err
	}
	return export.Write(dir, name, format, data)
}
