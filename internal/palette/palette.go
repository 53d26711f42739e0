package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultName is used when the service returns a palette without a name.
const DefaultName = "Untitled Palette"

// RGB is an ordered red/green/blue triple. It marshals as a three-element
// JSON array to match the service wire format.
type RGB [3]uint8

// HSL holds hue (degrees), saturation and lightness (percent).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// CMYK holds the four print channels as percentages.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// Color is a single palette entry in every encoding the service provides.
// Locked is client-side only: it marks the color as exempt from replacement
// during a shuffle.
type Color struct {
	Hex    string `json:"hex"`
	RGB    RGB    `json:"rgb"`
	HSL    HSL    `json:"hsl"`
	CMYK   CMYK   `json:"cmyk"`
	Role   string `json:"role,omitempty"`
	Locked bool   `json:"locked"`
}

// Palette is a named ordered color sequence. Order is meaningful: the first
// three colors map to the wall, floor and furniture regions of the room
// preview.
type Palette struct {
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
}

// DisplayName returns the palette name, falling back to DefaultName.
func (p *Palette) DisplayName() string {
	if p == nil || p.Name == "" {
		return DefaultName
	}
	return p.Name
}

// FromRGB builds a Color with all derived encodings populated.
func FromRGB(rgb RGB) Color {
	return Color{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL:  rgb.HSL(),
		CMYK: rgb.CMYK(),
	}
}

// Hex renders the triple as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ParseHex parses a #rgb or #rrggbb color string.
func ParseHex(s string) (RGB, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{r, g, b}, nil
}

// HSL converts the triple to hue/saturation/lightness.
func (c RGB) HSL() HSL {
	col := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
	h, s, l := col.Hsl()
	return HSL{H: int(h) % 360, S: int(s * 100), L: int(l * 100)}
}

// CMYK converts the triple to print channels.
func (c RGB) CMYK() CMYK {
	r := float64(c[0]) / 255
	g := float64(c[1]) / 255
	b := float64(c[2]) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: int((1 - r - k) / (1 - k) * 100),
		M: int((1 - g - k) / (1 - k) * 100),
		Y: int((1 - b - k) / (1 - k) * 100),
		K: int(k * 100),
	}
}

// RGBString renders the color in the rgb(r, g, b) display format.
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.RGB[0], c.RGB[1], c.RGB[2])
}

// HSLString renders the color in the hsl(h, s%, l%) display format.
func (c Color) HSLString() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.HSL.H, c.HSL.S, c.HSL.L)
}

// CMYKString renders the color in the cmyk(c%, m%, y%, k%) display format.
func (c Color) CMYKString() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.CMYK.C, c.CMYK.M, c.CMYK.Y, c.CMYK.K)
}
