package scrollback

import "image/color"

// Palette is the 256-color table used to resolve indexed colors:
// 16 named colors (0-15), a 6x6x6 cube (16-231) and 24 grays (232-255).
var Palette = [256]color.RGBA{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},
	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

var (
	// DefaultForeground is the color used for NamedColorForeground and nil foregrounds.
	DefaultForeground = color.RGBA{229, 229, 229, 255}
	// DefaultBackground is the color used for NamedColorBackground and nil backgrounds.
	DefaultBackground = color.RGBA{0, 0, 0, 255}
)

// Named color indices for semantic colors (used with NamedColor).
const (
	NamedColorForeground = 256
	NamedColorBackground = 257
)

// IndexedColor refers to an entry of Palette. Use it as a value so cells never share it.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color, returning a placeholder (actual resolution happens at render time).
func (c IndexedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// NamedColor refers to a semantic color such as the default foreground.
// Use it as a value so cells never share it.
type NamedColor struct {
	Name int
}

// RGBA implements color.Color, returning a placeholder (actual resolution happens at render time).
func (c NamedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// ResolveColor converts c to RGBA using Palette.
// A nil color resolves to the default foreground or background depending on fg.
func ResolveColor(c color.Color, fg bool) color.RGBA {
	def := DefaultBackground
	if fg {
		def = DefaultForeground
	}

	switch v := c.(type) {
	case nil:
		return def
	case color.RGBA:
		return v
	case IndexedColor:
		if v.Index >= 0 && v.Index < len(Palette) {
			return Palette[v.Index]
		}
		return def
	case NamedColor:
		switch {
		case v.Name >= 0 && v.Name < 16:
			return Palette[v.Name]
		case v.Name == NamedColorForeground:
			return DefaultForeground
		case v.Name == NamedColorBackground:
			return DefaultBackground
		}
		return def
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}
}
