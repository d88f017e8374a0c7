// Package measure provides ready-made measurement delegates for the
// two common kinds of replaced leaves: text runs and images. Both are
// pure with respect to layout inputs and never touch the node tree.
package measure

import "github.com/Krispeckt/starlight/internal/render"

// Font is a TrueType font prepared for measurement.
type Font = render.Font

// Font management utilities.
//
// These functions provide font loading, caching, and lifecycle control
// through the internal render subsystem.
var (
	// LoadFont loads a font from a file path.
	LoadFont = render.LoadFont

	// LoadFontFromBytes loads a font directly from an in-memory byte slice.
	LoadFontFromBytes = render.LoadFontFromBytes

	// MustLoadFont loads a font and panics on failure.
	MustLoadFont = render.MustLoadFont

	// MustLoadFontFromBytes loads a font from memory and panics on failure.
	MustLoadFontFromBytes = render.MustLoadFontFromBytes

	// SetFontCacheCapacity limits the number of cached font faces to conserve memory.
	SetFontCacheCapacity = render.SetFontCacheCapacity

	// ClearFontCache clears all cached font data.
	ClearFontCache = render.ClearFontCache
)
