// Package starlight is a standalone CSS flexbox layout engine.
//
// The host builds a tree of nodes annotated with CSS-style properties,
// optionally registers measurement delegates on replaced leaves (text,
// images), and asks the root for a layout pass; every node then carries
// its resolved offset, size and box edges.
//
// The engine computes — it never paints, parses CSS text or shapes
// text itself.
package starlight

import (
	"github.com/Krispeckt/starlight/layout"
	"github.com/Krispeckt/starlight/measure"
)

// Type aliases for public API.
//
// These aliases re-export types from the engine modules to present a
// unified and concise public interface under the `starlight` namespace.
type (
	Node   = layout.Node   // one box in a layout tree
	Config = layout.Config // per-tree tunables, passed at node construction
	Value  = layout.Value  // unit-tagged scalar returned by style getters
	Size   = layout.Size   // resolved width/height pair
	Length = layout.Length // CSS-style length (point/percent/keyword/calc)

	MeasureDelegate  = layout.MeasureDelegate  // intrinsic sizing capability of replaced leaves
	BaselineDelegate = layout.BaselineDelegate // optional baseline capability

	TextMeasurer  = measure.Text  // text intrinsic sizing over a TrueType font
	ImageMeasurer = measure.Image // image intrinsic sizing with aspect-fit
)

// Undefined is the boundary sentinel for "indefinite"; pass it as an
// owner size to leave that axis unconstrained.
const Undefined = layout.Undefined

// Node and config constructors.
var (
	// NewNode creates a free root node with default styles.
	NewNode = layout.NewNode

	// NewNodeWithConfig creates a free root node bound to a config.
	NewNodeWithConfig = layout.NewNodeWithConfig

	// NewConfig creates a config with default settings.
	NewConfig = layout.NewConfig
)

// Length constructors for programmatic style values.
var (
	Point      = layout.Point
	Percent    = layout.Percent
	Auto       = layout.Auto
	MaxContent = layout.MaxContent
	FitContent = layout.FitContent
	Calc       = layout.Calc
)

// Measurement delegate constructors.
var (
	// NewTextMeasurer builds a text measurement delegate for a font.
	NewTextMeasurer = measure.NewText

	// NewImageMeasurer builds an image measurement delegate from
	// intrinsic pixel dimensions.
	NewImageMeasurer = measure.NewImage

	// NewImageMeasurerFromReader reads an image header to obtain the
	// intrinsic dimensions.
	NewImageMeasurerFromReader = measure.NewImageFromReader
)

// Font management utilities re-exported from the render subsystem.
var (
	// LoadFont loads a font from a file path.
	LoadFont = measure.LoadFont

	// LoadFontFromBytes loads a font directly from an in-memory byte slice.
	LoadFontFromBytes = measure.LoadFontFromBytes

	// MustLoadFont loads a font and panics on failure.
	MustLoadFont = measure.MustLoadFont

	// MustLoadFontFromBytes loads a font from memory and panics on failure.
	MustLoadFontFromBytes = measure.MustLoadFontFromBytes

	// SetFontCacheCapacity limits the number of cached font faces.
	SetFontCacheCapacity = measure.SetFontCacheCapacity

	// ClearFontCache clears all cached font faces.
	ClearFontCache = measure.ClearFontCache
)
