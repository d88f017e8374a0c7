package measure

import (
	"fmt"
	"image"
	_ "image/jpeg" // registered decoders: only PNG and JPEG headers are read
	_ "image/png"
	"io"

	"github.com/Krispeckt/starlight/layout"
)

// Image measures a replaced image leaf from its intrinsic pixel
// dimensions. Bounded constraints scale the box down uniformly
// (aspect-fit) and never scale it up; an exact axis pins that side,
// larger or smaller than the intrinsic size.
type Image struct {
	width  float64
	height float64
}

// NewImage builds an image measurement delegate from known intrinsic
// dimensions. Non-positive dimensions measure as zero.
func NewImage(width, height float64) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{width: width, height: height}
}

// NewImageFromReader reads just the image header to obtain the
// intrinsic dimensions. PNG and JPEG are supported.
func NewImageFromReader(r io.Reader) (*Image, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	return NewImage(float64(cfg.Width), float64(cfg.Height)), nil
}

// IntrinsicSize returns the unscaled pixel dimensions.
func (m *Image) IntrinsicSize() layout.Size {
	return layout.Size{Width: m.width, Height: m.height}
}

// Measure implements layout.MeasureDelegate. An exact axis pins that
// side and derives the other from the intrinsic ratio; at-most bounds
// shrink the box uniformly until it fits.
func (m *Image) Measure(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) layout.Size {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return layout.Size{}
	}
	ratio := w / h

	switch {
	case widthMode == layout.MeasureModeExactly && heightMode != layout.MeasureModeExactly:
		w = width
		h = width / ratio
	case heightMode == layout.MeasureModeExactly && widthMode != layout.MeasureModeExactly:
		h = height
		w = height * ratio
	case widthMode == layout.MeasureModeExactly && heightMode == layout.MeasureModeExactly:
		return layout.Size{Width: width, Height: height}
	}

	// Fit inside at-most bounds without changing the ratio.
	scale := 1.0
	if widthMode == layout.MeasureModeAtMost && w > width && w > 0 {
		scale = width / w
	}
	if heightMode == layout.MeasureModeAtMost && h*scale > height && h > 0 {
		scale = height / h
	}
	return layout.Size{Width: w * scale, Height: h * scale}
}
