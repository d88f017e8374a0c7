package layout

// MeasureDelegate is the capability a replaced leaf registers to report
// its intrinsic size. The engine calls Measure synchronously during a
// pass; the delegate must be pure with respect to the layout inputs and
// must never mutate the tree.
//
// Sizes are passed in physical pixels (layout units scaled by the
// node's config); a size is 0 whenever its mode is Undefined.
type MeasureDelegate interface {
	Measure(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size
}

// BaselineDelegate is the optional second capability of a measurement
// delegate: the distance from the top of the measured box to its
// dominant baseline, in physical pixels.
type BaselineDelegate interface {
	Baseline(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) float64
}

// measureKey is the constraint signature a measurement result is cached
// under for the duration of one layout pass.
type measureKey struct {
	width      float64
	widthMode  MeasureMode
	height     float64
	heightMode MeasureMode
}

type measureEntry struct {
	size     Size
	baseline float64
	hasBase  bool
}

// invokeMeasure calls the node's delegate under the given per-axis
// constraints, with caching and the exact-size short circuit: when both
// axes are exact the constraint sizes win and the callback is skipped.
// Results come back in layout units.
func (n *Node) invokeMeasure(c Constraints) (Size, float64, bool) {
	scale := n.scale()
	key := measureKey{widthMode: c[DimensionHorizontal].Mode(), heightMode: c[DimensionVertical].Mode()}
	if key.widthMode != MeasureModeUndefined {
		key.width = c[DimensionHorizontal].Size() * scale
	}
	if key.heightMode != MeasureModeUndefined {
		key.height = c[DimensionVertical].Size() * scale
	}

	if e, ok := n.measureCache[key]; ok {
		return e.size, e.baseline, e.hasBase
	}

	var size Size
	if key.widthMode == MeasureModeExactly && key.heightMode == MeasureModeExactly {
		size = Size{Width: key.width, Height: key.height}
	} else {
		size = n.measure.Measure(key.width, key.widthMode, key.height, key.heightMode)
	}

	baseline := 0.0
	hasBase := false
	if bd, ok := n.measure.(BaselineDelegate); ok {
		baseline = bd.Baseline(key.width, key.widthMode, key.height, key.heightMode) / scale
		hasBase = true
	}
	size.Width /= scale
	size.Height /= scale

	if n.measureCache == nil {
		n.measureCache = make(map[measureKey]measureEntry)
	}
	n.measureCache[key] = measureEntry{size: size, baseline: baseline, hasBase: hasBase}
	return size, baseline, hasBase
}

// dropMeasureCaches clears per-pass measurement caches over the subtree.
func (n *Node) dropMeasureCaches() {
	n.measureCache = nil
	for _, c := range n.children {
		c.dropMeasureCaches()
	}
}
