package layout

// CalculateLayout runs a full layout pass over the tree rooted at n.
// ownerWidth and ownerHeight define the root containing block — pass
// Undefined for an indefinite axis — and serve as the percentage base
// for the root's own styles. When the root has no width/height of its
// own, its outer box is capped by the owner sizes.
//
// After the call every node in the tree is clean and carries its
// resolved offset, size and box edges.
func (n *Node) CalculateLayout(ownerWidth, ownerHeight float64, ownerDirection Direction) {
	n.dropMeasureCaches()
	n.MarkDirty()

	dir := ownerDirection
	if dir != DirectionRTL {
		dir = DirectionLTR
	}

	b := resolveBox(n, ownerWidth, ownerHeight)
	var c Constraints
	for _, d := range []Dimension{DimensionHorizontal, DimensionVertical} {
		owner := ownerWidth
		if d == DimensionVertical {
			owner = ownerHeight
		}
		switch {
		case b.hasDefiniteSize(d):
			c[d] = Definite(b.size(d))
		case !isUndefined(owner):
			c[d] = AtMost(maxf(owner-b.marginAxisSum(d), 0))
		default:
			c[d] = Indefinite()
		}
	}

	layoutNode(n, c, Size{Width: ownerWidth, Height: ownerHeight}, dir)
	n.result.Left = 0
	n.result.Top = 0
	n.result.Margin = b.margin
	n.markClean()
}

// layoutNode computes n's border-box size and baseline under the given
// border-box constraints (margins excluded; the caller accounts for
// them). pb is the percentage base, dir the inherited direction. The
// subtree is laid out as a side effect; child offsets are written
// relative to n's border box.
//
// A clean node whose cached input signature matches returns its cached
// output without recomputation.
func layoutNode(n *Node, c Constraints, pb Size, dir Direction) (Size, float64) {
	if n.style.direction != DirectionInherit {
		dir = n.style.direction
	}
	n.resolvedDir = dir

	if !n.dirty && n.cache.matches(c, dir) && n.cache.pb == pb {
		return n.cache.size, n.cache.baseline
	}

	b := resolveBox(n, pb.Width, pb.Height)

	var size Size
	var baseline float64
	var hasBase bool
	if n.measure != nil {
		size, baseline, hasBase = measureLeaf(n, &b, c)
	} else {
		size, baseline, hasBase = layoutFlexChildren(n, &b, c, dir)
	}
	if !hasBase {
		baseline = size.Height
	}

	n.result.Width = size.Width
	n.result.Height = size.Height
	n.result.Padding = b.padding
	n.result.Border = b.border
	n.result.Baseline = baseline

	n.cache.store(c, dir, size, baseline)
	n.cache.pb = pb
	n.dirty = false
	return size, baseline
}

// measureLeaf sizes a replaced leaf through its measurement delegate.
// Definite axes are fixed; indefinite axes are offered the remaining
// cap, and the measured content size is extended by the box edges,
// bracketed by min/max and squared with the aspect ratio.
func measureLeaf(n *Node, b *box, c Constraints) (Size, float64, bool) {
	var mc Constraints
	for _, d := range []Dimension{DimensionHorizontal, DimensionVertical} {
		switch {
		case b.hasDefiniteSize(d):
			mc[d] = Definite(b.inner(d, b.size(d)))
		case c[d].IsDefinite():
			mc[d] = Definite(b.inner(d, c[d].Size()))
		default:
			mc[d] = b.childConstraint(d, c[d])
		}
	}

	content, baseline, hasBase := n.invokeMeasure(mc)

	size := Size{
		Width:  b.width,
		Height: b.height,
	}
	if isUndefined(size.Width) {
		size.Width = maxf(content.Width, 0) + b.edgeExtent(DimensionHorizontal)
	}
	if isUndefined(size.Height) {
		size.Height = maxf(content.Height, 0) + b.edgeExtent(DimensionVertical)
	}

	// The ratio binds measured boxes too: a fully content-sized leaf
	// keeps its measured width and derives the height.
	if b.aspectRatio > 0 && !b.hasDefiniteSize(DimensionHorizontal) && !b.hasDefiniteSize(DimensionVertical) {
		size.Height = size.Width / b.aspectRatio
	}

	size.Width = b.clampAxis(DimensionHorizontal, size.Width)
	size.Height = b.clampAxis(DimensionVertical, size.Height)
	size.Width = maxf(size.Width, b.edgeExtent(DimensionHorizontal))
	size.Height = maxf(size.Height, b.edgeExtent(DimensionVertical))

	// An exact incoming constraint is authoritative; the caller already
	// accounted for this node's brackets.
	if !b.hasDefiniteSize(DimensionHorizontal) && c[DimensionHorizontal].IsDefinite() {
		size.Width = c[DimensionHorizontal].Size()
	}
	if !b.hasDefiniteSize(DimensionVertical) && c[DimensionVertical].IsDefinite() {
		size.Height = c[DimensionVertical].Size()
	}

	if hasBase {
		baseline += b.border.Top + b.padding.Top
	}
	return size, baseline, hasBase
}
