package layout

// box carries one node's style lengths resolved to pixels for a single
// pass: the box-model edges, the border-box size per axis when definite,
// and the border-box min/max brackets.
type box struct {
	margin     EdgeFloats
	autoMargin [4]bool // indexed by EdgeLeft..EdgeBottom
	padding    EdgeFloats
	border     EdgeFloats

	// width/height are border-box sizes; Undefined when indefinite.
	width, height float64

	minWidth, minHeight float64 // border-box, 0 when unset
	maxWidth, maxHeight float64 // border-box, Undefined when unset

	aspectRatio float64
}

// resolveEdge resolves a Length edge against ref, clamping negatives to
// zero. Unresolvable values collapse to zero.
func resolveEdge(l Length, ref float64) float64 {
	v, ok := l.Resolve(ref)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// resolveBox resolves n's box model against the owner's content sizes.
// ownerWidth is the percentage base for padding and margin on every
// edge; sizes resolve against their own axis.
func resolveBox(n *Node, ownerWidth, ownerHeight float64) box {
	st := &n.style
	b := box{aspectRatio: st.aspectRatio}

	b.padding = EdgeFloats{
		Left:   resolveEdge(st.padding.Left, ownerWidth),
		Right:  resolveEdge(st.padding.Right, ownerWidth),
		Top:    resolveEdge(st.padding.Top, ownerWidth),
		Bottom: resolveEdge(st.padding.Bottom, ownerWidth),
	}
	b.border = EdgeFloats{
		Left:   maxf(st.border.Left, 0),
		Right:  maxf(st.border.Right, 0),
		Top:    maxf(st.border.Top, 0),
		Bottom: maxf(st.border.Bottom, 0),
	}

	// Auto margins resolve to zero here; the free space they absorb is
	// assigned during alignment.
	b.autoMargin = [4]bool{
		st.margin.Left.IsAuto(), st.margin.Right.IsAuto(),
		st.margin.Top.IsAuto(), st.margin.Bottom.IsAuto(),
	}
	b.margin = EdgeFloats{
		Left:   resolveMargin(st.margin.Left, ownerWidth),
		Right:  resolveMargin(st.margin.Right, ownerWidth),
		Top:    resolveMargin(st.margin.Top, ownerWidth),
		Bottom: resolveMargin(st.margin.Bottom, ownerWidth),
	}

	contentBox := st.boxSizing == BoxSizingContentBox

	b.width = resolveSize(st.width, ownerWidth, contentBox, b.padding.horizontal()+b.border.horizontal())
	b.height = resolveSize(st.height, ownerHeight, contentBox, b.padding.vertical()+b.border.vertical())

	b.minWidth = definiteOr(resolveSize(st.minWidth, ownerWidth, contentBox, b.padding.horizontal()+b.border.horizontal()), 0)
	b.minHeight = definiteOr(resolveSize(st.minHeight, ownerHeight, contentBox, b.padding.vertical()+b.border.vertical()), 0)
	b.maxWidth = resolveSize(st.maxWidth, ownerWidth, contentBox, b.padding.horizontal()+b.border.horizontal())
	b.maxHeight = resolveSize(st.maxHeight, ownerHeight, contentBox, b.padding.vertical()+b.border.vertical())

	// A min above its max raises the max.
	if !isUndefined(b.maxWidth) && b.maxWidth < b.minWidth {
		b.maxWidth = b.minWidth
	}
	if !isUndefined(b.maxHeight) && b.maxHeight < b.minHeight {
		b.maxHeight = b.minHeight
	}

	b.width = b.clampAxis(DimensionHorizontal, b.width)
	b.height = b.clampAxis(DimensionVertical, b.height)
	b.applyAspectRatio()
	return b
}

// resolveMargin resolves a margin edge; negatives are legal for margins.
func resolveMargin(l Length, ref float64) float64 {
	v, ok := l.Resolve(ref)
	if !ok {
		return 0
	}
	return v
}

// resolveSize resolves a dimension length to a border-box size.
// Under content-box sizing the style value denotes the content box, so
// the edge extent is added. Indefinite lengths return Undefined.
func resolveSize(l Length, ref float64, contentBox bool, edges float64) float64 {
	v, ok := l.Resolve(ref)
	if !ok || isUndefined(v) {
		return Undefined
	}
	if v < 0 {
		v = 0
	}
	if contentBox {
		v += edges
	}
	return v
}

// size reads the resolved border-box size on one axis.
func (b *box) size(d Dimension) float64 {
	if d == DimensionHorizontal {
		return b.width
	}
	return b.height
}

// hasDefiniteSize reports whether the axis resolved to a real size.
func (b *box) hasDefiniteSize(d Dimension) bool {
	return !isUndefined(b.size(d))
}

// edgeExtent is border+padding summed on one axis.
func (b *box) edgeExtent(d Dimension) float64 {
	return b.padding.axisSum(d) + b.border.axisSum(d)
}

// inner converts a border-box size on d to its content-box size.
func (b *box) inner(d Dimension, borderBox float64) float64 {
	return maxf(borderBox-b.edgeExtent(d), 0)
}

// clampAxis brackets a border-box size by the axis min/max. Indefinite
// sizes pass through untouched.
func (b *box) clampAxis(d Dimension, v float64) float64 {
	if isUndefined(v) {
		return v
	}
	if d == DimensionHorizontal {
		return clampf(v, b.minWidth, b.maxWidth)
	}
	return clampf(v, b.minHeight, b.maxHeight)
}

// applyAspectRatio derives a missing axis from the other using the
// width/height ratio, then re-clamps. When the clamp moves the derived
// side, the known side is re-derived and re-clamped once more.
func (b *box) applyAspectRatio() {
	r := b.aspectRatio
	if r <= 0 || isUndefined(r) {
		return
	}
	switch {
	case b.hasDefiniteSize(DimensionHorizontal) && !b.hasDefiniteSize(DimensionVertical):
		h := b.width / r
		clamped := b.clampAxis(DimensionVertical, h)
		if clamped != h {
			b.width = b.clampAxis(DimensionHorizontal, clamped*r)
		}
		b.height = clamped
	case b.hasDefiniteSize(DimensionVertical) && !b.hasDefiniteSize(DimensionHorizontal):
		w := b.height * r
		clamped := b.clampAxis(DimensionHorizontal, w)
		if clamped != w {
			b.height = b.clampAxis(DimensionVertical, clamped/r)
		}
		b.width = clamped
	}
}

// marginAxisSum is the resolved margin extent on one axis.
func (b *box) marginAxisSum(d Dimension) float64 {
	return b.margin.axisSum(d)
}

// hasAutoMargin reports an auto margin on either side of the axis.
func (b *box) hasAutoMargin(d Dimension) bool {
	if d == DimensionHorizontal {
		return b.autoMargin[EdgeLeft] || b.autoMargin[EdgeRight]
	}
	return b.autoMargin[EdgeTop] || b.autoMargin[EdgeBottom]
}

// autoMarginCount counts auto margins on the axis.
func (b *box) autoMarginCount(d Dimension) int {
	count := 0
	if d == DimensionHorizontal {
		if b.autoMargin[EdgeLeft] {
			count++
		}
		if b.autoMargin[EdgeRight] {
			count++
		}
	} else {
		if b.autoMargin[EdgeTop] {
			count++
		}
		if b.autoMargin[EdgeBottom] {
			count++
		}
	}
	return count
}

// childConstraint derives the constraint a child sees on one axis from
// this box's resolved size and the incoming constraint: exact inner
// size when definite, the remaining cap under an at-most bound, and
// unconstrained otherwise.
func (b *box) childConstraint(d Dimension, incoming OneSideConstraint) OneSideConstraint {
	if b.hasDefiniteSize(d) {
		return Definite(b.inner(d, b.size(d)))
	}
	limit := b.size(d)
	if isUndefined(limit) && incoming.hasBound() {
		limit = incoming.Size()
	}
	if !isUndefined(b.maxAxis(d)) && (isUndefined(limit) || b.maxAxis(d) < limit) {
		limit = b.maxAxis(d)
	}
	if isUndefined(limit) {
		return Indefinite()
	}
	return AtMost(b.inner(d, limit))
}

// maxAxis reads the axis max bracket.
func (b *box) maxAxis(d Dimension) float64 {
	if d == DimensionHorizontal {
		return b.maxWidth
	}
	return b.maxHeight
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
