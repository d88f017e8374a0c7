package layout

// layoutAbsoluteChild places one out-of-flow child against its
// container. Percentages and the inset pair arithmetic resolve against
// the container's padding box; the written-back offset is relative to
// the container's content origin, translated by border and padding like
// the in-flow siblings. Absolute children never influence their
// siblings or the container's size.
func layoutAbsoluteChild(b *box, child *Node, containerSize Size, dir Direction) {
	padBoxW := maxf(containerSize.Width-b.border.horizontal(), 0)
	padBoxH := maxf(containerSize.Height-b.border.vertical(), 0)
	pb := Size{Width: padBoxW, Height: padBoxH}

	cb := resolveBox(child, padBoxW, padBoxH)
	st := &child.style
	rtl := dir == DirectionRTL

	left, hasLeft := st.inset.Left.Resolve(padBoxW)
	right, hasRight := st.inset.Right.Resolve(padBoxW)
	top, hasTop := st.inset.Top.Resolve(padBoxH)
	bottom, hasBottom := st.inset.Bottom.Resolve(padBoxH)

	// Size per axis: an explicit size wins; both insets definite derive
	// the size from the leftover span; otherwise the content decides.
	width := cb.width
	if isUndefined(width) && hasLeft && hasRight {
		width = cb.clampAxis(DimensionHorizontal,
			maxf(padBoxW-left-right-cb.marginAxisSum(DimensionHorizontal), 0))
	}
	height := cb.height
	if isUndefined(height) && hasTop && hasBottom {
		height = cb.clampAxis(DimensionVertical,
			maxf(padBoxH-top-bottom-cb.marginAxisSum(DimensionVertical), 0))
	}

	var cc Constraints
	if isUndefined(width) {
		cc[DimensionHorizontal] = AtMost(maxf(padBoxW-cb.marginAxisSum(DimensionHorizontal), 0))
	} else {
		cc[DimensionHorizontal] = Definite(width)
	}
	if isUndefined(height) {
		cc[DimensionVertical] = AtMost(maxf(padBoxH-cb.marginAxisSum(DimensionVertical), 0))
	} else {
		cc[DimensionVertical] = Definite(height)
	}
	size, _ := layoutNode(child, cc, pb, dir)
	width, height = size.Width, size.Height

	// Auto margins absorb the span left between two definite insets.
	if hasLeft && hasRight && cb.hasAutoMargin(DimensionHorizontal) {
		leftover := padBoxW - left - right - width - cb.marginAxisSum(DimensionHorizontal)
		if leftover > 0 {
			distributeAutoMargin(&cb, DimensionHorizontal, leftover)
		}
	}
	if hasTop && hasBottom && cb.hasAutoMargin(DimensionVertical) {
		leftover := padBoxH - top - bottom - height - cb.marginAxisSum(DimensionVertical)
		if leftover > 0 {
			distributeAutoMargin(&cb, DimensionVertical, leftover)
		}
	}

	contentLeft := b.border.Left + b.padding.Left
	contentTop := b.border.Top + b.padding.Top
	contentRight := containerSize.Width - b.border.Right - b.padding.Right
	contentBottom := containerSize.Height - b.border.Bottom - b.padding.Bottom

	var x float64
	switch {
	case hasLeft:
		x = contentLeft + left + cb.margin.Left
	case hasRight:
		x = contentRight - right - width - cb.margin.Right
	case rtl:
		// The static position in an RTL container is the end corner.
		x = contentRight - width - cb.margin.Right
	default:
		x = contentLeft + cb.margin.Left
	}

	var y float64
	switch {
	case hasTop:
		y = contentTop + top + cb.margin.Top
	case hasBottom:
		y = contentBottom - bottom - height - cb.margin.Bottom
	default:
		y = contentTop + cb.margin.Top
	}

	child.result.Left = x
	child.result.Top = y
	child.result.Margin = cb.margin
}

// distributeAutoMargin splits leftover space across the axis' auto
// margins: both sides share it equally, a single side takes it all.
func distributeAutoMargin(cb *box, d Dimension, leftover float64) {
	leadIdx, trailIdx := EdgeTop, EdgeBottom
	if d == DimensionHorizontal {
		leadIdx, trailIdx = EdgeLeft, EdgeRight
	}
	lead, trail := cb.autoMargin[leadIdx], cb.autoMargin[trailIdx]
	switch {
	case lead && trail:
		addMargin(cb, d, leftover/2, leftover/2)
	case lead:
		addMargin(cb, d, leftover, 0)
	case trail:
		addMargin(cb, d, 0, leftover)
	}
}

func addMargin(cb *box, d Dimension, lead, trail float64) {
	if d == DimensionHorizontal {
		cb.margin.Left += lead
		cb.margin.Right += trail
	} else {
		cb.margin.Top += lead
		cb.margin.Bottom += trail
	}
}
