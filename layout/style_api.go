package layout

// Style setters. Every setter compares against the stored value and
// marks the node (and its ancestors) dirty only on a real change.
// Logical Start/End edges resolve against the node's effective
// direction at call time.

func (n *Node) setLength(dst *Length, v Length) {
	if dst.equal(v) {
		return
	}
	*dst = v
	n.MarkDirty()
}

// SetDirection sets the inline base direction.
func (n *Node) SetDirection(v Direction) {
	if n.style.direction == v {
		return
	}
	n.style.direction = v
	n.MarkDirty()
}

// SetFlexDirection sets the main axis.
func (n *Node) SetFlexDirection(v FlexDirection) {
	if n.style.flexDirection == v {
		return
	}
	n.style.flexDirection = v
	n.MarkDirty()
}

// SetJustifyContent sets the main-axis distribution.
func (n *Node) SetJustifyContent(v JustifyContent) {
	if n.style.justifyContent == v {
		return
	}
	n.style.justifyContent = v
	n.MarkDirty()
}

// SetAlignContent sets the multi-line cross-axis distribution.
func (n *Node) SetAlignContent(v AlignContent) {
	if n.style.alignContent == v {
		return
	}
	n.style.alignContent = v
	n.MarkDirty()
}

// SetAlignItems sets the default cross-axis alignment of children.
// Auto is not a valid align-items value and is ignored.
func (n *Node) SetAlignItems(v FlexAlign) {
	if v == FlexAlignAuto || n.style.alignItems == v {
		return
	}
	n.style.alignItems = v
	n.MarkDirty()
}

// SetAlignSelf overrides the container's align-items for this node.
func (n *Node) SetAlignSelf(v FlexAlign) {
	if n.style.alignSelf == v {
		return
	}
	n.style.alignSelf = v
	n.MarkDirty()
}

// SetPositionType switches the node between in-flow and absolute.
func (n *Node) SetPositionType(v PositionType) {
	if n.style.position == v {
		return
	}
	n.style.position = v
	n.MarkDirty()
}

// SetFlexWrap sets line wrapping.
func (n *Node) SetFlexWrap(v FlexWrap) {
	if n.style.flexWrap == v {
		return
	}
	n.style.flexWrap = v
	n.MarkDirty()
}

// SetDisplay sets the display model.
func (n *Node) SetDisplay(v Display) {
	if n.style.display == v {
		return
	}
	n.style.display = v
	n.MarkDirty()
}

// SetBoxSizing selects which box width/height denote.
func (n *Node) SetBoxSizing(v BoxSizing) {
	if n.style.boxSizing == v {
		return
	}
	n.style.boxSizing = v
	n.MarkDirty()
}

// SetAspectRatio sets width/height; 0 unsets, negatives are ignored.
func (n *Node) SetAspectRatio(v float64) {
	if v < 0 || n.style.aspectRatio == v {
		return
	}
	n.style.aspectRatio = v
	n.MarkDirty()
}

// SetOrder sets the flex ordering key.
func (n *Node) SetOrder(v int) {
	if n.style.order == v {
		return
	}
	n.style.order = v
	n.MarkDirty()
}

// SetFlex is the shorthand: grow = v, shrink = 1, basis = 0.
func (n *Node) SetFlex(v float64) {
	n.SetFlexGrow(v)
	n.SetFlexShrink(1)
	n.SetFlexBasis(0)
}

// SetFlexGrow sets the grow factor; negatives are ignored.
func (n *Node) SetFlexGrow(v float64) {
	if v < 0 || n.style.flexGrow == v {
		return
	}
	n.style.flexGrow = v
	n.MarkDirty()
}

// SetFlexShrink sets the shrink factor; negatives are ignored.
func (n *Node) SetFlexShrink(v float64) {
	if v < 0 || n.style.flexShrink == v {
		return
	}
	n.style.flexShrink = v
	n.MarkDirty()
}

// SetFlexBasis sets the flex base size in points.
func (n *Node) SetFlexBasis(v float64) { n.setLength(&n.style.flexBasis, Point(v)) }

// SetFlexBasisPercent sets the flex base size as a percentage of the
// container's main size.
func (n *Node) SetFlexBasisPercent(v float64) { n.setLength(&n.style.flexBasis, Percent(v)) }

// SetFlexBasisAuto defers the base size to the main size property.
func (n *Node) SetFlexBasisAuto() { n.setLength(&n.style.flexBasis, Auto()) }

// SetPosition sets one inset edge in points.
func (n *Node) SetPosition(edge Edge, v float64) {
	if n.style.inset.set(edge, Point(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetPositionPercent sets one inset edge as a percentage.
func (n *Node) SetPositionPercent(edge Edge, v float64) {
	if n.style.inset.set(edge, Percent(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetPositionAuto unsets one inset edge.
func (n *Node) SetPositionAuto(edge Edge) {
	if n.style.inset.set(edge, Auto(), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetMargin sets one margin edge in points.
func (n *Node) SetMargin(edge Edge, v float64) {
	if n.style.margin.set(edge, Point(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetMarginPercent sets one margin edge as a percentage of the owner
// width.
func (n *Node) SetMarginPercent(edge Edge, v float64) {
	if n.style.margin.set(edge, Percent(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetMarginAuto makes one margin edge absorb free space.
func (n *Node) SetMarginAuto(edge Edge) {
	if n.style.margin.set(edge, Auto(), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetPadding sets one padding edge in points; auto is not a padding
// value.
func (n *Node) SetPadding(edge Edge, v float64) {
	if n.style.padding.set(edge, Point(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetPaddingPercent sets one padding edge as a percentage of the owner
// width.
func (n *Node) SetPaddingPercent(edge Edge, v float64) {
	if n.style.padding.set(edge, Percent(v), n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetBorder sets one border width in pixels.
func (n *Node) SetBorder(edge Edge, v float64) {
	if n.style.border.set(edge, v, n.IsRTL()) {
		n.MarkDirty()
	}
}

// SetGap sets a gutter in points.
func (n *Node) SetGap(gutter Gutter, v float64) { n.setGap(gutter, Point(v)) }

// SetGapPercent sets a gutter as a percentage of the corresponding
// content-box axis.
func (n *Node) SetGapPercent(gutter Gutter, v float64) { n.setGap(gutter, Percent(v)) }

func (n *Node) setGap(gutter Gutter, v Length) {
	changed := false
	if gutter == GutterColumn || gutter == GutterAll {
		if !n.style.columnGap.equal(v) {
			n.style.columnGap = v
			changed = true
		}
	}
	if gutter == GutterRow || gutter == GutterAll {
		if !n.style.rowGap.equal(v) {
			n.style.rowGap = v
			changed = true
		}
	}
	if changed {
		n.MarkDirty()
	}
}

// Width family.

func (n *Node) SetWidth(v float64)           { n.setLength(&n.style.width, Point(v)) }
func (n *Node) SetWidthPercent(v float64)    { n.setLength(&n.style.width, Percent(v)) }
func (n *Node) SetWidthAuto()                { n.setLength(&n.style.width, Auto()) }
func (n *Node) SetWidthMaxContent()          { n.setLength(&n.style.width, MaxContent()) }
func (n *Node) SetWidthFitContent()          { n.setLength(&n.style.width, FitContent()) }
func (n *Node) SetMinWidth(v float64)        { n.setLength(&n.style.minWidth, Point(v)) }
func (n *Node) SetMinWidthPercent(v float64) { n.setLength(&n.style.minWidth, Percent(v)) }
func (n *Node) SetMaxWidth(v float64)        { n.setLength(&n.style.maxWidth, Point(v)) }
func (n *Node) SetMaxWidthPercent(v float64) { n.setLength(&n.style.maxWidth, Percent(v)) }

// SetWidthLength sets the width from a Length value; this is the only
// route to calc() widths.
func (n *Node) SetWidthLength(l Length) { n.setLength(&n.style.width, l) }

// Height family.

func (n *Node) SetHeight(v float64)           { n.setLength(&n.style.height, Point(v)) }
func (n *Node) SetHeightPercent(v float64)    { n.setLength(&n.style.height, Percent(v)) }
func (n *Node) SetHeightAuto()                { n.setLength(&n.style.height, Auto()) }
func (n *Node) SetHeightMaxContent()          { n.setLength(&n.style.height, MaxContent()) }
func (n *Node) SetHeightFitContent()          { n.setLength(&n.style.height, FitContent()) }
func (n *Node) SetMinHeight(v float64)        { n.setLength(&n.style.minHeight, Point(v)) }
func (n *Node) SetMinHeightPercent(v float64) { n.setLength(&n.style.minHeight, Percent(v)) }
func (n *Node) SetMaxHeight(v float64)        { n.setLength(&n.style.maxHeight, Point(v)) }
func (n *Node) SetMaxHeightPercent(v float64) { n.setLength(&n.style.maxHeight, Percent(v)) }

// SetHeightLength sets the height from a Length value.
func (n *Node) SetHeightLength(l Length) { n.setLength(&n.style.height, l) }

// SetFlexBasisLength sets the flex base size from a Length value.
func (n *Node) SetFlexBasisLength(l Length) { n.setLength(&n.style.flexBasis, l) }

// Style getters; scalar properties return their primitive, length-valued
// properties return a unit-tagged Value.

func (n *Node) FlexDirection() FlexDirection   { return n.style.flexDirection }
func (n *Node) JustifyContent() JustifyContent { return n.style.justifyContent }
func (n *Node) AlignContent() AlignContent     { return n.style.alignContent }
func (n *Node) AlignItems() FlexAlign          { return n.style.alignItems }
func (n *Node) AlignSelf() FlexAlign           { return n.style.alignSelf }
func (n *Node) PositionType() PositionType     { return n.style.position }
func (n *Node) FlexWrap() FlexWrap             { return n.style.flexWrap }
func (n *Node) Display() Display               { return n.style.display }
func (n *Node) BoxSizing() BoxSizing           { return n.style.boxSizing }
func (n *Node) AspectRatio() float64           { return n.style.aspectRatio }
func (n *Node) Order() int                     { return n.style.order }
func (n *Node) FlexGrow() float64              { return n.style.flexGrow }
func (n *Node) FlexShrink() float64            { return n.style.flexShrink }

func (n *Node) FlexBasis() Value { return n.style.flexBasis.asValue() }
func (n *Node) Width() Value     { return n.style.width.asValue() }
func (n *Node) Height() Value    { return n.style.height.asValue() }
func (n *Node) MinWidth() Value  { return n.style.minWidth.asValue() }
func (n *Node) MaxWidth() Value  { return n.style.maxWidth.asValue() }
func (n *Node) MinHeight() Value { return n.style.minHeight.asValue() }
func (n *Node) MaxHeight() Value { return n.style.maxHeight.asValue() }

// Position returns one inset edge.
func (n *Node) Position(edge Edge) Value {
	return n.style.inset.get(edge, n.IsRTL()).asValue()
}

// Margin returns one margin edge.
func (n *Node) Margin(edge Edge) Value {
	return n.style.margin.get(edge, n.IsRTL()).asValue()
}

// Padding returns one padding edge.
func (n *Node) Padding(edge Edge) Value {
	return n.style.padding.get(edge, n.IsRTL()).asValue()
}

// Border returns one border width in pixels.
func (n *Node) Border(edge Edge) float64 {
	return n.style.border.get(edge, n.IsRTL())
}

// Gap returns one gutter; GutterAll reads the row gutter.
func (n *Node) Gap(gutter Gutter) Value {
	if gutter == GutterColumn {
		return n.style.columnGap.asValue()
	}
	return n.style.rowGap.asValue()
}
