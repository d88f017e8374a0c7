package layout

import (
	"math"
	"sort"
)

// flexEpsilon is the numerical tolerance of the flexing loop: residual
// free space at or below it is treated as zero.
const flexEpsilon = 1e-4

// flexItem carries one in-flow child through the flex pipeline.
type flexItem struct {
	node *Node
	box  box

	// baseSize and hypoMain are border-box main sizes: the flex base and
	// its min/max-clamped form.
	baseSize float64
	hypoMain float64

	// targetMain is the resolved main size after flexing.
	targetMain float64
	// crossSize is the resolved border-box cross size.
	crossSize float64

	// mainStyled reports whether the main size came from an explicit
	// style (size property or definite basis) rather than content.
	mainStyled bool

	frozen    bool
	unclamped float64

	align    FlexAlign
	baseline float64 // distance from the border-box top

	// mainPos/crossPos are border-box origins relative to the container
	// content origin; crossPos includes its line's cross start.
	mainPos  float64
	crossPos float64
}

// flexLine is one row or column of items produced by wrapping.
type flexLine struct {
	items []*flexItem
	// gaps is the total fixed main gap between the line's items.
	gaps float64
	// cross is the line cross extent; maxAscent supports baseline
	// alignment inside the line.
	cross      float64
	maxAscent  float64
	crossStart float64
}

// outerHypo is the hypothetical main size including margins.
func (it *flexItem) outerHypo(main Dimension) float64 {
	return it.hypoMain + it.box.marginAxisSum(main)
}

// outerTarget is the flexed main size including margins.
func (it *flexItem) outerTarget(main Dimension) float64 {
	return it.targetMain + it.box.marginAxisSum(main)
}

// outerCross is the resolved cross size including margins.
func (it *flexItem) outerCross(cross Dimension) float64 {
	return it.crossSize + it.box.marginAxisSum(cross)
}

// layoutFlexChildren sizes the container n and lays out its in-flow
// children with the flexbox algorithm, then returns the container's
// border-box size and baseline.
func layoutFlexChildren(n *Node, b *box, c Constraints, dir Direction) (Size, float64, bool) {
	st := &n.style
	fd := st.flexDirection
	main := fd.mainDimension()
	cross := fd.crossDimension()
	rtl := dir == DirectionRTL

	// Fixed sizes dictated by the caller win over the style resolution.
	containerMain := Undefined
	containerCross := Undefined
	if c[main].IsDefinite() {
		containerMain = c[main].Size()
	} else if b.hasDefiniteSize(main) {
		containerMain = b.size(main)
	}
	if c[cross].IsDefinite() {
		containerCross = c[cross].Size()
	} else if b.hasDefiniteSize(cross) {
		containerCross = b.size(cross)
	}

	innerMain := Undefined
	innerCross := Undefined
	if !isUndefined(containerMain) {
		innerMain = b.inner(main, containerMain)
	}
	if !isUndefined(containerCross) {
		innerCross = b.inner(cross, containerCross)
	}

	// Caps from at-most constraints bound content-driven sizing.
	availInnerMain := innerMain
	if isUndefined(availInnerMain) && c[main].hasBound() {
		availInnerMain = b.inner(main, minf(c[main].Size(), b.maxAxis(main)))
	}
	availInnerCross := innerCross
	if isUndefined(availInnerCross) && c[cross].hasBound() {
		availInnerCross = b.inner(cross, minf(c[cross].Size(), b.maxAxis(cross)))
	}

	// Percentage bases for children follow the container's content box;
	// axes that are still content-driven stay indefinite.
	pb := Size{Width: Undefined, Height: Undefined}
	if main == DimensionHorizontal {
		pb.Width, pb.Height = innerMain, innerCross
	} else {
		pb.Width, pb.Height = innerCross, innerMain
	}

	mainGap := resolveGapLength(st, main, innerMain)
	crossGap := resolveGapLength(st, cross, innerCross)

	// Step 1: collect in-flow items, stable-ordered by the order style.
	var items []*flexItem
	var absolutes []*Node
	for _, child := range n.children {
		if child.style.display == DisplayNone {
			child.result = Result{}
			continue
		}
		if child.style.position == PositionTypeAbsolute {
			absolutes = append(absolutes, child)
			continue
		}
		items = append(items, &flexItem{node: child})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].node.style.order < items[j].node.style.order
	})
	if fd.isReverse() {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	// Step 3: flex base and hypothetical main size per item.
	for _, it := range items {
		it.box = resolveBox(it.node, pb.Width, pb.Height)
		it.align = alignmentOf(it.node, st)
		resolveFlexBase(it, main, cross, innerMain, availInnerCross, pb, dir)
	}

	// Step 4: break items into flex lines.
	lineLimit := innerMain
	if isUndefined(lineLimit) {
		lineLimit = availInnerMain
	}
	lines := breakLines(items, st.flexWrap, lineLimit, mainGap, main)

	// Container main size when content-driven: the widest line,
	// fit-content-capped by the available bound.
	if isUndefined(containerMain) {
		contentMain := 0.0
		for _, ln := range lines {
			lineMain := ln.gaps
			for _, it := range ln.items {
				lineMain += it.outerHypo(main)
			}
			contentMain = maxf(contentMain, lineMain)
		}
		borderMain := contentMain + b.edgeExtent(main)
		if !sizeLength(st, main).isContentBasedMax() && c[main].hasBound() {
			borderMain = minf(borderMain, c[main].Size())
		}
		containerMain = b.clampAxis(main, borderMain)
		innerMain = b.inner(main, containerMain)
	}

	// Step 5: resolve flexible lengths per line.
	for i := range lines {
		resolveFlexibleLengths(&lines[i], innerMain, main)
	}

	// Step 6: cross-size every item, laying out content-sized items
	// under their flexed main size.
	for i := range lines {
		for _, it := range lines[i].items {
			sizeItemCross(it, main, cross, availInnerCross, pb, dir)
		}
	}

	// Step 7: line cross extents, with baseline bookkeeping.
	rowAxis := fd.isRowAxis()
	for i := range lines {
		ln := &lines[i]
		for _, it := range ln.items {
			if rowAxis && it.align == FlexAlignBaseline && !it.box.hasAutoMargin(cross) {
				ascent := it.box.margin.leading(cross) + it.baseline
				descent := it.outerCross(cross) - ascent
				ln.maxAscent = maxf(ln.maxAscent, ascent)
				ln.cross = maxf(ln.cross, ln.maxAscent+descent)
			}
			ln.cross = maxf(ln.cross, it.outerCross(cross))
		}
	}

	// Container cross size when content-driven: stacked lines.
	totalLinesCross := float64(len(lines)-1) * crossGap
	for i := range lines {
		totalLinesCross += lines[i].cross
	}
	if isUndefined(containerCross) {
		borderCross := totalLinesCross + b.edgeExtent(cross)
		if !sizeLength(st, cross).isContentBasedMax() && c[cross].hasBound() {
			borderCross = minf(borderCross, c[cross].Size())
		}
		containerCross = b.clampAxis(cross, borderCross)
		innerCross = b.inner(cross, containerCross)
	}

	// Steps 7/10: distribute cross free space across lines.
	if st.flexWrap == FlexWrapWrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	placeLinesCross(lines, st.alignContent, innerCross, totalLinesCross, crossGap)

	// Steps 8/9: position items on both axes, stretch, write back.
	containerSize := Size{}
	if main == DimensionHorizontal {
		containerSize.Width, containerSize.Height = containerMain, containerCross
	} else {
		containerSize.Width, containerSize.Height = containerCross, containerMain
	}
	for i := range lines {
		ln := &lines[i]
		placeLineMain(ln, st, innerMain, mainGap, main)
		placeLineItemsCross(ln, main, cross)
		for _, it := range ln.items {
			finalizeItem(b, it, main, cross, containerSize, pb, dir, rtl)
		}
	}

	// Step G: out-of-flow children against the padding box.
	for _, child := range absolutes {
		layoutAbsoluteChild(b, child, containerSize, dir)
	}

	baseline := 0.0
	hasBase := false
	if len(lines) > 0 && len(lines[0].items) > 0 {
		first := lines[0].items[0]
		if rowAxis {
			baseline = b.border.Top + b.padding.Top + first.crossPos + first.baseline
		} else {
			baseline = b.border.Top + b.padding.Top + lines[0].items[0].mainPos + first.baseline
		}
		hasBase = true
	}
	return containerSize, baseline, hasBase
}

// alignmentOf resolves an item's effective cross alignment.
func alignmentOf(child *Node, container *Style) FlexAlign {
	if child.style.alignSelf != FlexAlignAuto {
		return child.style.alignSelf
	}
	return container.alignItems
}

// sizeLength reads the container's style length on the given dimension.
func sizeLength(st *Style, d Dimension) Length {
	if d == DimensionHorizontal {
		return st.width
	}
	return st.height
}

// isContentBasedMax reports a max-content keyword, which ignores the
// available bound during content sizing. fit-content and auto cap at it.
func (l Length) isContentBasedMax() bool { return l.unit == UnitMaxContent }

// resolveGapLength resolves the gutter for one axis. Percentages refer
// to the container's content size on that axis and collapse to zero
// while it is indefinite.
func resolveGapLength(st *Style, d Dimension, inner float64) float64 {
	gap := st.rowGap
	if d == DimensionHorizontal {
		gap = st.columnGap
	}
	v, ok := gap.Resolve(inner)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// resolveFlexBase computes the flex base size and hypothetical main
// size of one item (border-box main sizes).
func resolveFlexBase(it *flexItem, main, cross Dimension, innerMain, availInnerCross float64, pb Size, dir Direction) {
	child := it.node
	contentBox := child.style.boxSizing == BoxSizingContentBox

	// An explicit basis wins; box-sizing applies to it like a main size.
	if v, ok := child.style.flexBasis.Resolve(innerMain); ok {
		if v < 0 {
			v = 0
		}
		if contentBox {
			v += it.box.edgeExtent(main)
		}
		it.baseSize = v
		it.mainStyled = true
		it.hypoMain = it.box.clampAxis(main, it.baseSize)
		return
	}

	// Then the item's own main size.
	if it.box.hasDefiniteSize(main) {
		it.baseSize = it.box.size(main)
		it.mainStyled = true
		it.hypoMain = it.box.clampAxis(main, it.baseSize)
		return
	}

	// An aspect ratio against a stretched definite cross determines the
	// main size before any content measurement.
	if it.box.aspectRatio > 0 {
		crossRef := Undefined
		if it.box.hasDefiniteSize(cross) {
			crossRef = it.box.size(cross)
		} else if it.align == FlexAlignStretch && !isUndefined(availInnerCross) && !it.box.hasAutoMargin(cross) {
			crossRef = it.box.clampAxis(cross, availInnerCross-it.box.marginAxisSum(cross))
		}
		if !isUndefined(crossRef) {
			it.baseSize = mainFromRatio(crossRef, it.box.aspectRatio, main)
			it.hypoMain = it.box.clampAxis(main, it.baseSize)
			return
		}
	}

	// Content-based: measure or lay out under indefinite main.
	var cc Constraints
	cc[main] = Indefinite()
	if it.box.hasDefiniteSize(cross) {
		cc[cross] = Definite(it.box.size(cross))
	} else if !isUndefined(availInnerCross) {
		cc[cross] = AtMost(maxf(availInnerCross-it.box.marginAxisSum(cross), 0))
	} else {
		cc[cross] = Indefinite()
	}
	size, _ := layoutNode(child, cc, pb, dir)
	it.baseSize = size.axis(main)
	it.hypoMain = it.box.clampAxis(main, it.baseSize)
}

// mainFromRatio converts a cross size to a main size via the
// width/height aspect ratio.
func mainFromRatio(crossSize, ratio float64, main Dimension) float64 {
	if main == DimensionHorizontal {
		return crossSize * ratio
	}
	if ratio == 0 {
		return Undefined
	}
	return crossSize / ratio
}

// crossFromRatio is the inverse of mainFromRatio.
func crossFromRatio(mainSize, ratio float64, main Dimension) float64 {
	if main == DimensionHorizontal {
		if ratio == 0 {
			return Undefined
		}
		return mainSize / ratio
	}
	return mainSize * ratio
}

// breakLines greedily packs items into flex lines. An item whose
// hypothetical size alone exceeds the limit still occupies a line.
func breakLines(items []*flexItem, wrap FlexWrap, limit, mainGap float64, main Dimension) []flexLine {
	if wrap == FlexWrapNoWrap || isUndefined(limit) {
		line := flexLine{items: items}
		if len(items) > 1 {
			line.gaps = float64(len(items)-1) * mainGap
		}
		if len(items) == 0 {
			return nil
		}
		return []flexLine{line}
	}

	var lines []flexLine
	var cur flexLine
	used := 0.0
	for _, it := range items {
		outer := it.outerHypo(main)
		extra := outer
		if len(cur.items) > 0 {
			extra += mainGap
		}
		if len(cur.items) > 0 && used+extra > limit+flexEpsilon {
			lines = append(lines, cur)
			cur = flexLine{}
			used = 0
			extra = outer
		}
		if len(cur.items) > 0 {
			cur.gaps += mainGap
		}
		cur.items = append(cur.items, it)
		used += extra
	}
	if len(cur.items) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// resolveFlexibleLengths runs the grow/shrink loop for one line,
// freezing items at their min/max bounds and redistributing until the
// residual is within tolerance.
func resolveFlexibleLengths(ln *flexLine, innerMain float64, main Dimension) {
	available := innerMain - ln.gaps
	for _, it := range ln.items {
		available -= it.box.marginAxisSum(main)
	}

	sumHypo := 0.0
	for _, it := range ln.items {
		sumHypo += it.hypoMain
	}
	free := available - sumHypo
	if math.Abs(free) <= flexEpsilon {
		free = 0
	}

	grow := free > 0
	flexible := false
	for _, it := range ln.items {
		factor := it.node.style.flexShrink
		if grow {
			factor = it.node.style.flexGrow
		}
		if free != 0 && factor > 0 {
			it.frozen = false
			flexible = true
		} else {
			it.frozen = true
			it.targetMain = it.hypoMain
		}
	}
	if !flexible {
		return
	}

	initFree := available
	for _, it := range ln.items {
		if it.frozen {
			initFree -= it.targetMain
		} else {
			initFree -= it.baseSize
		}
	}

	for {
		allFrozen := true
		for _, it := range ln.items {
			if !it.frozen {
				allFrozen = false
				break
			}
		}
		if allFrozen {
			break
		}

		remFree := available
		sumFactor := 0.0
		for _, it := range ln.items {
			if it.frozen {
				remFree -= it.targetMain
				continue
			}
			remFree -= it.baseSize
			if grow {
				sumFactor += it.node.style.flexGrow
			} else {
				sumFactor += it.node.style.flexShrink
			}
		}
		if sumFactor < 1 {
			if p := initFree * sumFactor; math.Abs(p) < math.Abs(remFree) {
				remFree = p
			}
		}

		if grow {
			for _, it := range ln.items {
				if it.frozen {
					continue
				}
				it.targetMain = it.baseSize + remFree*(it.node.style.flexGrow/sumFactor)
			}
		} else {
			sumScaled := 0.0
			for _, it := range ln.items {
				if !it.frozen {
					sumScaled += it.baseSize * it.node.style.flexShrink
				}
			}
			for _, it := range ln.items {
				if it.frozen {
					continue
				}
				if sumScaled == 0 {
					it.targetMain = it.baseSize
					continue
				}
				scaled := it.baseSize * it.node.style.flexShrink
				it.targetMain = it.baseSize - math.Abs(remFree)*(scaled/sumScaled)
			}
		}

		// Clamp violations and freeze the offending items.
		sumViolation := 0.0
		for _, it := range ln.items {
			if it.frozen {
				continue
			}
			it.unclamped = it.targetMain
			it.targetMain = maxf(it.box.clampAxis(main, it.targetMain), 0)
			sumViolation += it.targetMain - it.unclamped
		}
		switch {
		case math.Abs(sumViolation) <= flexEpsilon:
			for _, it := range ln.items {
				it.frozen = true
			}
		case sumViolation > 0:
			for _, it := range ln.items {
				if it.targetMain > it.unclamped {
					it.frozen = true
				}
			}
		default:
			for _, it := range ln.items {
				if it.targetMain < it.unclamped {
					it.frozen = true
				}
			}
		}
	}
}

// sizeItemCross determines an item's cross size before stretching:
// the styled size when definite, the aspect-ratio derivation, or the
// content's natural extent under the flexed main size.
func sizeItemCross(it *flexItem, main, cross Dimension, availInnerCross float64, pb Size, dir Direction) {
	if it.box.hasDefiniteSize(cross) {
		it.crossSize = it.box.size(cross)
		if it.align == FlexAlignBaseline {
			// Baseline alignment needs the subtree laid out for a real
			// baseline even when both sizes are styled.
			var cc Constraints
			cc[main] = Definite(it.targetMain)
			cc[cross] = Definite(it.crossSize)
			layoutNode(it.node, cc, pb, dir)
		}
	} else if it.box.aspectRatio > 0 {
		it.crossSize = it.box.clampAxis(cross, crossFromRatio(it.targetMain, it.box.aspectRatio, main))
	} else {
		var cc Constraints
		cc[main] = Definite(it.targetMain)
		if !isUndefined(availInnerCross) {
			cc[cross] = AtMost(maxf(availInnerCross-it.box.marginAxisSum(cross), 0))
		} else {
			cc[cross] = Indefinite()
		}
		size, _ := layoutNode(it.node, cc, pb, dir)
		it.crossSize = it.box.clampAxis(cross, size.axis(cross))
	}
	it.baseline = it.node.result.Baseline
	if it.baseline == 0 || isUndefined(it.baseline) {
		it.baseline = it.crossSize
	}
}

// placeLinesCross assigns each line its cross start and, under
// align-content stretch, its share of leftover cross space. A single
// stretched line fills the whole content box.
func placeLinesCross(lines []flexLine, ac AlignContent, innerCross, totalCross, crossGap float64) {
	leftover := 0.0
	if !isUndefined(innerCross) {
		leftover = innerCross - totalCross
	}
	// A single line is only affected by stretch.
	if len(lines) < 2 && ac != AlignContentStretch {
		leftover = 0
	}

	lead := 0.0
	between := 0.0
	switch ac {
	case AlignContentFlexEnd:
		lead = leftover
	case AlignContentCenter:
		lead = leftover / 2
	case AlignContentStretch:
		if leftover > 0 && len(lines) > 0 {
			add := leftover / float64(len(lines))
			for i := range lines {
				lines[i].cross += add
			}
		}
	case AlignContentSpaceBetween:
		if leftover > 0 && len(lines) > 1 {
			between = leftover / float64(len(lines)-1)
		}
	case AlignContentSpaceAround:
		if leftover > 0 && len(lines) > 0 {
			between = leftover / float64(len(lines))
			lead = between / 2
		}
	}

	off := lead
	for i := range lines {
		lines[i].crossStart = off
		off += lines[i].cross + crossGap + between
	}
}

// placeLineMain resolves main-axis positions inside one line: auto
// margins absorb leftover space first, then justify-content distributes
// what remains.
func placeLineMain(ln *flexLine, st *Style, innerMain, mainGap float64, main Dimension) {
	used := ln.gaps
	for _, it := range ln.items {
		used += it.outerTarget(main)
	}
	remaining := innerMain - used

	// Auto margins swallow positive free space before justification.
	if remaining > 0 {
		autoCount := 0
		for _, it := range ln.items {
			autoCount += it.box.autoMarginCount(main)
		}
		if autoCount > 0 {
			share := remaining / float64(autoCount)
			for _, it := range ln.items {
				if main == DimensionHorizontal {
					if it.box.autoMargin[EdgeLeft] {
						it.box.margin.Left += share
					}
					if it.box.autoMargin[EdgeRight] {
						it.box.margin.Right += share
					}
				} else {
					if it.box.autoMargin[EdgeTop] {
						it.box.margin.Top += share
					}
					if it.box.autoMargin[EdgeBottom] {
						it.box.margin.Bottom += share
					}
				}
			}
			remaining = 0
		}
	}

	// The stretch extension grows items without an explicit main size.
	if st.justifyContent == JustifyContentStretch && remaining > 0 {
		var stretchable []*flexItem
		for _, it := range ln.items {
			if !it.mainStyled {
				stretchable = append(stretchable, it)
			}
		}
		if len(stretchable) > 0 {
			share := remaining / float64(len(stretchable))
			for _, it := range stretchable {
				it.targetMain += share
			}
			remaining = 0
		}
	}

	lead := 0.0
	between := 0.0
	count := len(ln.items)
	switch st.justifyContent {
	case JustifyContentFlexEnd, JustifyContentEnd:
		lead = remaining
	case JustifyContentCenter:
		lead = remaining / 2
	case JustifyContentSpaceBetween:
		if remaining > 0 && count > 1 {
			between = remaining / float64(count-1)
		}
	case JustifyContentSpaceAround:
		if remaining > 0 && count > 0 {
			between = remaining / float64(count)
			lead = between / 2
		}
	case JustifyContentSpaceEvenly:
		if remaining > 0 && count > 0 {
			between = remaining / float64(count+1)
			lead = between
		}
	}

	cursor := lead
	for i, it := range ln.items {
		it.mainPos = cursor + it.box.margin.leading(main)
		cursor += it.outerTarget(main)
		if i < len(ln.items)-1 {
			cursor += mainGap + between
		}
	}
}

// placeLineItemsCross aligns items inside their line: auto cross
// margins absorb the line's free space, stretch fills it, and the
// remaining alignments offset within the line extent.
func placeLineItemsCross(ln *flexLine, main, cross Dimension) {
	for _, it := range ln.items {
		free := ln.cross - it.outerCross(cross)

		if free > 0 && it.box.hasAutoMargin(cross) {
			leadAuto, trailAuto := it.box.autoMargin[EdgeTop], it.box.autoMargin[EdgeBottom]
			if cross == DimensionHorizontal {
				leadAuto, trailAuto = it.box.autoMargin[EdgeLeft], it.box.autoMargin[EdgeRight]
			}
			switch {
			case leadAuto && trailAuto:
				addCrossMargin(it, cross, free/2, free/2)
			case leadAuto:
				addCrossMargin(it, cross, free, 0)
			default:
				addCrossMargin(it, cross, 0, free)
			}
			it.crossPos = ln.crossStart + it.box.margin.leading(cross)
			continue
		}

		switch it.align {
		case FlexAlignStretch:
			// An aspect ratio already ties the cross size to the main size.
			if !it.box.hasDefiniteSize(cross) && it.box.aspectRatio <= 0 {
				it.crossSize = it.box.clampAxis(cross, ln.cross-it.box.marginAxisSum(cross))
			}
			it.crossPos = it.box.margin.leading(cross)
		case FlexAlignFlexEnd, FlexAlignEnd:
			it.crossPos = ln.cross - it.crossSize - it.box.margin.trailing(cross)
		case FlexAlignCenter:
			it.crossPos = it.box.margin.leading(cross) + (ln.cross-it.outerCross(cross))/2
		case FlexAlignBaseline:
			if main == DimensionHorizontal {
				it.crossPos = ln.maxAscent - it.baseline
			} else {
				it.crossPos = it.box.margin.leading(cross)
			}
		default: // flex-start, start
			it.crossPos = it.box.margin.leading(cross)
		}
		it.crossPos += ln.crossStart
	}
}

func addCrossMargin(it *flexItem, cross Dimension, lead, trail float64) {
	if cross == DimensionHorizontal {
		it.box.margin.Left += lead
		it.box.margin.Right += trail
	} else {
		it.box.margin.Top += lead
		it.box.margin.Bottom += trail
	}
}

// finalizeItem runs the item's definitive layout under its resolved
// sizes and writes the border-box offset into the container's
// coordinate space (border-box origin, RTL mirrored on the row axis).
func finalizeItem(b *box, it *flexItem, main, cross Dimension, containerSize Size, pb Size, dir Direction, rtl bool) {
	var fc Constraints
	fc[main] = Definite(it.targetMain)
	fc[cross] = Definite(it.crossSize)
	layoutNode(it.node, fc, pb, dir)

	var x, y float64
	if main == DimensionHorizontal {
		x = b.border.Left + b.padding.Left + it.mainPos
		y = b.border.Top + b.padding.Top + it.crossPos
		if rtl {
			x = containerSize.Width - b.border.Right - b.padding.Right - it.mainPos - it.targetMain
		}
	} else {
		y = b.border.Top + b.padding.Top + it.mainPos
		x = b.border.Left + b.padding.Left + it.crossPos
		if rtl {
			x = containerSize.Width - b.border.Right - b.padding.Right - it.crossPos - it.crossSize
		}
	}

	it.node.result.Left = x
	it.node.result.Top = y
	it.node.result.Margin = it.box.margin
}
