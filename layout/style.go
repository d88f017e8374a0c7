package layout

// Style is the flat bag of computed layout properties of one node.
// All values are stored raw; resolution to pixels happens per pass.
type Style struct {
	display   Display
	position  PositionType
	boxSizing BoxSizing
	direction Direction
	order     int
	// aspectRatio is width/height; 0 means unset.
	aspectRatio float64

	width, height        Length
	minWidth, maxWidth   Length
	minHeight, maxHeight Length

	// inset holds the top/right/bottom/left position offsets.
	inset   EdgeLengths
	margin  EdgeLengths
	padding EdgeLengths
	border  EdgeFloats

	columnGap, rowGap Length

	flexDirection  FlexDirection
	flexWrap       FlexWrap
	justifyContent JustifyContent
	alignContent   AlignContent
	alignItems     FlexAlign
	alignSelf      FlexAlign

	flexGrow   float64
	flexShrink float64
	flexBasis  Length
}

// defaultStyle mirrors the engine's documented defaults: a flex column
// container with border-box sizing, stretch alignment and inherited
// direction. Sizing lengths default to auto, gaps and box edges to zero.
func defaultStyle() Style {
	return Style{
		display:        DisplayFlex,
		position:       PositionTypeRelative,
		boxSizing:      BoxSizingBorderBox,
		direction:      DirectionInherit,
		width:          Auto(),
		height:         Auto(),
		minWidth:       Auto(),
		maxWidth:       Auto(),
		minHeight:      Auto(),
		maxHeight:      Auto(),
		inset:          EdgeLengths{Left: Auto(), Right: Auto(), Top: Auto(), Bottom: Auto()},
		margin:         EdgeLengths{Left: Point(0), Right: Point(0), Top: Point(0), Bottom: Point(0)},
		padding:        EdgeLengths{Left: Point(0), Right: Point(0), Top: Point(0), Bottom: Point(0)},
		columnGap:      Point(0),
		rowGap:         Point(0),
		flexDirection:  FlexDirectionColumn,
		flexWrap:       FlexWrapNoWrap,
		justifyContent: JustifyContentFlexStart,
		alignContent:   AlignContentStretch,
		alignItems:     FlexAlignStretch,
		alignSelf:      FlexAlignAuto,
		flexGrow:       0,
		flexShrink:     1,
		flexBasis:      Auto(),
	}
}

// isRowAxis reports whether the main axis is horizontal.
func (d FlexDirection) isRowAxis() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// isReverse reports whether items run against the axis direction.
func (d FlexDirection) isReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// mainDimension and crossDimension map the flex axes onto constraint
// dimensions.
func (d FlexDirection) mainDimension() Dimension {
	if d.isRowAxis() {
		return DimensionHorizontal
	}
	return DimensionVertical
}

func (d FlexDirection) crossDimension() Dimension {
	if d.isRowAxis() {
		return DimensionVertical
	}
	return DimensionHorizontal
}
