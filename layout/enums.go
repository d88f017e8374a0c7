package layout

// Display describes whether a node generates a box at all.
type Display int

const (
	// DisplayNone removes the node (and its subtree) from layout entirely.
	DisplayNone Display = 0
	// DisplayFlex lays out children with the flexbox algorithm (default).
	DisplayFlex Display = 1
)

// FlexAlign is the shared value space of align-items and align-self.
//
// Auto is only meaningful for align-self, where it defers to the
// container's align-items.
type FlexAlign int

const (
	FlexAlignAuto      FlexAlign = 0
	FlexAlignStretch   FlexAlign = 1
	FlexAlignFlexStart FlexAlign = 2
	FlexAlignFlexEnd   FlexAlign = 3
	FlexAlignCenter    FlexAlign = 4
	FlexAlignBaseline  FlexAlign = 5
	FlexAlignStart     FlexAlign = 6
	FlexAlignEnd       FlexAlign = 7
)

// AlignContent packs flex lines along the cross axis when the container
// has extra cross space and more than one line.
type AlignContent int

const (
	AlignContentFlexStart    AlignContent = 0
	AlignContentFlexEnd      AlignContent = 1
	AlignContentCenter       AlignContent = 2
	AlignContentStretch      AlignContent = 3
	AlignContentSpaceBetween AlignContent = 4
	AlignContentSpaceAround  AlignContent = 5
)

// JustifyContent distributes free space along the main axis.
type JustifyContent int

const (
	JustifyContentFlexStart    JustifyContent = 0
	JustifyContentCenter       JustifyContent = 1
	JustifyContentFlexEnd      JustifyContent = 2
	JustifyContentSpaceBetween JustifyContent = 3
	JustifyContentSpaceAround  JustifyContent = 4
	JustifyContentSpaceEvenly  JustifyContent = 5
	// JustifyContentStretch is a flex extension: items without an explicit
	// main size share the leftover space equally.
	JustifyContentStretch JustifyContent = 6
	JustifyContentStart   JustifyContent = 7
	JustifyContentEnd     JustifyContent = 8
)

// FlexDirection sets the main axis of a flex container.
type FlexDirection int

const (
	FlexDirectionColumn        FlexDirection = 0
	FlexDirectionRow           FlexDirection = 1
	FlexDirectionRowReverse    FlexDirection = 2
	FlexDirectionColumnReverse FlexDirection = 3
)

// FlexWrap controls whether a container is single- or multi-line.
type FlexWrap int

const (
	FlexWrapWrap        FlexWrap = 0
	FlexWrapNoWrap      FlexWrap = 1
	FlexWrapWrapReverse FlexWrap = 2
)

// Direction is the inline base direction. The zero value inherits the
// parent's direction; the root falls back to LTR.
type Direction int

const (
	DirectionInherit Direction = 0
	DirectionRTL     Direction = 2
	DirectionLTR     Direction = 3
)

// PositionType indicates whether a node participates in normal flow.
type PositionType int

const (
	// PositionTypeAbsolute removes the node from flow; it is positioned
	// against its container's padding box.
	PositionTypeAbsolute PositionType = 0
	// PositionTypeRelative participates in normal flow (default).
	PositionTypeRelative PositionType = 1
)

// BoxSizing selects which box the width/height properties denote.
type BoxSizing int

const (
	BoxSizingBorderBox  BoxSizing = 0
	BoxSizingContentBox BoxSizing = 1
)

// Edge names a box side. Start/End resolve to Left/Right by direction;
// Horizontal, Vertical and All are write-only fans updating several sides.
type Edge int

const (
	EdgeLeft       Edge = 0
	EdgeRight      Edge = 1
	EdgeTop        Edge = 2
	EdgeBottom     Edge = 3
	EdgeStart      Edge = 4
	EdgeEnd        Edge = 5
	EdgeHorizontal Edge = 6
	EdgeVertical   Edge = 7
	EdgeAll        Edge = 8
)

// Gutter names a gap slot of a flex container.
type Gutter int

const (
	GutterColumn Gutter = 0
	GutterRow    Gutter = 1
	GutterAll    Gutter = 2
)

// Dimension indexes the two constraint axes.
type Dimension int

const (
	DimensionHorizontal Dimension = 0
	DimensionVertical   Dimension = 1
)

// MeasureMode qualifies one side of a measurement constraint.
type MeasureMode int

const (
	// MeasureModeUndefined means the size is unknown; measure natural size.
	MeasureModeUndefined MeasureMode = 0
	// MeasureModeExactly fixes the size.
	MeasureModeExactly MeasureMode = 1
	// MeasureModeAtMost caps the size.
	MeasureModeAtMost MeasureMode = 2
)

// Unit tags the value of a Length as exposed through style getters.
type Unit int

const (
	UnitPoint      Unit = 0
	UnitPercent    Unit = 1
	UnitAuto       Unit = 2
	UnitMaxContent Unit = 3
	UnitFitContent Unit = 4

	// unitCalc is internal: calc() expressions are built programmatically
	// and never round-trip through Value.
	unitCalc Unit = 5
)
