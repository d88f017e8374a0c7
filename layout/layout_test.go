package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/starlight/layout"
)

// staticMeasure reports a fixed intrinsic size and baseline regardless
// of the offered constraints.
type staticMeasure struct {
	w, h     float64
	baseline float64
	calls    int
}

func (m *staticMeasure) Measure(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) layout.Size {
	m.calls++
	return layout.Size{Width: m.w, Height: m.h}
}

func (m *staticMeasure) Baseline(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) float64 {
	return m.baseline
}

// recordingMeasure remembers the constraints it was offered.
type recordingMeasure struct {
	staticMeasure
	lastWidth      float64
	lastWidthMode  layout.MeasureMode
	lastHeight     float64
	lastHeightMode layout.MeasureMode
}

func (m *recordingMeasure) Measure(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) layout.Size {
	m.lastWidth, m.lastWidthMode = width, widthMode
	m.lastHeight, m.lastHeightMode = height, heightMode
	return m.staticMeasure.Measure(width, widthMode, height, heightMode)
}

func snapshot(n *layout.Node) [4]float64 {
	return [4]float64{n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight()}
}

func TestIdempotence(t *testing.T) {
	root := rowContainer(500, 200)
	root.SetPadding(layout.EdgeAll, 8)
	a := layout.NewNode()
	a.SetFlexGrow(1)
	a.SetFlexBasis(0)
	b := layout.NewNode()
	b.SetWidth(120)
	b.SetMarginAuto(layout.EdgeLeft)
	root.InsertChild(a, -1)
	root.InsertChild(b, -1)

	calculate(root)
	first := []([4]float64){snapshot(root), snapshot(a), snapshot(b)}

	calculate(root)
	second := []([4]float64){snapshot(root), snapshot(a), snapshot(b)}

	assert.Equal(t, first, second)
}

func TestMeasuredLeaf(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(100)
	root.SetAlignItems(layout.FlexAlignFlexStart)
	leaf := layout.NewNode()
	leaf.SetMeasureFunc(&staticMeasure{w: 120, h: 40})
	root.InsertChild(leaf, -1)

	calculate(root)

	require.True(t, leaf.HasMeasureFunc())
	assert.InDelta(t, 120, leaf.LayoutWidth(), tol)
	assert.InDelta(t, 40, leaf.LayoutHeight(), tol)
}

func TestMeasureSkippedWhenBothAxesExact(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(100)
	leaf := layout.NewNode()
	leaf.SetWidth(50)
	leaf.SetHeight(40)
	m := &staticMeasure{w: 500, h: 500}
	leaf.SetMeasureFunc(m)
	root.InsertChild(leaf, -1)

	calculate(root)

	assert.Equal(t, 0, m.calls)
	assert.InDelta(t, 50, leaf.LayoutWidth(), tol)
	assert.InDelta(t, 40, leaf.LayoutHeight(), tol)
}

func TestMeasureUndefinedAxesPassZero(t *testing.T) {
	root := layout.NewNode()
	leaf := layout.NewNode()
	m := &recordingMeasure{staticMeasure: staticMeasure{w: 70, h: 30}}
	leaf.SetMeasureFunc(m)
	root.InsertChild(leaf, -1)

	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)

	assert.Equal(t, layout.MeasureModeUndefined, m.lastWidthMode)
	assert.Equal(t, 0.0, m.lastWidth)
	assert.InDelta(t, 70, leaf.LayoutWidth(), tol)
	assert.InDelta(t, 30, leaf.LayoutHeight(), tol)
}

func TestMeasureResultClampedByMinMax(t *testing.T) {
	root := layout.NewNode()
	leaf := layout.NewNode()
	leaf.SetMeasureFunc(&staticMeasure{w: 500, h: 5})
	leaf.SetMaxWidth(200)
	leaf.SetMinHeight(20)
	root.InsertChild(leaf, -1)

	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)

	assert.InDelta(t, 200, leaf.LayoutWidth(), tol)
	assert.InDelta(t, 20, leaf.LayoutHeight(), tol)
}

func TestMeasureCachedWithinPass(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(100)
	leaf := layout.NewNode()
	m := &staticMeasure{w: 80, h: 40}
	leaf.SetMeasureFunc(m)
	root.InsertChild(leaf, -1)

	calculate(root)
	firstPass := m.calls
	require.Greater(t, firstPass, 0)

	// The measurement cache lives for one pass only; an identical second
	// pass repeats the same distinct measurements, no more.
	calculate(root)
	assert.Equal(t, firstPass*2, m.calls)
}

func TestConfigPhysicalPixelScale(t *testing.T) {
	cfg := layout.NewConfig()
	cfg.SetPhysicalPixelsPerLayoutUnit(2)
	require.Equal(t, 2.0, cfg.PhysicalPixelsPerLayoutUnit())

	root := layout.NewNodeWithConfig(cfg)
	leaf := layout.NewNodeWithConfig(cfg)
	// The delegate speaks physical pixels: 100x50 physical is 50x25 in
	// layout units at scale 2.
	leaf.SetMeasureFunc(&staticMeasure{w: 100, h: 50})
	root.InsertChild(leaf, -1)

	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)

	assert.InDelta(t, 50, leaf.LayoutWidth(), tol)
	assert.InDelta(t, 25, leaf.LayoutHeight(), tol)
}

func TestMeasureContextRoundTrip(t *testing.T) {
	n := layout.NewNode()
	require.Nil(t, n.Context())
	n.SetContext("payload")
	assert.Equal(t, "payload", n.Context())
	assert.False(t, n.HasMeasureFunc())
}

func TestCalcLengthInLayout(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(100)
	child := layout.NewNode()
	// calc(50 + 25%) against the 200-wide content box = 100.
	child.SetWidthLength(layout.Calc(layout.Point(50), layout.Percent(25)))
	root.InsertChild(child, -1)

	calculate(root)
	assert.InDelta(t, 100, child.LayoutWidth(), tol)
}

func TestNaNStyleBehavesAsIndefinite(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(100)
	child := layout.NewNode()
	child.SetWidth(math.NaN())
	child.SetHeight(40)
	root.InsertChild(child, -1)

	calculate(root)

	// A NaN width falls back to content sizing: nothing inside, so zero.
	assert.InDelta(t, 0, child.LayoutWidth(), tol)
	assert.False(t, math.IsNaN(child.LayoutWidth()))
}

func TestLayoutReadersReportResolvedEdges(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	child := layout.NewNode()
	child.SetHeight(50)
	child.SetMargin(layout.EdgeLeft, 7)
	child.SetPadding(layout.EdgeTop, 11)
	child.SetBorder(layout.EdgeBottom, 3)
	root.InsertChild(child, -1)

	calculate(root)

	assert.InDelta(t, 7, child.LayoutMargin(layout.EdgeLeft), tol)
	assert.InDelta(t, 11, child.LayoutPadding(layout.EdgeTop), tol)
	assert.InDelta(t, 3, child.LayoutBorder(layout.EdgeBottom), tol)
	assert.InDelta(t, 7, child.LayoutLeft(), tol)
}

func TestOwnerPercentageBaseAtRoot(t *testing.T) {
	root := layout.NewNode()
	root.SetWidthPercent(50)
	root.SetHeightPercent(25)

	root.CalculateLayout(400, 400, layout.DirectionLTR)

	assert.InDelta(t, 200, root.LayoutWidth(), tol)
	assert.InDelta(t, 100, root.LayoutHeight(), tol)
}

func TestRootOffsetsAreZero(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	calculate(root)

	assert.Equal(t, 0.0, root.LayoutLeft())
	assert.Equal(t, 0.0, root.LayoutTop())
}
