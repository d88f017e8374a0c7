package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krispeckt/starlight/layout"
)

func TestBorderBoxSizing(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetPadding(layout.EdgeAll, 10)
	root.SetBorder(layout.EdgeAll, 5)
	child := layout.NewNode()
	root.InsertChild(child, -1)

	calculate(root)

	// width denotes the border box; the child sees the remaining content.
	assert.InDelta(t, 100, root.LayoutWidth(), tol)
	assert.InDelta(t, 70, child.LayoutWidth(), tol)
	assert.InDelta(t, 15, child.LayoutLeft(), tol)
	assert.InDelta(t, 15, child.LayoutTop(), tol)
}

func TestContentBoxSizing(t *testing.T) {
	root := layout.NewNode()
	root.SetBoxSizing(layout.BoxSizingContentBox)
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetPadding(layout.EdgeAll, 10)
	root.SetBorder(layout.EdgeAll, 5)
	child := layout.NewNode()
	root.InsertChild(child, -1)

	calculate(root)

	// width denotes the content box; border and padding extend it.
	assert.InDelta(t, 130, root.LayoutWidth(), tol)
	assert.InDelta(t, 130, root.LayoutHeight(), tol)
	assert.InDelta(t, 100, child.LayoutWidth(), tol)
}

func TestContentBoxPercentageWidth(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(100)
	child := layout.NewNode()
	child.SetBoxSizing(layout.BoxSizingContentBox)
	child.SetWidthPercent(50)
	child.SetPadding(layout.EdgeHorizontal, 10)
	root.InsertChild(child, -1)

	calculate(root)

	// The resolved percentage is the content box; padding is added on.
	assert.InDelta(t, 120, child.LayoutWidth(), tol)
}

func TestPercentagePaddingUsesOwnerWidth(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	child := layout.NewNode()
	child.SetHeight(100)
	child.SetPaddingPercent(layout.EdgeTop, 10)
	child.SetPaddingPercent(layout.EdgeLeft, 10)
	grand := layout.NewNode()
	child.InsertChild(grand, -1)
	root.InsertChild(child, -1)

	calculate(root)

	// Both axes resolve against the owner width.
	assert.InDelta(t, 20, child.LayoutPadding(layout.EdgeTop), tol)
	assert.InDelta(t, 20, child.LayoutPadding(layout.EdgeLeft), tol)
	assert.InDelta(t, 20, grand.LayoutTop(), tol)
	assert.InDelta(t, 20, grand.LayoutLeft(), tol)
}

func TestMinAboveMaxRaisesMax(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(50)
	root.SetMinWidth(100)
	root.SetMaxWidth(80)
	root.SetHeight(10)

	calculate(root)

	assert.InDelta(t, 100, root.LayoutWidth(), tol)
}

func TestMinMaxBracketing(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(500)
	root.SetMaxWidth(300)
	root.SetHeight(10)
	root.SetMinHeight(40)

	calculate(root)

	assert.InDelta(t, 300, root.LayoutWidth(), tol)
	assert.InDelta(t, 40, root.LayoutHeight(), tol)
}

func TestPercentageChildSizes(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(400)
	root.SetHeight(200)
	child := layout.NewNode()
	child.SetWidthPercent(25)
	child.SetHeightPercent(50)
	root.InsertChild(child, -1)

	calculate(root)

	assert.InDelta(t, 100, child.LayoutWidth(), tol)
	assert.InDelta(t, 100, child.LayoutHeight(), tol)
}

func TestAspectRatioFromHeight(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetHeight(100)
	child := layout.NewNode()
	child.SetAspectRatio(2)
	root.InsertChild(child, -1)

	calculate(root)

	assert.InDelta(t, 200, child.LayoutWidth(), tol)
	assert.InDelta(t, 100, child.LayoutHeight(), tol)
	assert.InDelta(t, 200, root.LayoutWidth(), tol)
}

func TestAspectRatioUnderMaxWidth(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetHeight(100)
	root.SetMaxWidth(150)
	child := layout.NewNode()
	child.SetAspectRatio(2)
	root.InsertChild(child, -1)

	calculate(root)

	assert.InDelta(t, 150, child.LayoutWidth(), tol)
	assert.InDelta(t, 75, child.LayoutHeight(), tol)
}

func TestAspectRatioFromWidth(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(200)
	root.SetAlignItems(layout.FlexAlignFlexStart)
	child := layout.NewNode()
	child.SetWidth(80)
	child.SetAspectRatio(2)
	root.InsertChild(child, -1)

	calculate(root)

	assert.InDelta(t, 80, child.LayoutWidth(), tol)
	assert.InDelta(t, 40, child.LayoutHeight(), tol)
}

func TestAspectRatioClampReDerives(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetAlignItems(layout.FlexAlignFlexStart)
	root.SetWidth(300)
	root.SetHeight(300)
	child := layout.NewNode()
	child.SetWidth(200)
	child.SetAspectRatio(2)
	child.SetMaxHeight(60)
	root.InsertChild(child, -1)

	calculate(root)

	// height derives to 100, clamps to 60, and the width re-derives.
	assert.InDelta(t, 60, child.LayoutHeight(), tol)
	assert.InDelta(t, 120, child.LayoutWidth(), tol)
}

func TestDegenerateGeometry(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(0)
	root.SetHeight(0)
	root.SetPadding(layout.EdgeAll, 10)
	child := layout.NewNode()
	child.SetWidth(50)
	root.InsertChild(child, -1)

	// Zero-sized owners and negative available space must not blow up.
	calculate(root)

	assert.InDelta(t, 0, root.LayoutWidth(), tol)
	assert.InDelta(t, 0, root.LayoutHeight(), tol)
}
