package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krispeckt/starlight/layout"
)

func TestAbsoluteChildWithPadding(t *testing.T) {
	root := layout.NewNode()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(400)
	root.SetHeight(400)
	root.SetPadding(layout.EdgeAll, 10)

	flow := layout.NewNode()
	flow.SetWidth(100)
	flow.SetHeight(100)
	root.InsertChild(flow, -1)

	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetPosition(layout.EdgeLeft, 20)
	abs.SetPosition(layout.EdgeTop, 30)
	abs.SetWidth(50)
	abs.SetHeight(50)
	root.InsertChild(abs, -1)

	calculate(root)

	assert.InDelta(t, 30, abs.LayoutLeft(), tol)
	assert.InDelta(t, 40, abs.LayoutTop(), tol)
	assert.InDelta(t, 50, abs.LayoutWidth(), tol)
	assert.InDelta(t, 50, abs.LayoutHeight(), tol)
}

func TestAbsoluteDoesNotAffectSiblings(t *testing.T) {
	build := func(withAbs bool) (*layout.Node, []*layout.Node) {
		root := layout.NewNode()
		root.SetFlexDirection(layout.FlexDirectionRow)
		root.SetWidth(300)
		root.SetHeight(100)
		kids := make([]*layout.Node, 2)
		for i := range kids {
			kids[i] = layout.NewNode()
			kids[i].SetWidth(100)
			root.InsertChild(kids[i], -1)
		}
		if withAbs {
			abs := layout.NewNode()
			abs.SetPositionType(layout.PositionTypeAbsolute)
			abs.SetPosition(layout.EdgeLeft, 5)
			abs.SetWidth(500)
			abs.SetHeight(10)
			root.InsertChild(abs, 1)
		}
		return root, kids
	}

	plainRoot, plain := build(false)
	calculate(plainRoot)
	absRoot, withAbs := build(true)
	calculate(absRoot)

	for i := range plain {
		assert.InDelta(t, plain[i].LayoutLeft(), withAbs[i].LayoutLeft(), tol)
		assert.InDelta(t, plain[i].LayoutWidth(), withAbs[i].LayoutWidth(), tol)
	}
}

func TestAbsoluteRightBottomAnchors(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetPosition(layout.EdgeRight, 20)
	abs.SetPosition(layout.EdgeBottom, 10)
	abs.SetWidth(50)
	abs.SetHeight(40)
	root.InsertChild(abs, -1)

	calculate(root)

	assert.InDelta(t, 130, abs.LayoutLeft(), tol)
	assert.InDelta(t, 150, abs.LayoutTop(), tol)
}

func TestAbsoluteBothEdgesDeriveSize(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetPosition(layout.EdgeLeft, 10)
	abs.SetPosition(layout.EdgeRight, 30)
	abs.SetPosition(layout.EdgeTop, 20)
	abs.SetPosition(layout.EdgeBottom, 20)
	root.InsertChild(abs, -1)

	calculate(root)

	assert.InDelta(t, 160, abs.LayoutWidth(), tol)
	assert.InDelta(t, 160, abs.LayoutHeight(), tol)
	assert.InDelta(t, 10, abs.LayoutLeft(), tol)
	assert.InDelta(t, 20, abs.LayoutTop(), tol)
}

func TestAbsoluteExplicitSizeWinsOverTrailingInset(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetPosition(layout.EdgeLeft, 10)
	abs.SetPosition(layout.EdgeRight, 30)
	abs.SetWidth(50)
	abs.SetHeight(50)
	root.InsertChild(abs, -1)

	calculate(root)

	// The trailing inset yields; the leading offset is used directly.
	assert.InDelta(t, 50, abs.LayoutWidth(), tol)
	assert.InDelta(t, 10, abs.LayoutLeft(), tol)
}

func TestAbsoluteAutoMarginsAbsorb(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetPosition(layout.EdgeLeft, 0)
	abs.SetPosition(layout.EdgeRight, 0)
	abs.SetWidth(100)
	abs.SetHeight(50)
	abs.SetMarginAuto(layout.EdgeHorizontal)
	root.InsertChild(abs, -1)

	calculate(root)

	// Centered by the pair of auto margins.
	assert.InDelta(t, 50, abs.LayoutLeft(), tol)
	assert.InDelta(t, 50, abs.LayoutMargin(layout.EdgeLeft), tol)
	assert.InDelta(t, 50, abs.LayoutMargin(layout.EdgeRight), tol)
}

func TestAbsoluteUnsetInsetsUseStartCorner(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	root.SetPadding(layout.EdgeAll, 15)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetWidth(40)
	abs.SetHeight(40)
	root.InsertChild(abs, -1)

	calculate(root)

	assert.InDelta(t, 15, abs.LayoutLeft(), tol)
	assert.InDelta(t, 15, abs.LayoutTop(), tol)
}

func TestAbsolutePercentAgainstPaddingBox(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(220)
	root.SetHeight(200)
	root.SetBorder(layout.EdgeHorizontal, 10)
	abs := layout.NewNode()
	abs.SetPositionType(layout.PositionTypeAbsolute)
	abs.SetWidthPercent(50)
	abs.SetHeight(20)
	root.InsertChild(abs, -1)

	calculate(root)

	// 50% of the 200-wide padding box, not the 220 border box.
	assert.InDelta(t, 100, abs.LayoutWidth(), tol)
}
