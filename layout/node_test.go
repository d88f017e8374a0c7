package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/starlight/layout"
)

func TestInsertChild(t *testing.T) {
	parent := layout.NewNode()
	a := layout.NewNode()
	b := layout.NewNode()
	c := layout.NewNode()

	parent.InsertChild(a, -1)
	parent.InsertChild(c, -1)
	parent.InsertChild(b, 1)

	require.Equal(t, 3, parent.ChildCount())
	assert.Same(t, a, parent.GetChild(0))
	assert.Same(t, b, parent.GetChild(1))
	assert.Same(t, c, parent.GetChild(2))
	assert.Same(t, parent, a.Parent())
}

func TestInsertChildReparents(t *testing.T) {
	p1 := layout.NewNode()
	p2 := layout.NewNode()
	child := layout.NewNode()

	p1.InsertChild(child, -1)
	p2.InsertChild(child, -1)

	assert.Equal(t, 0, p1.ChildCount())
	assert.Equal(t, 1, p2.ChildCount())
	assert.Same(t, p2, child.Parent())
}

func TestInsertChildRefusesCycles(t *testing.T) {
	root := layout.NewNode()
	child := layout.NewNode()
	grandchild := layout.NewNode()
	root.InsertChild(child, -1)
	child.InsertChild(grandchild, -1)

	// A node under itself, and an ancestor under its descendant: both
	// silent no-ops.
	root.InsertChild(root, -1)
	grandchild.InsertChild(root, -1)

	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, grandchild.ChildCount())
	assert.Equal(t, 1, root.ChildCount())
}

func TestRemoveChild(t *testing.T) {
	parent := layout.NewNode()
	child := layout.NewNode()
	stranger := layout.NewNode()
	parent.InsertChild(child, -1)

	// Removing a non-child is a no-op.
	parent.RemoveChild(stranger)
	require.Equal(t, 1, parent.ChildCount())

	parent.RemoveChild(child)
	assert.Equal(t, 0, parent.ChildCount())
	assert.Nil(t, child.Parent())
}

func TestRemoveAllChildren(t *testing.T) {
	parent := layout.NewNode()
	kids := []*layout.Node{layout.NewNode(), layout.NewNode(), layout.NewNode()}
	for _, k := range kids {
		parent.InsertChild(k, -1)
	}

	parent.RemoveAllChildren()
	assert.Equal(t, 0, parent.ChildCount())
	for _, k := range kids {
		assert.Nil(t, k.Parent())
	}
}

func TestGetChildOutOfRange(t *testing.T) {
	parent := layout.NewNode()
	parent.InsertChild(layout.NewNode(), -1)

	assert.Nil(t, parent.GetChild(-1))
	assert.Nil(t, parent.GetChild(1))
	assert.Nil(t, parent.GetChild(99))
}

func TestResetPreservesLinkage(t *testing.T) {
	parent := layout.NewNode()
	child := layout.NewNode()
	parent.InsertChild(child, -1)
	child.SetWidth(100)
	child.SetFlexGrow(3)

	child.Reset()

	assert.Same(t, parent, child.Parent())
	assert.Equal(t, layout.UnitAuto, child.Width().Unit)
	assert.Equal(t, 0.0, child.FlexGrow())
	assert.True(t, child.IsDirty())
}

func TestDirtyPropagation(t *testing.T) {
	root := layout.NewNode()
	child := layout.NewNode()
	sibling := layout.NewNode()
	grandchild := layout.NewNode()
	root.InsertChild(child, -1)
	root.InsertChild(sibling, -1)
	child.InsertChild(grandchild, -1)

	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)
	require.False(t, root.IsDirty())
	require.False(t, child.IsDirty())
	require.False(t, grandchild.IsDirty())

	grandchild.SetWidth(10)

	assert.True(t, grandchild.IsDirty())
	assert.True(t, child.IsDirty())
	assert.True(t, root.IsDirty())
	assert.False(t, sibling.IsDirty())

	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)
	assert.False(t, root.IsDirty())
	assert.False(t, child.IsDirty())
	assert.False(t, grandchild.IsDirty())
}

func TestSetterOnlyDirtiesOnChange(t *testing.T) {
	node := layout.NewNode()
	node.SetWidth(100)
	node.CalculateLayout(layout.Undefined, layout.Undefined, layout.DirectionLTR)
	require.False(t, node.IsDirty())

	node.SetWidth(100)
	assert.False(t, node.IsDirty())

	node.SetWidth(101)
	assert.True(t, node.IsDirty())
}

func TestFreeRecursive(t *testing.T) {
	root := layout.NewNode()
	child := layout.NewNode()
	grandchild := layout.NewNode()
	root.InsertChild(child, -1)
	child.InsertChild(grandchild, -1)

	root.FreeRecursive()
	assert.Equal(t, 0, root.ChildCount())
	assert.Nil(t, child.Parent())
	assert.Equal(t, 0, child.ChildCount())
}
