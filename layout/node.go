package layout

// Result is the layout output written to a node by a pass: its offset
// relative to the parent's border box, its border-box size, and the
// resolved per-edge margins, paddings and borders.
type Result struct {
	Left, Top     float64
	Width, Height float64
	Margin        EdgeFloats
	Padding       EdgeFloats
	Border        EdgeFloats
	Baseline      float64
}

// layoutCache remembers the last layout input signature and output so a
// clean subtree can skip recomputation when measured again under the
// same constraints.
type layoutCache struct {
	valid       bool
	constraints Constraints
	direction   Direction
	pb          Size
	size        Size
	baseline    float64
}

func (c *layoutCache) matches(constraints Constraints, dir Direction) bool {
	return c.valid && c.constraints == constraints && c.direction == dir
}

func (c *layoutCache) store(constraints Constraints, dir Direction, size Size, baseline float64) {
	c.valid = true
	c.constraints = constraints
	c.direction = dir
	c.size = size
	c.baseline = baseline
}

// Node is one box in a layout tree. Nodes are host-owned: inserting a
// node makes it a child, removing it makes it a free root again, and a
// node has at most one parent at any time.
//
// A Node is not safe for concurrent use; distinct trees may be laid out
// in parallel as long as their node sets are disjoint.
type Node struct {
	style    Style
	config   *Config
	parent   *Node
	children []*Node

	dirty bool

	measure MeasureDelegate
	context any

	// resolvedDir is the effective direction after the last pass; it
	// feeds logical edge resolution and IsRTL between passes.
	resolvedDir Direction

	cache        layoutCache
	measureCache map[measureKey]measureEntry

	result Result
}

// NewNode returns a free root with default styles and the default
// config.
func NewNode() *Node {
	return NewNodeWithConfig(nil)
}

// NewNodeWithConfig returns a free root bound to cfg. A nil cfg behaves
// like the default config.
func NewNodeWithConfig(cfg *Config) *Node {
	return &Node{
		style:       defaultStyle(),
		config:      cfg,
		dirty:       true,
		resolvedDir: DirectionLTR,
	}
}

// InsertChild inserts child under n at the given index; -1 or any
// out-of-range index appends. The child is detached from its previous
// parent first. Inserting a node under itself or under one of its
// descendants is refused silently.
func (n *Node) InsertChild(child *Node, index int) {
	if child == nil || child == n {
		return
	}
	// Refuse cycles: walk up from n looking for child.
	for a := n; a != nil; a = a.parent {
		if a == child {
			return
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
}

// RemoveChild detaches child from n, making it a free root again.
// A node that is not a child of n is left untouched.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.parent != n {
		return
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	n.MarkDirty()
}

// RemoveAllChildren detaches every direct child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	n.MarkDirty()
}

// GetChild returns the child at index, or nil when out of range.
func (n *Node) GetChild(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Parent returns the parent node, or nil for a free root.
func (n *Node) Parent() *Node { return n.parent }

// Reset restores all styles to their defaults. Parent linkage, children
// and the measure delegate are preserved; the node is marked dirty.
func (n *Node) Reset() {
	n.style = defaultStyle()
	n.MarkDirty()
}

// Free releases a detached node's references. Children are not touched:
// freeing a detached node that still has children orphans them.
func (n *Node) Free() {
	if n == nil {
		return
	}
	n.children = nil
	n.measure = nil
	n.context = nil
	n.measureCache = nil
	n.cache = layoutCache{}
}

// FreeRecursive tears down the whole subtree, descendants first.
func (n *Node) FreeRecursive() {
	if n == nil {
		return
	}
	for len(n.children) > 0 {
		child := n.children[len(n.children)-1]
		n.children = n.children[:len(n.children)-1]
		child.parent = nil
		child.FreeRecursive()
	}
	n.Free()
}

// IsDirty reports whether the node needs layout.
func (n *Node) IsDirty() bool { return n.dirty }

// MarkDirty flags the node and every ancestor for relayout.
func (n *Node) MarkDirty() {
	for a := n; a != nil && !a.dirty; a = a.parent {
		a.dirty = true
	}
}

// markClean clears the dirty bit over the whole subtree.
func (n *Node) markClean() {
	n.dirty = false
	for _, c := range n.children {
		c.markClean()
	}
}

// IsRTL reports the node's effective inline direction: its own style if
// set, otherwise the direction resolved during the last layout pass.
func (n *Node) IsRTL() bool {
	if n.style.direction != DirectionInherit {
		return n.style.direction == DirectionRTL
	}
	return n.resolvedDir == DirectionRTL
}

// Context returns the opaque host value attached to the node.
func (n *Node) Context() any { return n.context }

// SetContext attaches an opaque host value to the node.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// SetMeasureFunc registers d as the node's measurement delegate,
// turning it into a replaced leaf. Passing nil unregisters.
func (n *Node) SetMeasureFunc(d MeasureDelegate) {
	n.measure = d
	n.measureCache = nil
	n.MarkDirty()
}

// HasMeasureFunc reports whether a measurement delegate is registered.
func (n *Node) HasMeasureFunc() bool { return n.measure != nil }

// LayoutLeft returns the resolved left offset relative to the parent's
// border box.
func (n *Node) LayoutLeft() float64 { return n.result.Left }

// LayoutTop returns the resolved top offset relative to the parent's
// border box.
func (n *Node) LayoutTop() float64 { return n.result.Top }

// LayoutWidth returns the resolved border-box width.
func (n *Node) LayoutWidth() float64 { return n.result.Width }

// LayoutHeight returns the resolved border-box height.
func (n *Node) LayoutHeight() float64 { return n.result.Height }

// LayoutMargin returns the resolved margin on one edge; auto margins
// report the free space they absorbed.
func (n *Node) LayoutMargin(edge Edge) float64 {
	return n.result.Margin.get(edge, n.IsRTL())
}

// LayoutPadding returns the resolved padding on one edge.
func (n *Node) LayoutPadding(edge Edge) float64 {
	return n.result.Padding.get(edge, n.IsRTL())
}

// LayoutBorder returns the border width on one edge.
func (n *Node) LayoutBorder(edge Edge) float64 {
	return n.result.Border.get(edge, n.IsRTL())
}

// scale returns the physical-pixels-per-layout-unit factor in effect.
func (n *Node) scale() float64 {
	return n.config.PhysicalPixelsPerLayoutUnit()
}
