package layout

// EdgeLengths holds one Length per physical side.
type EdgeLengths struct {
	Left, Right, Top, Bottom Length
}

// get reads one physical or logical side. Fan edges read as Left.
func (e *EdgeLengths) get(edge Edge, rtl bool) Length {
	switch physicalEdge(edge, rtl) {
	case EdgeRight:
		return e.Right
	case EdgeTop:
		return e.Top
	case EdgeBottom:
		return e.Bottom
	default:
		return e.Left
	}
}

// set writes the side(s) named by edge, resolving Start/End against the
// current direction and fanning out Horizontal/Vertical/All. It reports
// whether any stored value changed.
func (e *EdgeLengths) set(edge Edge, v Length, rtl bool) bool {
	switch edge {
	case EdgeHorizontal:
		changed := e.setPhysical(EdgeLeft, v)
		return e.setPhysical(EdgeRight, v) || changed
	case EdgeVertical:
		changed := e.setPhysical(EdgeTop, v)
		return e.setPhysical(EdgeBottom, v) || changed
	case EdgeAll:
		changed := e.setPhysical(EdgeLeft, v)
		changed = e.setPhysical(EdgeRight, v) || changed
		changed = e.setPhysical(EdgeTop, v) || changed
		return e.setPhysical(EdgeBottom, v) || changed
	default:
		return e.setPhysical(physicalEdge(edge, rtl), v)
	}
}

func (e *EdgeLengths) setPhysical(edge Edge, v Length) bool {
	switch edge {
	case EdgeLeft:
		if e.Left.equal(v) {
			return false
		}
		e.Left = v
	case EdgeRight:
		if e.Right.equal(v) {
			return false
		}
		e.Right = v
	case EdgeTop:
		if e.Top.equal(v) {
			return false
		}
		e.Top = v
	case EdgeBottom:
		if e.Bottom.equal(v) {
			return false
		}
		e.Bottom = v
	}
	return true
}

// EdgeFloats holds one resolved pixel value per physical side.
type EdgeFloats struct {
	Left, Right, Top, Bottom float64
}

// get reads one physical or logical side. Fan edges read as Left.
func (e *EdgeFloats) get(edge Edge, rtl bool) float64 {
	switch physicalEdge(edge, rtl) {
	case EdgeRight:
		return e.Right
	case EdgeTop:
		return e.Top
	case EdgeBottom:
		return e.Bottom
	default:
		return e.Left
	}
}

// set mirrors EdgeLengths.set for raw pixel sides (borders).
func (e *EdgeFloats) set(edge Edge, v float64, rtl bool) bool {
	switch edge {
	case EdgeHorizontal:
		changed := e.setPhysical(EdgeLeft, v)
		return e.setPhysical(EdgeRight, v) || changed
	case EdgeVertical:
		changed := e.setPhysical(EdgeTop, v)
		return e.setPhysical(EdgeBottom, v) || changed
	case EdgeAll:
		changed := e.setPhysical(EdgeLeft, v)
		changed = e.setPhysical(EdgeRight, v) || changed
		changed = e.setPhysical(EdgeTop, v) || changed
		return e.setPhysical(EdgeBottom, v) || changed
	default:
		return e.setPhysical(physicalEdge(edge, rtl), v)
	}
}

func (e *EdgeFloats) setPhysical(edge Edge, v float64) bool {
	switch edge {
	case EdgeLeft:
		if e.Left == v {
			return false
		}
		e.Left = v
	case EdgeRight:
		if e.Right == v {
			return false
		}
		e.Right = v
	case EdgeTop:
		if e.Top == v {
			return false
		}
		e.Top = v
	case EdgeBottom:
		if e.Bottom == v {
			return false
		}
		e.Bottom = v
	}
	return true
}

// horizontal and vertical sum the opposing side pairs.
func (e EdgeFloats) horizontal() float64 { return e.Left + e.Right }
func (e EdgeFloats) vertical() float64   { return e.Top + e.Bottom }

// axisSum sums the pair on the given dimension.
func (e EdgeFloats) axisSum(d Dimension) float64 {
	if d == DimensionHorizontal {
		return e.horizontal()
	}
	return e.vertical()
}

// leading and trailing pick the flow-order side on the given dimension.
func (e EdgeFloats) leading(d Dimension) float64 {
	if d == DimensionHorizontal {
		return e.Left
	}
	return e.Top
}

func (e EdgeFloats) trailing(d Dimension) float64 {
	if d == DimensionHorizontal {
		return e.Right
	}
	return e.Bottom
}

// physicalEdge maps Start/End to Left/Right under the given direction.
// Other edges pass through unchanged.
func physicalEdge(edge Edge, rtl bool) Edge {
	switch edge {
	case EdgeStart:
		if rtl {
			return EdgeRight
		}
		return EdgeLeft
	case EdgeEnd:
		if rtl {
			return EdgeLeft
		}
		return EdgeRight
	default:
		return edge
	}
}
