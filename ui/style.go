package ui

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // size determined by content or flex
	UnitPoints              // absolute pixels
	UnitPercent             // percentage of the parent's content box
)

// Value is a dimension that can be fixed, a percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value computed from content and flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns an absolute size in pixels.
func Points(px float64) Value {
	return Value{Amount: px, Unit: UnitPoints}
}

// Percent returns a percentage of the available space on a 0-100 scale
// (50 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the pixel value given the available space. Auto yields
// fallback.
func (v Value) Resolve(available, fallback float64) float64 {
	switch v.Unit {
	case UnitPoints:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100
	default:
		return fallback
	}
}

// IsAuto reports whether the value is computed from content and flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

func (v Value) hash(h *Hasher) {
	h.WriteUint8(uint8(v.Unit))
	h.WriteFloat64(v.Amount)
}

// Edges represents values for the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

func (e Edges) hash(h *Hasher) {
	h.WriteFloat64(e.Top)
	h.WriteFloat64(e.Right)
	h.WriteFloat64(e.Bottom)
	h.WriteFloat64(e.Left)
}

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	DirectionRow    Direction = iota // children laid out left to right
	DirectionColumn                  // children laid out top to bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // pack at start
	JustifyEnd                         // pack at end
	JustifyCenter                      // center children
	JustifySpaceBetween                // even space between, none at edges
	JustifySpaceAround                 // even space around each child
	JustifySpaceEvenly                 // equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // align to start of cross axis
	AlignEnd                  // align to end of cross axis
	AlignCenter               // center on cross axis
	AlignStretch              // stretch auto-sized children to fill the cross axis
)

// Style contains the layout properties of a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align

	// Flex item properties
	Grow      float64 // share of leftover main-axis space relative to siblings
	Shrink    float64 // share of overflow removed relative to siblings (default 1)
	AlignSelf *Align  // overrides the parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Direction:  DirectionColumn,
		AlignItems: AlignStretch,
		Shrink:     1,
	}
}

func (s Style) hash(h *Hasher) {
	s.Width.hash(h)
	s.Height.hash(h)
	s.MinWidth.hash(h)
	s.MinHeight.hash(h)
	s.MaxWidth.hash(h)
	s.MaxHeight.hash(h)
	h.WriteUint8(uint8(s.Direction))
	h.WriteUint8(uint8(s.JustifyContent))
	h.WriteUint8(uint8(s.AlignItems))
	h.WriteFloat64(s.Grow)
	h.WriteFloat64(s.Shrink)
	if s.AlignSelf != nil {
		h.WriteBool(true)
		h.WriteUint8(uint8(*s.AlignSelf))
	} else {
		h.WriteBool(false)
	}
	s.Padding.hash(h)
	s.Margin.hash(h)
}

func (s Style) mainSize(row bool) Value {
	if row {
		return s.Width
	}
	return s.Height
}

func (s Style) crossSize(row bool) Value {
	if row {
		return s.Height
	}
	return s.Width
}
