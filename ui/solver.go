package ui

import (
	"math"

	"github.com/phanxgames/coffee/graphics"
)

var inf = math.Inf(1)

// flexItem holds intermediate calculation state for a child. It lives only
// for one arrange call.
type flexItem struct {
	size     float64 // main size, border box
	min, max float64
	cross    float64 // measured cross size, border box
	grow     float64
	shrink   float64
	fixed    bool
	frozen   bool
}

// Solve lays out root within the available size and returns the resolved
// geometry. Auto root dimensions fill the available size. Identical inputs
// always yield identical output.
func Solve(root *Node, available graphics.Size) Layout {
	s := root.Style
	w, _ := resolve(s.Width, available.Width)
	if s.Width.IsAuto() {
		w = available.Width
	}
	h, _ := resolve(s.Height, available.Height)
	if s.Height.IsAuto() {
		h = available.Height
	}
	w = clampSize(w, minOf(s.MinWidth, available.Width), maxOf(s.MaxWidth, available.Width))
	h = clampSize(h, minOf(s.MinHeight, available.Height), maxOf(s.MaxHeight, available.Height))
	return arrange(root, graphics.Rectangle{Width: w, Height: h})
}

// measureSize returns the border box n wants when its parent's content box
// is availW x availH, before any flex distribution.
func (n *Node) measureSize(availW, availH float64) graphics.Size {
	s := n.Style
	w, wAuto := resolve(s.Width, availW)
	h, hAuto := resolve(s.Height, availH)

	if wAuto || hAuto {
		innerW := availW - s.Margin.Horizontal()
		if !wAuto {
			innerW = w
		}
		innerH := availH - s.Margin.Vertical()
		if !hAuto {
			innerH = h
		}
		innerW = math.Max(0, math.Min(innerW, maxOf(s.MaxWidth, availW))-s.Padding.Horizontal())
		innerH = math.Max(0, math.Min(innerH, maxOf(s.MaxHeight, availH))-s.Padding.Vertical())

		content := n.contentSize(innerW, innerH)
		if wAuto {
			w = content.Width + s.Padding.Horizontal()
		}
		if hAuto {
			h = content.Height + s.Padding.Vertical()
		}
	}

	return graphics.Size{
		Width:  clampSize(w, minOf(s.MinWidth, availW), maxOf(s.MaxWidth, availW)),
		Height: clampSize(h, minOf(s.MinHeight, availH), maxOf(s.MaxHeight, availH)),
	}
}

// contentSize is the intrinsic size of n's content box.
func (n *Node) contentSize(innerW, innerH float64) graphics.Size {
	if n.measure != nil {
		return n.measure(innerW, innerH)
	}
	row := n.Style.Direction == DirectionRow
	var main, cross float64
	for _, c := range n.Children {
		cs := c.measureSize(innerW, innerH)
		m := c.Style.Margin
		if row {
			main += cs.Width + m.Horizontal()
			cross = math.Max(cross, cs.Height+m.Vertical())
		} else {
			main += cs.Height + m.Vertical()
			cross = math.Max(cross, cs.Width+m.Horizontal())
		}
	}
	if row {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// arrange resolves n inside the border box rect and recurses into its
// children.
func arrange(n *Node, rect graphics.Rectangle) Layout {
	l := Layout{Bounds: rect}
	if len(n.Children) == 0 {
		return l
	}

	s := n.Style
	content := graphics.Rectangle{
		X:      rect.X + s.Padding.Left,
		Y:      rect.Y + s.Padding.Top,
		Width:  math.Max(0, rect.Width-s.Padding.Horizontal()),
		Height: math.Max(0, rect.Height-s.Padding.Vertical()),
	}
	row := s.Direction == DirectionRow
	mainAvail, crossAvail := content.Width, content.Height
	if !row {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	// Phase 1: hypothetical sizes
	items := make([]flexItem, len(n.Children))
	used := 0.0
	for i, c := range n.Children {
		cs := c.measureSize(content.Width, content.Height)
		it := &items[i]
		it.grow = c.Style.Grow
		it.shrink = c.Style.Shrink
		it.fixed = c.Style.mainSize(row).Unit == UnitPoints
		if row {
			it.size, it.cross = cs.Width, cs.Height
			it.min = minOf(c.Style.MinWidth, mainAvail)
			it.max = maxOf(c.Style.MaxWidth, mainAvail)
			used += it.size + c.Style.Margin.Horizontal()
		} else {
			it.size, it.cross = cs.Height, cs.Width
			it.min = minOf(c.Style.MinHeight, mainAvail)
			it.max = maxOf(c.Style.MaxHeight, mainAvail)
			used += it.size + c.Style.Margin.Vertical()
		}
	}

	// Phase 2: distribute free space
	if free := mainAvail - used; free > 0 {
		growItems(items, free)
	} else if free < 0 {
		shrinkItems(items, -free)
	}

	used = 0
	for i, c := range n.Children {
		used += items[i].size + mainMargins(c.Style.Margin, row)
	}
	free := mainAvail - used

	// Phase 3: justify along the main axis
	pos := justifyOffset(s.JustifyContent, free, len(items))
	spacing := justifySpacing(s.JustifyContent, free, len(items))

	// Phase 4: cross axis, then recurse
	l.Children = make([]Layout, len(n.Children))
	for i, c := range n.Children {
		it := &items[i]
		m := c.Style.Margin
		mainLead, mainTrail, crossLead, crossTrail := m.Left, m.Right, m.Top, m.Bottom
		minCross, maxCross := minOf(c.Style.MinHeight, crossAvail), maxOf(c.Style.MaxHeight, crossAvail)
		if !row {
			mainLead, mainTrail, crossLead, crossTrail = m.Top, m.Bottom, m.Left, m.Right
			minCross, maxCross = minOf(c.Style.MinWidth, crossAvail), maxOf(c.Style.MaxWidth, crossAvail)
		}

		mainPos := pos + mainLead
		pos += mainLead + it.size + mainTrail + spacing

		align := s.AlignItems
		if c.Style.AlignSelf != nil {
			align = *c.Style.AlignSelf
		}
		slot := math.Max(0, crossAvail-crossLead-crossTrail)
		crossSize := it.cross
		if align == AlignStretch && c.Style.crossSize(row).IsAuto() {
			crossSize = clampSize(slot, minCross, maxCross)
		}
		crossPos := crossLead + alignOffset(align, slot, crossSize)

		var childRect graphics.Rectangle
		if row {
			childRect = graphics.Rectangle{
				X: content.X + mainPos, Y: content.Y + crossPos,
				Width: it.size, Height: crossSize,
			}
		} else {
			childRect = graphics.Rectangle{
				X: content.X + crossPos, Y: content.Y + mainPos,
				Width: crossSize, Height: it.size,
			}
		}
		l.Children[i] = arrange(c, childRect)
	}
	return l
}

// growItems hands free space to growable items in proportion to their grow
// factor. Items that hit their max are frozen and the rest is redistributed.
func growItems(items []flexItem, free float64) {
	for free > 0 {
		total := 0.0
		for i := range items {
			if items[i].grow > 0 && !items[i].frozen {
				total += items[i].grow
			}
		}
		if total == 0 {
			return
		}
		distributed := 0.0
		clamped := false
		for i := range items {
			it := &items[i]
			if it.grow <= 0 || it.frozen {
				continue
			}
			want := it.size + free*it.grow/total
			if want >= it.max {
				want = math.Max(it.size, it.max)
				it.frozen = true
				clamped = true
			}
			distributed += want - it.size
			it.size = want
		}
		free -= distributed
		if !clamped {
			return
		}
	}
}

// shrinkItems removes overflow. Growable items give up space first, grow-less
// items last. Fixed-size items never shrink and no item goes below its min
// or zero.
func shrinkItems(items []flexItem, deficit float64) {
	for i := range items {
		items[i].frozen = false
	}
	for _, growable := range [2]bool{true, false} {
		for deficit > 0 {
			total := 0.0
			for i := range items {
				if it := &items[i]; shrinkable(it, growable) {
					total += it.shrink * it.size
				}
			}
			if total == 0 {
				break
			}
			removed := 0.0
			clamped := false
			for i := range items {
				it := &items[i]
				if !shrinkable(it, growable) {
					continue
				}
				want := it.size - deficit*it.shrink*it.size/total
				if floor := math.Max(it.min, 0); want <= floor {
					want = math.Min(it.size, floor)
					it.frozen = true
					clamped = true
				}
				removed += it.size - want
				it.size = want
			}
			deficit -= removed
			if !clamped {
				break
			}
		}
	}
}

func shrinkable(it *flexItem, growable bool) bool {
	return !it.fixed && !it.frozen && it.shrink > 0 && it.size > 0 && (it.grow > 0) == growable
}

// justifyOffset returns the initial main-axis offset.
func justifyOffset(justify Justify, free float64, count int) float64 {
	if free <= 0 || count == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / float64(count*2)
	case JustifySpaceEvenly:
		return free / float64(count+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra space between consecutive children.
func justifySpacing(justify Justify, free float64, count int) float64 {
	if free <= 0 || count <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return free / float64(count-1)
	case JustifySpaceAround:
		return free / float64(count)
	case JustifySpaceEvenly:
		return free / float64(count+1)
	default:
		return 0
	}
}

// alignOffset positions an item of size within a cross slot.
func alignOffset(align Align, slot, size float64) float64 {
	switch align {
	case AlignEnd:
		return slot - size
	case AlignCenter:
		return (slot - size) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

func mainMargins(m Edges, row bool) float64 {
	if row {
		return m.Horizontal()
	}
	return m.Vertical()
}

// resolve returns the pixel value of v and whether it must come from
// content instead. Percentages of an unbounded space count as auto.
func resolve(v Value, available float64) (float64, bool) {
	switch v.Unit {
	case UnitPoints:
		return v.Amount, false
	case UnitPercent:
		if math.IsInf(available, 0) {
			return 0, true
		}
		return available * v.Amount / 100, false
	default:
		return 0, true
	}
}

func minOf(v Value, available float64) float64 {
	px, auto := resolve(v, available)
	if auto {
		return 0
	}
	return px
}

func maxOf(v Value, available float64) float64 {
	px, auto := resolve(v, available)
	if auto {
		return inf
	}
	return px
}

// clampSize restricts v to [lo, hi] and never returns a negative size.
// If lo > hi, lo wins.
func clampSize(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return math.Max(v, 0)
}
