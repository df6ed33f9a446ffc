package ui

// MouseCursor is a hint about which cursor glyph to display.
type MouseCursor uint8

const (
	CursorDefault MouseCursor = iota
	CursorPointer
	CursorWorking
	CursorGrab
	CursorGrabbing
)

var mouseCursorNames = [...]string{
	CursorDefault:  "Default",
	CursorPointer:  "Pointer",
	CursorWorking:  "Working",
	CursorGrab:     "Grab",
	CursorGrabbing: "Grabbing",
}

func (c MouseCursor) String() string {
	if int(c) < len(mouseCursorNames) {
		return mouseCursorNames[c]
	}
	return "Unknown"
}

// fold keeps the most specific hint: a non-default next replaces current.
func (c MouseCursor) fold(next MouseCursor) MouseCursor {
	if next != CursorDefault {
		return next
	}
	return c
}
