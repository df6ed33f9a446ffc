package load

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalReporter prints progress as a text bar. On a terminal the bar is
// redrawn in place and sized to the terminal width; otherwise one line is
// written per stage change.
type TerminalReporter struct {
	w        io.Writer
	terminal bool
	width    int

	lastStage string
	lastPct   int
}

// NewTerminalReporter creates a reporter writing to f (usually os.Stderr).
func NewTerminalReporter(f *os.File) *TerminalReporter {
	r := &TerminalReporter{w: f, width: 40, lastPct: -1}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		r.terminal = true
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			r.width = min(w-20, 60)
		}
	}
	return r
}

// newWriterReporter reports to a plain writer, never as a terminal.
func newWriterReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w, width: 40, lastPct: -1}
}

// Report writes p. It matches the onProgress signature of Task.Run.
func (r *TerminalReporter) Report(p Progress) {
	pct := int(p.Percentage())
	stage := p.Stage()

	if !r.terminal {
		if stage != r.lastStage || (pct == 100 && r.lastPct != 100) {
			fmt.Fprintf(r.w, "[coffee] %s\n", p)
		}
		r.lastStage, r.lastPct = stage, pct
		return
	}

	if pct == r.lastPct && stage == r.lastStage {
		return
	}
	r.lastStage, r.lastPct = stage, pct
	filled := r.width * pct / 100
	bar := strings.Repeat("#", filled) + strings.Repeat("-", r.width-filled)
	fmt.Fprintf(r.w, "\r[%s] %3d%% %s\x1b[K", bar, pct, stage)
	if pct == 100 {
		fmt.Fprintln(r.w)
	}
}
