package load

import "fmt"

// Progress is a snapshot of a running task.
type Progress struct {
	TotalWork int
	// Completed is the raw amount of notified work. Use CompletedWork for
	// the clamped value.
	Completed int
	// Stages is the stack of stage titles, outermost first.
	Stages []string
}

// CompletedWork returns the completed work clamped to [0, TotalWork].
func (p Progress) CompletedWork() int {
	return max(0, min(p.Completed, p.TotalWork))
}

// Percentage returns the progress in [0, 100].
func (p Progress) Percentage() float64 {
	return float64(p.CompletedWork()) / float64(max(p.TotalWork, 1)) * 100
}

// Stage returns the title of the innermost running stage, or "" when the
// task has none.
func (p Progress) Stage() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[len(p.Stages)-1]
}

func (p Progress) String() string {
	if s := p.Stage(); s != "" {
		return fmt.Sprintf("%s %d/%d (%.0f%%)", s, p.CompletedWork(), p.TotalWork, p.Percentage())
	}
	return fmt.Sprintf("%d/%d (%.0f%%)", p.CompletedWork(), p.TotalWork, p.Percentage())
}
