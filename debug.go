package coffee

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats accumulates loop timings between two reports. Only populated
// when RunConfig.Debug is set.
type debugStats struct {
	frames      int
	ticks       int
	buildTime   time.Duration
	dispatch    time.Duration
	updateTime  time.Duration
	drawTime    time.Duration
	uiDrawTime  time.Duration
	messages    int
	cacheHits   int
	cacheMisses int
}

// debugEvery is the number of frames between two reports.
const debugEvery = 60

// debugLog prints the accumulated stats once every debugEvery frames and
// resets them.
func (s *debugStats) debugLog(w io.Writer) {
	if s.frames < debugEvery {
		return
	}
	per := func(d time.Duration, n int) time.Duration {
		if n == 0 {
			return 0
		}
		return d / time.Duration(n)
	}
	_, _ = fmt.Fprintf(w,
		"[coffee] build: %v | dispatch: %v | update: %v | draw: %v | ui draw: %v\n",
		per(s.buildTime, s.ticks+s.frames), per(s.dispatch, s.ticks), per(s.updateTime, s.ticks),
		per(s.drawTime, s.frames), per(s.uiDrawTime, s.frames))
	_, _ = fmt.Fprintf(w,
		"[coffee] ticks: %d | frames: %d | messages: %d | layout cache: %d hits, %d misses\n",
		s.ticks, s.frames, s.messages, s.cacheHits, s.cacheMisses)
	*s = debugStats{}
}

func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[coffee] "+format+"\n", args...)
}
