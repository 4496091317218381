package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Lightweight per-frame CPU timer for coarse subsystem breakdowns.

var (
	enabled atomic.Bool

	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

func noop() {}

// SetEnabled turns timing collection on or off. Collection is off by
// default, which reduces Track to a single atomic load.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether timing collection is on.
func Enabled() bool {
	return enabled.Load()
}

// Track records the time until the returned stop function runs, accumulated
// under name for the current frame. Safe to call from multiple goroutines.
// Usage: defer profiling.Track("chunks.update")()
func Track(name string) func() {
	if !enabled.Load() {
		return noop
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame drops the accumulated totals. Call once per frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot copies the totals accumulated since the last ResetFrame.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN renders the n largest totals as "name:1.2ms" pairs, largest first.
func TopN(n int) string {
	snap := Snapshot()
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
