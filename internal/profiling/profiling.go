package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight CPU profiler for pipeline-stage timings.

var (
	mu        sync.Mutex
	runTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("meshing.Batch")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		runTotals[name] += d
		mu.Unlock()
	}
}

// Reset clears accumulated totals.
func Reset() {
	mu.Lock()
	for k := range runTotals {
		delete(runTotals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(runTotals))
	for k, v := range runTotals {
		out[k] = v
	}
	return out
}

// Summary formats the accumulated stage timings, slowest first.
// Example: "meshing.Batch:42ms, store.Save:7ms"
func Summary() string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })

	parts := make([]string, 0, len(list))
	for _, p := range list {
		parts = append(parts, fmt.Sprintf("%s:%s", p.name, p.dur.Round(time.Microsecond)))
	}
	return strings.Join(parts, ", ")
}
