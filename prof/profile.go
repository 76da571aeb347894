// Package prof is a minimal label/duration collector used by the
// fieldbench command to aggregate operation timings.
package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// MeanByLabel averages the recorded durations per label.
func MeanByLabel(entries []Entry) map[string]time.Duration {
	sums := make(map[string]time.Duration)
	counts := make(map[string]int)
	for _, e := range entries {
		sums[e.Label] += e.Dur
		counts[e.Label]++
	}
	out := make(map[string]time.Duration, len(sums))
	for label, sum := range sums {
		out[label] = sum / time.Duration(counts[label])
	}
	return out
}
