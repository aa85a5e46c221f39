package utils

import (
	"time"

	"github.com/Fantom-foundation/Tally/logger"
)

// ProgressThreshold is the number of steps between two progress reports.
const ProgressThreshold = 1_000_000

// ProgressTracker reports the rate of a long running loop, e.g. reading tokens.
type ProgressTracker struct {
	step      uint64        // step counter
	threshold uint64        // steps between reports
	start     time.Time     // start time
	last      time.Time     // last reported time
	rate      float64       // smoothed steps per second
	what      string        // name of the counted items
	log       logger.Logger // Message logger
}

// NewProgressTracker creates a new progress tracker reporting every threshold steps.
func NewProgressTracker(what string, threshold uint64, log logger.Logger) *ProgressTracker {
	if threshold == 0 {
		threshold = ProgressThreshold
	}
	now := time.Now()
	return &ProgressTracker{
		threshold: threshold,
		start:     now,
		last:      now,
		what:      what,
		log:       log,
	}
}

// Step counts one item and reports the rate once the threshold is reached.
func (pt *ProgressTracker) Step() {
	pt.step++
	if pt.step%pt.threshold != 0 {
		return
	}
	now := time.Now()
	currentRate := float64(pt.threshold) / now.Sub(pt.last).Seconds()
	if pt.rate == 0.0 {
		pt.rate = currentRate
	} else {
		pt.rate = currentRate*0.1 + pt.rate*0.9
	}
	pt.last = now
	elapsed := int(now.Sub(pt.start).Seconds())
	pt.log.Infof("Reading %v ... %d read, %8.1f %v/s, time: %d:%02d", pt.what, pt.step, pt.rate, pt.what, elapsed/60, elapsed%60)
}

// Steps returns the number of counted items.
func (pt *ProgressTracker) Steps() uint64 {
	return pt.step
}

// Finish reports the total number of items and the elapsed time.
func (pt *ProgressTracker) Finish() {
	hours, minutes, seconds := logger.ParseTime(time.Since(pt.start))
	pt.log.Noticef("Read %d %v in %vh %vm %vs", pt.step, pt.what, hours, minutes, seconds)
}
