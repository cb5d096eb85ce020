// Package format renders durations and throughput figures for the
// progress display and its final summary.
package format

import (
	"fmt"
	"math"
	"time"
)

// Duration renders d using its largest whole unit, matching the
// historical summary format:
//
//	0.5s   -> "500 ms"
//	1.5s   -> "1.50 seconds"
//	90s    -> "30.00 minutes"   (seconds within the minute)
//	3700s  -> "1 02 minutes"    (hours, then minutes within the hour)
//
// The minutes band shows the leftover seconds rather than total
// minutes. That reads oddly but is the established output of this
// tool, and downstream scripts parse it.
func Duration(d time.Duration) string {
	seconds := d.Seconds()

	switch {
	case seconds < 1:
		return fmt.Sprintf("%.0f ms", seconds/1e-3)
	case seconds < 60:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.2f minutes", math.Mod(seconds, 60))
	default:
		hours := math.Floor(seconds / 3600)
		minutes := (seconds - hours*3600) / 60
		return fmt.Sprintf("%.0f %02.0f minutes", hours, minutes)
	}
}

// Rate renders a throughput figure in units per second.
func Rate(unitsPerSecond float64) string {
	return fmt.Sprintf("%.2f units/s", unitsPerSecond)
}
