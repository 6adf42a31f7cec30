// Package loop provides the timer abstraction that drives game sessions.
//
// A session never sleeps or spawns goroutines itself. It asks a Scheduler to
// call it back later, and the front end decides how time passes: the TUI maps
// callbacks onto Bubble Tea tick messages, while tests, the headless
// simulator, and the desktop window advance a Manual clock explicitly.
package loop

import "time"

// Timer is a pending callback registered with a Scheduler.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
// Callbacks run on the scheduler's own goroutine and must not block.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Interval converts a rate in events per second to a period.
// Non-positive rates yield zero.
func Interval(perSecond int) time.Duration {
	if perSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(perSecond)
}
