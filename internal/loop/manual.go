package loop

import (
	"container/heap"
	"time"
)

// Manual is a virtual-clock Scheduler. Nothing fires until the clock is
// advanced; timers then run in due order, ties in registration order.
// While a callback runs, Now reports the callback's due time, so timers
// scheduled from inside a callback are relative to it.
//
// Manual is not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of scheduled, not yet fired timers.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// AfterFunc schedules fn to run once d has elapsed on the virtual clock.
// Negative delays are treated as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, fn: fn}
	heap.Push(&m.queue, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that becomes due.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	return m.AdvanceTo(m.now + d)
}

// AdvanceTo moves the clock to t, firing every timer due at or before t.
// Timers scheduled by callbacks fire too if they fall within the window.
func (m *Manual) AdvanceTo(t time.Duration) int {
	fired := 0
	for len(m.queue) > 0 && m.queue[0].due <= t {
		m.fireNext()
		fired++
	}
	if t > m.now {
		m.now = t
	}
	return fired
}

// Step fires the next pending timer, moving the clock to its due time.
// It reports false when nothing is scheduled.
func (m *Manual) Step() bool {
	if len(m.queue) == 0 {
		return false
	}
	m.fireNext()
	return true
}

func (m *Manual) fireNext() {
	t := heap.Pop(&m.queue).(*manualTimer)
	t.index = -1
	if t.due > m.now {
		m.now = t.due
	}
	t.fn()
}

type manualTimer struct {
	m     *Manual
	due   time.Duration
	seq   uint64
	fn    func()
	index int
}

func (t *manualTimer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.m.queue, t.index)
	t.index = -1
	return true
}

// timerQueue is a min-heap ordered by due time, then registration order.
type timerQueue []*manualTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*manualTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
