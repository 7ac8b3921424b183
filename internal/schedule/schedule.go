// Package schedule runs one-shot callbacks against a simulated clock.
package schedule

import (
	"sort"
	"time"
)

// Handle identifies a scheduled task.
type Handle uint64

type task struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Scheduler holds pending tasks ordered by due time, then insertion order.
// It is not safe for concurrent use; callers drive it from one loop.
type Scheduler struct {
	now   time.Duration
	next  Handle
	tasks []task
}

// New returns an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.next++
	t := task{handle: s.next, due: s.now + d, fn: fn}
	idx := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > t.due
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[idx+1:], s.tasks[idx:])
	s.tasks[idx] = t
	return t.handle
}

// Cancel drops a pending task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.tasks {
		if t.handle == h {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task and returns how many were dropped.
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = nil
	return n
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d and runs every task due by then.
// Tasks scheduled by callbacks run in the same call when they fall due.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	for len(s.tasks) > 0 && s.tasks[0].due <= target {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.now = t.due
		t.fn()
	}
	s.now = target
}
