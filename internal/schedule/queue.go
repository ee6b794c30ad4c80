// Package schedule runs deferred actions on simulation ticks. It replaces wall
// clock timers: an action scheduled for tick T runs during tick T, after the
// wave trigger and before the rest of the tick.
package schedule

import "container/heap"

// Action is a deferred piece of tick work.
type Action func()

type item struct {
	tick   int
	seq    uint64
	action Action
}

type items []item

func (q items) Len() int { return len(q) }
func (q items) Less(i, j int) bool {
	if q[i].tick != q[j].tick {
		return q[i].tick < q[j].tick
	}
	return q[i].seq < q[j].seq
}
func (q items) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *items) Push(x interface{}) { *q = append(*q, x.(item)) }
func (q *items) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = item{}
	*q = old[:n-1]
	return it
}

// Queue orders actions by tick, then by insertion within a tick.
type Queue struct {
	pending items
	seq     uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Schedule defers action to tick.
func (q *Queue) Schedule(tick int, action Action) {
	q.seq++
	heap.Push(&q.pending, item{tick: tick, seq: q.seq, action: action})
}

// RunDue runs every action due at or before now and returns how many ran.
// Actions scheduled by a running action for a tick <= now run in the same call.
func (q *Queue) RunDue(now int) int {
	ran := 0
	for q.pending.Len() > 0 && q.pending[0].tick <= now {
		it := heap.Pop(&q.pending).(item)
		it.action()
		ran++
	}
	return ran
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	return q.pending.Len()
}

// Clear drops every pending action.
func (q *Queue) Clear() {
	q.pending = nil
}
