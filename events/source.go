// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Source delivers events one at a time. NextEvent blocks until an event
// is available; ok is false once the source is closed and will never
// deliver another event.
type Source interface {
	NextEvent() (ev Event, ok bool)
}

// Queue is a FIFO event queue. Send may be called from any goroutine.
// The zero value is an empty queue ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send appends the event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// NextEvent removes and returns the event at the front of the queue.
// It returns nil if the queue is empty; it never blocks.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Sequence is a [Source] that delivers a fixed list of events in order
// and then reports itself closed.
type Sequence struct {
	events []Event
	next   int
}

// NewSequence returns a [Sequence] delivering the given events.
func NewSequence(evs ...Event) *Sequence {
	return &Sequence{events: evs}
}

func (sq *Sequence) NextEvent() (Event, bool) {
	if sq.next >= len(sq.events) {
		return nil, false
	}
	ev := sq.events[sq.next]
	sq.next++
	return ev, true
}

// Remaining returns the number of events not yet delivered.
func (sq *Sequence) Remaining() int {
	return len(sq.events) - sq.next
}
