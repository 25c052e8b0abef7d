package events

import (
	"github.com/lixenwraith/eco-fighter/constants"
)

// EventQueue is a fixed ring buffer for game events
// Single producer and single consumer: the loop goroutine owns it
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest on overflow. O(1)
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constants.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}
