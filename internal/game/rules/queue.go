package rules

import (
	"sync"
)

// PendingQueue holds fired triggers waiting to resolve, in firing order.
// Unlike an interactive stack there is no response window, so resolutions
// happen first-in first-out.
type PendingQueue struct {
	mu    sync.Mutex
	items []Pending
}

// NewPendingQueue creates an empty pending queue.
func NewPendingQueue() *PendingQueue {
	return &PendingQueue{
		items: make([]Pending, 0, 16),
	}
}

// Enqueue appends items to the back of the queue.
func (pq *PendingQueue) Enqueue(items ...Pending) {
	if len(items) == 0 {
		return
	}
	pq.mu.Lock()
	defer pq.mu.Unlock()
	pq.items = append(pq.items, items...)
}

// Next removes and returns the front item.
func (pq *PendingQueue) Next() (Pending, bool) {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	if len(pq.items) == 0 {
		return Pending{}, false
	}
	item := pq.items[0]
	pq.items = pq.items[1:]
	return item, true
}

// Len returns the number of queued items.
func (pq *PendingQueue) Len() int {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	return len(pq.items)
}

// IsEmpty returns whether the queue is empty.
func (pq *PendingQueue) IsEmpty() bool {
	return pq.Len() == 0
}

// Clear drops all queued items and returns them, front first.
func (pq *PendingQueue) Clear() []Pending {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	dropped := pq.items
	pq.items = make([]Pending, 0, 16)
	return dropped
}

// List returns a copy of all queued items, front first.
func (pq *PendingQueue) List() []Pending {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	cpy := make([]Pending, len(pq.items))
	copy(cpy, pq.items)
	return cpy
}
