// Package notify is the transient user-facing message queue. Any component
// produces; the display surface consumes.
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

// Queue appends on Show and removes anywhere on Dismiss. The display shows
// the most recently added toast first; older ones surface as newer ones are
// dismissed.
type Queue struct {
	mu     sync.Mutex
	toasts []view.Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

// Show appends a toast with a fresh identifier. Identifiers only need to be
// distinct among live toasts.
func (q *Queue) Show(message string, title ...string) view.Toast {
	t := view.Toast{ID: uuid.NewString(), Message: message}
	if len(title) > 0 {
		t.Title = title[0]
	}

	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()
	return t
}

// Dismiss removes the toast with the given identifier from anywhere in the
// queue.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	q.toasts = kept
}

// Current is the toast the display surface shows: the last one added.
func (q *Queue) Current() (view.Toast, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.toasts) == 0 {
		return view.Toast{}, false
	}
	return q.toasts[len(q.toasts)-1], true
}

// All returns the queue in insertion order.
func (q *Queue) All() []view.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]view.Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}
