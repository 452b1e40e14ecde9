// Package confirm is the two-phase gate in front of destructive actions:
// request, then an explicit confirm or cancel.
package confirm

// Gate tracks at most one pending subject. A second Request simply replaces
// the pending identifier.
type Gate struct {
	pendingID  int
	hasPending bool
}

// Request records the subject and arms the gate. Nothing is executed yet.
func (g *Gate) Request(subjectID int) {
	g.pendingID = subjectID
	g.hasPending = true
}

// Confirm invokes commit with the pending identifier, then clears the gate
// regardless of what commit did. Error handling belongs to the commit
// action itself.
func (g *Gate) Confirm(commit func(subjectID int)) {
	if !g.hasPending {
		return
	}
	id := g.pendingID
	g.pendingID = 0
	g.hasPending = false
	commit(id)
}

// Cancel clears the gate without invoking anything.
func (g *Gate) Cancel() {
	g.pendingID = 0
	g.hasPending = false
}

// Pending reports the armed subject, if any.
func (g *Gate) Pending() (int, bool) {
	return g.pendingID, g.hasPending
}
