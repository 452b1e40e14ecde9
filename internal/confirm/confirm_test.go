package confirm

import "testing"

func TestGate_ConfirmInvokesWithLatest(t *testing.T) {
	var g Gate
	g.Request(3)
	g.Request(5)

	called := 0
	got := 0
	g.Confirm(func(id int) {
		called++
		got = id
	})

	if called != 1 {
		t.Fatalf("Expected commit called once, got %d", called)
	}
	if got != 5 {
		t.Errorf("Expected latest subject 5, got %d", got)
	}
	if _, ok := g.Pending(); ok {
		t.Error("Expected gate cleared after confirm")
	}
}

func TestGate_ConfirmWithoutRequest(t *testing.T) {
	var g Gate
	g.Confirm(func(int) {
		t.Fatal("Expected commit not to run with nothing pending")
	})
}

func TestGate_Cancel(t *testing.T) {
	var g Gate
	g.Request(9)
	g.Cancel()

	if _, ok := g.Pending(); ok {
		t.Error("Expected nothing pending after cancel")
	}
	g.Confirm(func(int) {
		t.Fatal("Expected cancelled gate not to commit")
	})
}

func TestGate_ClearedBeforeCommitRuns(t *testing.T) {
	var g Gate
	g.Request(2)
	g.Confirm(func(int) {
		if _, ok := g.Pending(); ok {
			t.Error("Expected gate already cleared inside commit")
		}
	})
}
