package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncFriendship(t *testing.T) {
	before := testutil.ToFloat64(friendshipTransitionsTotal.WithLabelValues(ActionAccept))
	IncFriendship(ActionAccept)
	IncFriendship(ActionAccept)

	if got := testutil.ToFloat64(friendshipTransitionsTotal.WithLabelValues(ActionAccept)); got != before+2 {
		t.Errorf("accept counter = %v, want %v", got, before+2)
	}
}

func TestIncTaskCounters(t *testing.T) {
	c := testutil.ToFloat64(taskCompletionsTotal)
	u := testutil.ToFloat64(taskUncompletionsTotal)

	IncTaskCompleted()
	IncTaskUncompleted()

	if got := testutil.ToFloat64(taskCompletionsTotal); got != c+1 {
		t.Errorf("completions = %v, want %v", got, c+1)
	}
	if got := testutil.ToFloat64(taskUncompletionsTotal); got != u+1 {
		t.Errorf("uncompletions = %v, want %v", got, u+1)
	}
}

func TestSetUsersRegistered(t *testing.T) {
	SetUsersRegistered(42)
	if got := testutil.ToFloat64(usersRegistered); got != 42 {
		t.Errorf("users gauge = %v, want 42", got)
	}
}
