package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionGraph(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, true},
		{StatusCancelled, StatusInProgress, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestTransitionGuards(t *testing.T) {
	assert.True(t, CanStart(StatusPending))
	assert.False(t, CanStart(StatusInProgress))
	assert.False(t, CanStart(StatusCompleted))
	assert.False(t, CanStart(StatusCancelled))

	assert.True(t, CanComplete(StatusInProgress))
	assert.False(t, CanComplete(StatusPending))

	assert.True(t, CanCancel(StatusPending))
	assert.True(t, CanCancel(StatusInProgress))
	assert.False(t, CanCancel(StatusCompleted))
	assert.False(t, CanCancel(StatusCancelled))

	assert.True(t, CanReopen(StatusCancelled))
	assert.False(t, CanReopen(StatusPending))
	assert.False(t, CanReopen(StatusCompleted))
}

func TestCompletedIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusInProgress))
	assert.False(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(Status("bogus")))
}

func TestValidStatusAndPriority(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus(Status("done")))

	for _, p := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		assert.True(t, ValidPriority(p))
	}
	assert.False(t, ValidPriority(Priority("asap")))
}

func TestDescribeLookup(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Describe().Label)
	assert.Equal(t, "Urgent", PriorityUrgent.Describe().Label)
	// unknown values fall back to the raw string, never panic
	assert.Equal(t, "weird", Status("weird").Describe().Label)
}
