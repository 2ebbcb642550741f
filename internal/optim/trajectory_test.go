package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTrajectory_RecordsCopies verifies push snapshots by value: later
// changes to the pushed slice never reach the trajectory.
func TestTrajectory_RecordsCopies(t *testing.T) {
	traj := &Trajectory{}

	x := []float64{1, 2}
	traj.push(x)
	x[0] = 99

	assert.Equal(t, []float64{1, 2}, traj.At(0))
}

// TestTrajectory_AccessorsReturnCopies verifies At and Last hand out
// defensive copies.
func TestTrajectory_AccessorsReturnCopies(t *testing.T) {
	traj := &Trajectory{}
	traj.push([]float64{1, 2})
	traj.push([]float64{3, 4})

	got := traj.At(0)
	got[0] = 99
	assert.Equal(t, []float64{1, 2}, traj.At(0), "At must return a copy")

	last := traj.Last()
	last[1] = 99
	assert.Equal(t, []float64{3, 4}, traj.Last(), "Last must return a copy")
}

// TestTrajectory_Empty verifies the empty-trajectory accessors.
func TestTrajectory_Empty(t *testing.T) {
	traj := &Trajectory{}

	assert.Equal(t, 0, traj.Len())
	assert.Nil(t, traj.Last())
	assert.Empty(t, traj.States())
}

// TestTrajectory_StatesPreservesOrder verifies snapshots come back in
// recording order.
func TestTrajectory_StatesPreservesOrder(t *testing.T) {
	traj := &Trajectory{}
	traj.push([]float64{3})
	traj.push([]float64{2})
	traj.push([]float64{1})

	assert.Equal(t, [][]float64{{3}, {2}, {1}}, traj.States())
}
