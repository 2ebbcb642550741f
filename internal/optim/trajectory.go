package optim

// Trajectory is the ordered sequence of iterate snapshots recorded by
// one Minimize run: one snapshot per completed iteration, in the order
// produced, never reordered or deduplicated.
//
// Snapshots are private copies taken before each update, so they hold
// true historical values, not views into the optimizer's working
// buffer.
type Trajectory struct {
	states [][]float64
}

// push records a copy of x as the next snapshot.
func (t *Trajectory) push(x []float64) {
	snap := make([]float64, len(x))
	copy(snap, x)
	t.states = append(t.states, snap)
}

// Len returns the number of recorded snapshots.
func (t *Trajectory) Len() int {
	return len(t.states)
}

// At returns a copy of the i-th snapshot. Panics if i is out of range.
func (t *Trajectory) At(i int) []float64 {
	snap := make([]float64, len(t.states[i]))
	copy(snap, t.states[i])
	return snap
}

// Last returns a copy of the final snapshot, or nil for an empty
// trajectory.
func (t *Trajectory) Last() []float64 {
	if len(t.states) == 0 {
		return nil
	}
	return t.At(len(t.states) - 1)
}

// States returns the snapshots in recording order. The outer slice is
// fresh; the inner slices are the trajectory's own copies and must be
// treated as read-only.
func (t *Trajectory) States() [][]float64 {
	out := make([][]float64, len(t.states))
	copy(out, t.states)
	return out
}
