package playlists

import "sort"

// moveStep is a single physical track move within a playlist.
type moveStep struct {
	from int
	to   int
}

// positionCalculator plans batch moves of selected positions.
// It separates the pure position calculation from mutating the playlist.
type positionCalculator struct {
	sorted []int // sorted positions to move
	count  int   // total track count
}

// newPositionCalculator creates a calculator for the given positions.
func newPositionCalculator(positions []int, count int) *positionCalculator {
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)
	return &positionCalculator{sorted: sorted, count: count}
}

// canShift returns true if every position can move by delta and stay in bounds.
// Returns false if there are no positions to move or delta is zero.
func (c *positionCalculator) canShift(delta int) bool {
	if len(c.sorted) == 0 || delta == 0 {
		return false
	}
	if delta < 0 {
		return c.sorted[0]+delta >= 0
	}
	return c.sorted[len(c.sorted)-1]+delta < c.count
}

// shiftSteps returns the moves that shift the whole selection by delta.
// Moving up processes positions in ascending order, moving down in
// descending order, so a move never lands on a position still to be processed.
func (c *positionCalculator) shiftSteps(delta int) []moveStep {
	if !c.canShift(delta) {
		return nil
	}

	steps := make([]moveStep, 0, len(c.sorted))
	if delta < 0 {
		for _, pos := range c.sorted {
			steps = append(steps, moveStep{from: pos, to: pos + delta})
		}
		return steps
	}
	for i := len(c.sorted) - 1; i >= 0; i-- {
		pos := c.sorted[i]
		steps = append(steps, moveStep{from: pos, to: pos + delta})
	}
	return steps
}

// toTopSteps returns the moves that pack the selection at the start,
// keeping its relative order. Positions already in place are skipped.
func (c *positionCalculator) toTopSteps() []moveStep {
	var steps []moveStep
	for target, pos := range c.sorted {
		if pos != target {
			steps = append(steps, moveStep{from: pos, to: target})
		}
	}
	return steps
}

// toBottomSteps returns the moves that pack the selection at the end,
// keeping its relative order. Positions already in place are skipped.
func (c *positionCalculator) toBottomSteps() []moveStep {
	var steps []moveStep
	target := c.count - 1
	for i := len(c.sorted) - 1; i >= 0; i-- {
		if pos := c.sorted[i]; pos != target {
			steps = append(steps, moveStep{from: pos, to: target})
		}
		target--
	}
	return steps
}

// movedIndex returns where index i ends up after the track at from moves to to.
func movedIndex(i, from, to int) int {
	switch {
	case i == from:
		return to
	case from < to && i > from && i <= to:
		return i - 1
	case from > to && i >= to && i < from:
		return i + 1
	default:
		return i
	}
}

// removedIndex returns where index i ends up after the track at removed is
// deleted, or -1 if i was the removed index.
func removedIndex(i, removed int) int {
	switch {
	case i == removed:
		return -1
	case i > removed:
		return i - 1
	default:
		return i
	}
}

// insertedIndex returns where index i ends up after count tracks are
// inserted before position at.
func insertedIndex(i, at, count int) int {
	if i >= at {
		return i + count
	}
	return i
}
