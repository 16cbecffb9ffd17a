package rules

// Fate names the rule that decided a cell's next state.
type Fate int

const (
	// Unchanged is a dead cell that stays dead.
	Unchanged Fate = iota
	// Underpopulation kills a live cell with fewer than two live neighbors.
	Underpopulation
	// Survival keeps a live cell with two or three live neighbors.
	Survival
	// Overpopulation kills a live cell with more than three live neighbors.
	Overpopulation
	// Reproduction revives a dead cell with exactly three live neighbors.
	Reproduction
)

var fateNames = [...]string{
	Unchanged:       "unchanged",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (f Fate) String() string {
	if f < 0 || int(f) >= len(fateNames) {
		return "unknown"
	}
	return fateNames[f]
}

// Alive reports whether the cell is alive in the next generation.
func (f Fate) Alive() bool {
	return f == Survival || f == Reproduction
}

// Classify returns the rule that applies to a cell with the given state and
// number of live neighbors.
func Classify(neighbors int, alive bool) Fate {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors <= 3:
		return Survival
	case alive:
		return Overpopulation
	case neighbors == 3:
		return Reproduction
	default:
		return Unchanged
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
