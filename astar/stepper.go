package astar

import (
	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/internal"
)

// Status is the outcome of one Step call.
type Status int

const (
	// StatusContinue means a node was expanded and the search is not finished.
	StatusContinue Status = iota
	// StatusSuccess means the goal was removed from the open set.
	StatusSuccess
	// StatusFailed means the open set is exhausted; no path exists.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further expansion will happen.
func (s Status) Terminal() bool { return s != StatusContinue }

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current    Coord
	HasCurrent bool
	Open       map[Coord]bool
	Closed     map[Coord]bool
	Relaxed    []RelaxProposal
	Path       []Coord
	Status     Status
	StepIndex  int
}

// Stepper runs A* one expansion at a time so a caller can observe progress
// between calls. It is not safe for concurrent use.
type Stepper struct {
	grid   *Grid
	state  *searchState
	logger *zap.Logger

	status    Status
	stepCount int
	current   int
	relaxed   []RelaxProposal
}

// NewStepper creates a fresh search over grid with only the start node open.
func NewStepper(grid *Grid, options ...Option) *Stepper {
	opts := newOptions(options)
	return &Stepper{
		grid:    grid,
		state:   newSearchState(grid),
		logger:  opts.Logger,
		status:  StatusContinue,
		current: -1,
	}
}

// Grid returns the lattice being searched.
func (s *Stepper) Grid() *Grid { return s.grid }

// Status returns the result of the latest Step.
func (s *Stepper) Status() Status { return s.status }

// Steps returns how many Step calls expanded a node.
func (s *Stepper) Steps() int { return s.stepCount }

// Step performs at most one expansion. Once a terminal status has been
// returned every later call returns it again without touching the state.
func (s *Stepper) Step() Status {
	if s.status.Terminal() {
		return s.status
	}
	s.relaxed = s.relaxed[:0]

	st := s.state
	if st.isEmpty() {
		s.status = StatusFailed
		s.current = -1
		s.logger.Debug("search exhausted",
			zap.Int("steps", s.stepCount),
			zap.Int("closed", st.closed))
		return s.status
	}

	s.stepCount++
	best := st.removeBest()
	st.markClosed(best)
	s.current = best

	if best == s.grid.ID(s.grid.goal) {
		s.status = StatusSuccess
		s.logger.Debug("goal reached",
			zap.Int("steps", s.stepCount),
			zap.Int("cost", st.gScore[best]))
		return s.status
	}

	from := s.grid.Coord(best)
	for _, nb := range s.grid.neighbors[best] {
		if s.grid.cells[nb] == Blocked || st.isClosed(nb) {
			continue
		}
		to := s.grid.Coord(nb)
		tentativeG := st.gScore[best] + Manhattan(from, to)

		inOpen := st.isInOpen(nb)
		if inOpen && tentativeG >= st.gScore[nb] {
			continue
		}
		st.gScore[nb] = tentativeG
		st.fCost[nb] = tentativeG + s.grid.h[nb]
		st.previous[nb] = best
		if inOpen {
			st.decreaseKey(nb)
		} else {
			st.insertOpen(nb)
		}
		s.relaxed = append(s.relaxed, RelaxProposal{
			FromNode: from,
			ToNode:   to,
			GScore:   st.gScore[nb],
			FCost:    st.fCost[nb],
			Inserted: !inOpen,
		})
	}
	return s.status
}

// Path returns the goal-to-start node sequence after StatusSuccess, nil
// otherwise. It only reads backpointers and can be called any number of times.
func (s *Stepper) Path() []Coord {
	if s.status != StatusSuccess {
		return nil
	}
	ids := internal.ReconstructPath(s.state.previous, s.grid.ID(s.grid.goal))
	path := make([]Coord, len(ids))
	for i, id := range ids {
		path[i] = s.grid.Coord(id)
	}
	return path
}

// PathCost returns the g score of the goal after StatusSuccess.
func (s *Stepper) PathCost() (int, bool) {
	if s.status != StatusSuccess {
		return 0, false
	}
	return s.state.gScore[s.grid.ID(s.grid.goal)], true
}

// Scores returns the g and f scores of c and whether c has been discovered.
func (s *Stepper) Scores(c Coord) (g, f int, ok bool) {
	if !s.grid.InBounds(c) {
		return 0, 0, false
	}
	id := s.grid.ID(c)
	if !s.state.isInOpen(id) && !s.state.isClosed(id) {
		return 0, 0, false
	}
	return s.state.gScore[id], s.state.fCost[id], true
}

// Previous returns the predecessor of c on its best known path.
func (s *Stepper) Previous(c Coord) (Coord, bool) {
	if !s.grid.InBounds(c) {
		return Coord{}, false
	}
	prev := s.state.previous[s.grid.ID(c)]
	if prev < 0 {
		return Coord{}, false
	}
	return s.grid.Coord(prev), true
}

// InOpen reports whether c is discovered but not yet expanded.
func (s *Stepper) InOpen(c Coord) bool {
	return s.grid.InBounds(c) && s.state.isInOpen(s.grid.ID(c))
}

// IsClosed reports whether c has been expanded.
func (s *Stepper) IsClosed(c Coord) bool {
	return s.grid.InBounds(c) && s.state.isClosed(s.grid.ID(c))
}

func (s *Stepper) OpenLen() int { return s.state.openSet.Len() }

func (s *Stepper) ClosedLen() int { return s.state.closed }

// OpenSet lists the open coordinates in queue order.
func (s *Stepper) OpenSet() []Coord { return s.state.openCoords() }

// ClosedSet lists the closed coordinates in id order.
func (s *Stepper) ClosedSet() []Coord { return s.state.closedCoords() }

// Snapshot copies the read views a renderer needs.
func (s *Stepper) Snapshot() StepSnapshot {
	snap := StepSnapshot{
		Open:      toSet(s.state.openCoords()),
		Closed:    toSet(s.state.closedCoords()),
		Path:      s.Path(),
		Status:    s.status,
		StepIndex: s.stepCount,
	}
	if s.current >= 0 {
		snap.Current = s.grid.Coord(s.current)
		snap.HasCurrent = true
	}
	if len(s.relaxed) > 0 {
		snap.Relaxed = append([]RelaxProposal(nil), s.relaxed...)
	}
	return snap
}

func toSet(coords []Coord) map[Coord]bool {
	m := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		m[c] = true
	}
	return m
}
