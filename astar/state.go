package astar

import "container/heap"

// searchState is the mutable bookkeeping of one search. It refers to grid
// nodes by id only; the grid itself is never modified.
type searchState struct {
	grid *Grid

	gScore   []int
	fCost    []int
	previous []int

	openSet   priorityQueue
	openItems []*priorityQueueItem
	closedSet []bool
	closed    int
	seq       int
}

func newSearchState(grid *Grid) *searchState {
	n := grid.Len()
	s := &searchState{
		grid:      grid,
		gScore:    make([]int, n),
		fCost:     make([]int, n),
		previous:  make([]int, n),
		openSet:   make(priorityQueue, 0),
		openItems: make([]*priorityQueueItem, n),
		closedSet: make([]bool, n),
	}
	for i := range s.previous {
		s.previous[i] = -1
	}
	heap.Init(&s.openSet)

	start := grid.ID(grid.start)
	s.gScore[start] = 0
	s.fCost[start] = grid.h[start]
	s.insertOpen(start)
	return s
}

func (s *searchState) isEmpty() bool { return s.openSet.Len() == 0 }

func (s *searchState) isInOpen(id int) bool { return s.openItems[id] != nil }

func (s *searchState) isClosed(id int) bool { return s.closedSet[id] }

// insertOpen queues id using its current f score.
func (s *searchState) insertOpen(id int) {
	s.seq++
	item := &priorityQueueItem{
		Node:   id,
		HScore: s.grid.h[id],
		FCost:  s.fCost[id],
		Seq:    s.seq,
	}
	heap.Push(&s.openSet, item)
	s.openItems[id] = item
}

// decreaseKey re-sorts an already queued id after its f score dropped.
func (s *searchState) decreaseKey(id int) {
	item := s.openItems[id]
	item.FCost = s.fCost[id]
	heap.Fix(&s.openSet, item.IndexInQueue)
}

// removeBest pops the best open node. The open set must not be empty.
func (s *searchState) removeBest() int {
	item := heap.Pop(&s.openSet).(*priorityQueueItem)
	s.openItems[item.Node] = nil
	return item.Node
}

func (s *searchState) markClosed(id int) {
	if !s.closedSet[id] {
		s.closedSet[id] = true
		s.closed++
	}
}

func (s *searchState) openCoords() []Coord {
	out := make([]Coord, 0, s.openSet.Len())
	for _, item := range s.openSet {
		out = append(out, s.grid.Coord(item.Node))
	}
	return out
}

func (s *searchState) closedCoords() []Coord {
	out := make([]Coord, 0, s.closed)
	for id, closed := range s.closedSet {
		if closed {
			out = append(out, s.grid.Coord(id))
		}
	}
	return out
}
