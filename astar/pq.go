package astar

// priorityQueueItem is the open-set entry of one node. HScore is static, FCost
// only ever decreases while the item is queued.
type priorityQueueItem struct {
	Node         int
	HScore       int
	FCost        int
	Seq          int
	IndexInQueue int
}

// priorityQueue orders by smaller h, then smaller f, then most recently
// inserted.
type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.HScore != b.HScore {
		return a.HScore < b.HScore
	}
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	return a.Seq > b.Seq
}
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*priorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
