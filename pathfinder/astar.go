package pathfinder

import (
	"container/heap"

	"github.com/arenabot/planner/arena"
)

// Search runs A* from start to goal over a's motion model. strict controls
// turn acceptance: true rejects turns whose intermediate cell fails
// clearance outright; false accepts them at TurnRelaxedPenalty's extra
// cost. It returns the pose sequence from start to goal inclusive and its
// total cost; found is false if the frontier was exhausted first.
func Search(a *arena.Arena, start, goal arena.Pose, strict bool) (path []arena.Pose, cost int, found bool) {
	startKey, goalKey := start.Key(), goal.Key()

	open := &poseHeap{}
	heap.Init(open)
	heap.Push(open, &heapItem{pose: start, g: 0, f: manhattan(start, goal)})

	gScore := map[arena.PoseKey]int{startKey: 0}
	parent := map[arena.PoseKey]arena.PoseKey{}
	poseOf := map[arena.PoseKey]arena.Pose{startKey: start}
	closed := map[arena.PoseKey]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*heapItem)
		curKey := cur.pose.Key()
		if closed[curKey] {
			continue
		}
		closed[curKey] = true

		if curKey == goalKey {
			return reconstruct(parent, poseOf, goalKey), gScore[goalKey], true
		}

		for _, nb := range neighbors(a, cur.pose, strict) {
			nbKey := nb.pose.Key()
			if closed[nbKey] {
				continue
			}
			tentativeG := gScore[curKey] + nb.cost
			if existing, ok := gScore[nbKey]; ok && existing <= tentativeG {
				continue
			}
			gScore[nbKey] = tentativeG
			parent[nbKey] = curKey
			poseOf[nbKey] = nb.pose
			heap.Push(open, &heapItem{pose: nb.pose, g: tentativeG, f: tentativeG + manhattan(nb.pose, goal)})
		}
	}

	return nil, UnreachableCost, false
}

func reconstruct(parent map[arena.PoseKey]arena.PoseKey, poseOf map[arena.PoseKey]arena.Pose, goal arena.PoseKey) []arena.Pose {
	var rev []arena.Pose
	for k := goal; ; {
		rev = append(rev, poseOf[k])
		prev, ok := parent[k]
		if !ok {
			break
		}
		k = prev
	}
	path := make([]arena.Pose, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}

func manhattan(a, b arena.Pose) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

type heapItem struct {
	pose arena.Pose
	g, f int
}

type poseHeap []*heapItem

func (h poseHeap) Len() int            { return len(h) }
func (h poseHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h poseHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *poseHeap) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }
func (h *poseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
