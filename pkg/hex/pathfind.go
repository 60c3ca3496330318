package hex

import (
	"container/heap"
	"slices"
)

// CostFunc returns the cost of entering a coordinate. ok == false marks the
// coordinate as impassable.
type CostFunc func(Hex) (cost int, ok bool)

type pathNode struct {
	at     Hex
	g, h   int
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }

func (ol openList) Less(i, j int) bool {
	fi, fj := ol[i].g+ol[i].h, ol[j].g+ol[j].h
	if fi == fj {
		return ol[i].h < ol[j].h
	}
	return fi < fj
}

func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}

func (ol *openList) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}

func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// AStar returns the cheapest path from start to goal, both included, or nil
// when goal cannot be reached. Entering a coordinate costs cost(h); the start
// coordinate is never charged. Costs below 1 are treated as 1 so the lattice
// distance stays an admissible heuristic.
func AStar(start, goal Hex, cost CostFunc) []Hex {
	if start == goal {
		return []Hex{start}
	}
	if _, ok := cost(goal); !ok {
		return nil
	}

	first := &pathNode{at: start, h: start.Distance(goal)}
	ol := &openList{first}
	heap.Init(ol)

	closed := make(map[Hex]bool)
	best := map[Hex]*pathNode{start: first}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.at == goal {
			return buildPath(cur)
		}
		if closed[cur.at] {
			continue
		}
		closed[cur.at] = true

		for _, next := range cur.at.Neighbors() {
			if closed[next] {
				continue
			}
			c, ok := cost(next)
			if !ok {
				continue
			}
			g := cur.g + max(c, 1)
			if prev, ok := best[next]; ok && g >= prev.g {
				continue
			}
			node := &pathNode{at: next, g: g, h: next.Distance(goal), parent: cur}
			best[next] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildPath(end *pathNode) []Hex {
	var path []Hex
	for n := end; n != nil; n = n.parent {
		path = append(path, n.at)
	}
	slices.Reverse(path)
	return path
}

// FieldOfMovement returns every coordinate reachable from center with a
// total cost of at most budget, mapped to the cheapest cost of reaching it.
// Center is always reachable at cost 0.
func FieldOfMovement(center Hex, budget int, cost CostFunc) map[Hex]int {
	reached := map[Hex]int{center: 0}
	if budget < 0 {
		return reached
	}
	ol := &openList{{at: center}}
	heap.Init(ol)
	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.g > reached[cur.at] {
			continue
		}
		for _, next := range cur.at.Neighbors() {
			c, ok := cost(next)
			if !ok {
				continue
			}
			g := cur.g + max(c, 0)
			if g > budget {
				continue
			}
			if prev, seen := reached[next]; seen && g >= prev {
				continue
			}
			reached[next] = g
			heap.Push(ol, &pathNode{at: next, g: g})
		}
	}
	return reached
}
