package tree

import "github.com/RoaringBitmap/roaring/v2"

// FindApproximateNeighbors returns up to k labels near label by tree topology.
// The search drains the subtree of the target's parent breadth-first, then
// widens to each further ancestor. A target stored in the root searches the
// root's own subtree. Results are in discovery order, not sorted by distance.
func (t *Tree) FindApproximateNeighbors(label string, k int) []string {
	if k <= 0 {
		return nil
	}
	target := t.FindNode(label)
	if target == NoNode {
		return nil
	}
	ring := t.nodes[target].parent
	if ring == NoNode {
		ring = target
	}

	var (
		neighbors []string
		queue     []NodeID
		visited   = roaring.New()
	)
	enqueueChildren := func(id NodeID) {
		for _, child := range t.nodes[id].children {
			if child != NoNode && visited.CheckedAdd(uint32(child)) {
				queue = append(queue, child)
			}
		}
	}
	for ring != NoNode && len(neighbors) < k {
		enqueueChildren(ring)
		for len(queue) > 0 && len(neighbors) < k {
			id := queue[0]
			queue = queue[1:]
			node := &t.nodes[id]
			if node.hasPoint && node.point.Label != label {
				neighbors = append(neighbors, node.point.Label)
			}
			enqueueChildren(id)
		}
		ring = t.nodes[ring].parent
	}
	return neighbors
}
