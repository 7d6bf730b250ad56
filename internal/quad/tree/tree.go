package tree

import (
	"github.com/rs/zerolog"
)

// DefaultMaxDepth caps subdivision depth.
const DefaultMaxDepth = 256

// RootID is the arena handle of the root node.
const RootID NodeID = 0

// Tree is a point-splitting quadtree. It is built by a sequence of inserts
// and read by neighbour queries afterwards; it is not safe for concurrent
// mutation.
type Tree struct {
	nodes    []Node
	region   Region
	stored   int
	maxDepth int
	logger   zerolog.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithMaxDepth sets the subdivision depth cap. Values <= 0 keep the default.
func WithMaxDepth(depth int) Option {
	return func(t *Tree) {
		if depth > 0 {
			t.maxDepth = depth
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tree) { t.logger = logger }
}

// New constructs a tree whose root covers region.
func New(region Region, opts ...Option) (*Tree, error) {
	if _, err := NewRegion(region.XMin, region.XMax, region.YMin, region.YMax); err != nil {
		return nil, err
	}
	t := &Tree{
		region:   region,
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.nodes = append(t.nodes, NewNode(region, NoNode, 0))
	return t, nil
}

// Region returns the root coverage.
func (t *Tree) Region() Region { return t.region }

// Len returns the number of successfully inserted points.
func (t *Tree) Len() int { return t.stored }

// Size returns the number of nodes in the arena.
func (t *Tree) Size() int { return len(t.nodes) }

// Node returns the node for id; it panics for ids not issued by this tree.
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Insert stores a labelled point. It returns false when the point lies outside
// the root region, and a *DepthError when the depth cap stops subdivision.
func (t *Tree) Insert(label string, x, y float64) (bool, error) {
	current := RootID
	for {
		node := &t.nodes[current]
		if node.region.Contains(x, y) {
			if err := t.insertAt(current, Point{Label: label, X: x, Y: y}); err != nil {
				return false, err
			}
			t.stored++
			return true, nil
		}
		t.logger.Debug().
			Str("label", label).
			Float64("x", x).
			Float64("y", y).
			Stringer("region", node.region).
			Msg("point outside region")
		if node.parent == NoNode {
			return false, nil
		}
		current = node.parent
	}
}

func (t *Tree) insertAt(id NodeID, p Point) error {
	for {
		node := &t.nodes[id]
		if node.IsEmpty() {
			node.store(p)
			return nil
		}
		if node.IsLeaf() {
			if int(node.depth) >= t.maxDepth {
				return &DepthError{Label: p.Label, X: p.X, Y: p.Y, Depth: t.maxDepth, Occupant: node.point.Label}
			}
			t.subdivide(id)
			node = &t.nodes[id]
		}
		id = node.children[t.findQuadrant(node, p.X, p.Y)]
	}
}

// subdivide appends four empty children split at the region centre. The
// node keeps any point it already holds.
func (t *Tree) subdivide(id NodeID) {
	region := t.nodes[id].region
	depth := t.nodes[id].depth + 1
	for _, q := range Quadrants {
		child := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, NewNode(region.Quadrant(q), id, depth))
		t.nodes[id].children[q] = child
	}
}

func (t *Tree) findQuadrant(node *Node, x, y float64) Quadrant {
	right := x >= node.splitX
	above := y >= node.splitY
	switch {
	case right && above:
		return NE
	case right:
		return SE
	case above:
		return NW
	default:
		return SW
	}
}

// FindNode returns the first node in breadth-first order storing label.
func (t *Tree) FindNode(label string) NodeID {
	queue := []NodeID{RootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := &t.nodes[id]
		if node.hasPoint && node.point.Label == label {
			return id
		}
		for _, child := range node.children {
			if child != NoNode {
				queue = append(queue, child)
			}
		}
	}
	return NoNode
}

// Count returns the number of nodes holding a point in the subtree at id.
func (t *Tree) Count(id NodeID) int {
	if id == NoNode {
		return 0
	}
	count := 0
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if n.hasPoint {
			count++
		}
		for _, child := range n.children {
			if child != NoNode {
				stack = append(stack, child)
			}
		}
	}
	return count
}

// Walk visits every node breadth-first until fn returns false.
func (t *Tree) Walk(fn func(id NodeID, node *Node) bool) {
	queue := []NodeID{RootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := &t.nodes[id]
		if !fn(id, node) {
			return
		}
		for _, child := range node.children {
			if child != NoNode {
				queue = append(queue, child)
			}
		}
	}
}
