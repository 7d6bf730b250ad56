package tree

// NodeID addresses a node in the tree arena.
type NodeID int32

// NoNode marks an absent child or the root's parent.
const NoNode NodeID = -1

// Quadrant indexes a child slot.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// Quadrants lists the child slots in storage order.
var Quadrants = [4]Quadrant{NE, NW, SW, SE}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "?"
}

// Point is a labelled coordinate.
type Point struct {
	Label string
	X, Y  float64
}

// Node represents a quadtree node.
type Node struct {
	region   Region
	point    Point
	hasPoint bool
	splitX   float64
	splitY   float64
	children [4]NodeID
	parent   NodeID
	depth    int32
}

// NewNode constructs an empty node covering region.
func NewNode(region Region, parent NodeID, depth int32) Node {
	x, y := region.Center()
	return Node{
		region:   region,
		splitX:   x,
		splitY:   y,
		children: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
		parent:   parent,
		depth:    depth,
	}
}

// Region returns the node coverage.
func (n *Node) Region() Region { return n.region }

// Point returns the stored point, if any.
func (n *Node) Point() (Point, bool) { return n.point, n.hasPoint }

// HasPoint reports whether the node stores a point.
func (n *Node) HasPoint() bool { return n.hasPoint }

// Split returns the splitting point used to route new points.
func (n *Node) Split() (float64, float64) { return n.splitX, n.splitY }

// Child returns the child in slot q or NoNode.
func (n *Node) Child(q Quadrant) NodeID { return n.children[q] }

// Parent returns the parent handle, NoNode for the root.
func (n *Node) Parent() NodeID { return n.parent }

// Depth returns the distance from the root.
func (n *Node) Depth() int { return int(n.depth) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.children[NE] == NoNode }

// IsEmpty reports a leaf without a point.
func (n *Node) IsEmpty() bool { return n.IsLeaf() && !n.hasPoint }

// IsOccupied reports a leaf holding a point.
func (n *Node) IsOccupied() bool { return n.IsLeaf() && n.hasPoint }

// IsInternal reports whether children exist.
func (n *Node) IsInternal() bool { return !n.IsLeaf() }

func (n *Node) store(p Point) {
	n.point = p
	n.hasPoint = true
	n.splitX, n.splitY = p.X, p.Y
}
