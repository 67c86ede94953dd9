package uidump

// Rect is a rectangle in screen pixel coordinates.
// Values are carried verbatim from the dump: nothing enforces X1 <= X2 or
// Y1 <= Y2, and negative coordinates (off-screen elements) are preserved.
type Rect struct {
	X1 int // Left coordinate
	Y1 int // Top coordinate
	X2 int // Right coordinate
	Y2 int // Bottom coordinate
}

// Node is one element of the UI hierarchy.
type Node struct {
	Tag       string  // Element tag (commonly "node")
	Bounds    string  // Raw bounds attribute, e.g. "[0,96][224,320]"
	HasBounds bool    // Whether the bounds attribute was present
	Children  []*Node // Child elements in document order
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Hierarchy is a parsed UIAutomator screen dump.
type Hierarchy struct {
	Root *Node // The root element, always tagged "hierarchy"
}
