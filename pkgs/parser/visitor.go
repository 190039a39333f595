package parser

// Visitor is called once per node during a tree walk. Returning false stops
// the walk from descending into that node's children (VisitPreOrder only;
// VisitPostOrder always visits every node since the decision to prune would
// come too late to matter).
type Visitor func(t *Tree) bool

// VisitPreOrder walks the tree depth-first, calling visit on a node before
// its children. If visit returns false the node's children are skipped.
func VisitPreOrder(t *Tree, visit Visitor) {
	if t == nil {
		return
	}
	if !visit(t) {
		return
	}
	for _, c := range t.children {
		VisitPreOrder(c, visit)
	}
}

// VisitPostOrder walks the tree depth-first, calling visit on a node after
// all of its children have been visited.
func VisitPostOrder(t *Tree, visit Visitor) {
	if t == nil {
		return
	}
	for _, c := range t.children {
		VisitPostOrder(c, visit)
	}
	visit(t)
}

// Find returns the first node in pre-order for which match returns true, or
// nil if none matches.
func Find(t *Tree, match func(*Tree) bool) *Tree {
	var found *Tree
	VisitPreOrder(t, func(n *Tree) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node in pre-order for which match returns true.
func FindAll(t *Tree, match func(*Tree) bool) []*Tree {
	var found []*Tree
	VisitPreOrder(t, func(n *Tree) bool {
		if match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}
