package bst

var _ SearchTree = (*Tree)(nil)

// node holds one stored value. left holds values strictly less than value,
// right holds values greater than or equal to it.
type node struct {
	value float64
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree of float64 values.
// Its shape depends only on insertion order; nothing ever rebalances it.
//
// A Tree is not safe for concurrent use. Wrap it with NewSyncTree when
// more than one goroutine needs access.
type Tree struct {
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty reports whether nothing has been inserted yet.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Insert adds value as a new leaf. Duplicates are accepted and routed to the
// right subtree, so every call adds exactly one node.
//
// Values must be totally ordered. NaN is accepted but, since it compares
// false against everything, it always routes right and can never be found.
func (t *Tree) Insert(value float64) {
	n := &node{value: value}
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if value < cur.value {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
			continue
		}

		if cur.right == nil {
			cur.right = n
			return
		}
		cur = cur.right
	}
}

// Search reports whether a node equal to value exists.
func (t *Tree) Search(value float64) bool {
	cur := t.root
	for cur != nil {
		switch {
		case value == cur.value:
			return true
		case value < cur.value:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return false
}

// Size returns the number of nodes, duplicates included.
func (t *Tree) Size() int {
	if t.root == nil {
		return 0
	}

	count := 0
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}

	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0 and a single node has depth 1.
func (t *Tree) Depth() int {
	if t.root == nil {
		return 0
	}

	// Each frame carries the level of its node; the deepest level seen
	// is the height. This is the iterative form of
	// 1 + max(depth(left), depth(right)).
	type frame struct {
		n     *node
		level int
	}

	deepest := 0
	stack := []frame{{n: t.root, level: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.level > deepest {
			deepest = f.level
		}

		if f.n.left != nil {
			stack = append(stack, frame{n: f.n.left, level: f.level + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{n: f.n.right, level: f.level + 1})
		}
	}

	return deepest
}
