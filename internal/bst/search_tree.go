package bst

// SearchTree is the set of operations the benchmark harness relies on.
type SearchTree interface {
	Insert(value float64)
	Search(value float64) bool
	Size() int
	Depth() int
}
