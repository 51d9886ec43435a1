package bst

import "sync"

var _ SearchTree = (*SyncTree)(nil)

// SyncTree guards a Tree with a single lock.
type SyncTree struct {
	// Insert takes the write lock.
	// Search, Size and Depth can run concurrently under the read lock.
	mu   sync.RWMutex
	tree *Tree
}

// NewSyncTree creates a new, empty lock-guarded tree.
func NewSyncTree() *SyncTree {
	return &SyncTree{tree: New()}
}

// Insert adds value to the tree.
// This method is thread-safe using a Write Lock.
func (t *SyncTree) Insert(value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tree.Insert(value)
}

// Search reports whether value is in the tree.
// This method is concurrently safe using a Read Lock.
func (t *SyncTree) Search(value float64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.tree.Search(value)
}

func (t *SyncTree) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.tree.Size()
}

func (t *SyncTree) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.tree.Depth()
}
