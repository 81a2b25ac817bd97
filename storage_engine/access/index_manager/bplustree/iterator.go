package bplus

import "DukaDB/types"

// Iterator provides a forward-only scan over the leaves. It holds the
// tree's read lock until Close is called.
type Iterator struct {
	tree  *BPlusTree
	leaf  *Node
	index int
	valid bool
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree) SeekGE(target types.Value) *Iterator {
	t.mu.RLock()
	it := &Iterator{tree: t}

	leaf := t.findLeaf(target)
	if leaf == nil {
		return it
	}
	it.leaf = leaf
	it.index = lowerBound(leaf.keys, target, t.cmp)
	it.settle()
	return it
}

// First positions the iterator at the smallest key.
func (t *BPlusTree) First() *Iterator {
	t.mu.RLock()
	it := &Iterator{tree: t, leaf: t.firstLeaf()}
	it.settle()
	return it
}

// settle moves past exhausted or emptied leaves.
func (it *Iterator) settle() {
	for it.leaf != nil && it.index >= len(it.leaf.keys) {
		it.leaf = it.leaf.next
		it.index = 0
	}
	it.valid = it.leaf != nil
}

func (it *Iterator) Valid() bool {
	return it.valid
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	it.settle()
	return it.valid
}

// Close releases the read lock. Call when done with the iterator.
func (it *Iterator) Close() {
	if it.tree != nil {
		it.tree.mu.RUnlock()
		it.tree = nil
	}
	it.leaf = nil
	it.valid = false
}

// Key returns the current key.
func (it *Iterator) Key() types.Value {
	if !it.valid {
		return types.NullValue()
	}
	return it.leaf.keys[it.index]
}

// Value returns the rows under the current key.
func (it *Iterator) Value() []types.Row {
	if !it.valid {
		return nil
	}
	return it.leaf.values[it.index]
}
