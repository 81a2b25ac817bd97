package bplus

import "DukaDB/types"

// Delete removes key and all of its rows. Leaves are not merged when they
// shrink; separators in internal nodes stay valid upper bounds, and scans
// skip empty leaves.
func (t *BPlusTree) Delete(key types.Value) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf := t.findLeaf(key)
	if leaf == nil {
		return false
	}
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx == -1 {
		return false
	}

	t.rows -= len(leaf.values[idx])
	t.keys--
	leaf.keys = remove(leaf.keys, idx)
	leaf.values = remove(leaf.values, idx)

	if t.keys == 0 {
		t.root = nil
	}
	return true
}
