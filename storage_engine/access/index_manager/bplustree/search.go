package bplus

import "DukaDB/types"

// Search returns the rows stored under key, nil if the key is absent.
func (t *BPlusTree) Search(key types.Value) []types.Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf := t.findLeaf(key)
	if leaf == nil {
		return nil
	}
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx == -1 {
		return nil
	}
	return append([]types.Row(nil), leaf.values[idx]...)
}

// Contains reports whether key has at least one row.
func (t *BPlusTree) Contains(key types.Value) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf := t.findLeaf(key)
	return leaf != nil && binarySearch(leaf.keys, key, t.cmp) != -1
}

// Range returns the rows of every key in [lo, hi], in key order.
// A null bound leaves that side open.
func (t *BPlusTree) Range(lo, hi types.Value) []types.Row {
	var out []types.Row
	var it *Iterator
	if lo.IsNull() {
		it = t.First()
	} else {
		it = t.SeekGE(lo)
	}
	defer it.Close()

	for ok := it.Valid(); ok; ok = it.Next() {
		if !hi.IsNull() && t.cmp(it.Key(), hi) > 0 {
			break
		}
		out = append(out, it.Value()...)
	}
	return out
}
