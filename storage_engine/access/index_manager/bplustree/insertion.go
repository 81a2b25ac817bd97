package bplus

import "DukaDB/types"

// Insert adds row under key. Rows sharing a key keep their insertion order.
func (t *BPlusTree) Insert(key types.Value, row types.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows++

	// If tree is empty
	if t.root == nil {
		root := newNode(NodeLeaf)
		root.keys = append(root.keys, key)
		root.values = append(root.values, []types.Row{row})
		t.root = root
		t.keys++
		return
	}

	leaf := t.findLeaf(key)
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx != -1 {
		leaf.values[idx] = append(leaf.values[idx], row)
		return
	}

	// Insert key/value in sorted position.
	insertPos := lowerBound(leaf.keys, key, t.cmp)
	leaf.keys = insert(leaf.keys, insertPos, key)
	leaf.values = insert(leaf.values, insertPos, []types.Row{row})
	t.keys++

	// Split if overflow.
	if len(leaf.keys) > MaxKeys {
		t.splitLeaf(leaf)
	}
}
