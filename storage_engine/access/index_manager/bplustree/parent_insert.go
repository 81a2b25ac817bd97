package bplus

import "DukaDB/types"

// insertIntoParent inserts sepKey and right into parent, just after left.
// If the parent overflows, it splits and propagates upward.
func (t *BPlusTree) insertIntoParent(parent, left *Node, sepKey types.Value, right *Node) {
	idx := 0
	for idx < len(parent.children) && parent.children[idx] != left {
		idx++
	}

	parent.keys = insert(parent.keys, idx, sepKey)
	parent.children = insert(parent.children, idx+1, right)
	right.parent = parent

	if len(parent.keys) > MaxKeys {
		t.splitInternal(parent)
	}
}
