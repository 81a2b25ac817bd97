package bplus

import "DukaDB/types"

// NewBPlusTree returns an empty tree. A nil cmp orders keys with CompareKeys.
func NewBPlusTree(cmp func(a, b types.Value) int) *BPlusTree {
	if cmp == nil {
		cmp = CompareKeys
	}
	return &BPlusTree{cmp: cmp}
}

func newNode(nodeType NodeType) *Node {
	return &Node{nodeType: nodeType}
}

// CompareKeys is a total order over values. Values that Value.Compare
// cannot order (null, or different families) fall back to their kind.
func CompareKeys(a, b types.Value) int {
	if c, err := a.Compare(b); err == nil {
		return c
	}
	switch {
	case a.Kind() < b.Kind():
		return -1
	case a.Kind() > b.Kind():
		return 1
	}
	return 0
}

// Len is the number of distinct keys.
func (t *BPlusTree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keys
}

// Rows is the number of row references stored under all keys.
func (t *BPlusTree) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}
