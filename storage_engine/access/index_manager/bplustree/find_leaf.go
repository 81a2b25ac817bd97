package bplus

import "DukaDB/types"

func (t *BPlusTree) findLeaf(key types.Value) *Node {
	node := t.root
	for node != nil && node.nodeType == NodeInternal {
		i := upperBound(node.keys, key, t.cmp)
		if i >= len(node.children) {
			i = len(node.children) - 1
		}
		node = node.children[i]
	}
	return node
}

func (t *BPlusTree) firstLeaf() *Node {
	node := t.root
	for node != nil && node.nodeType == NodeInternal {
		node = node.children[0]
	}
	return node
}
