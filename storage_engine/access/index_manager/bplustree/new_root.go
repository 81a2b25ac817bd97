package bplus

import "DukaDB/types"

// createNewRoot creates a new root internal node with left and right
// as its two children, separated by promoteKey.
func (t *BPlusTree) createNewRoot(left *Node, promoteKey types.Value, right *Node) {
	root := newNode(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, left, right)

	left.parent = root
	right.parent = root
	t.root = root
}
