package bplus

// splitInternal splits a full internal node and promotes the middle key.
func (t *BPlusTree) splitInternal(node *Node) {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promoteKey := node.keys[mid]

	right := newNode(NodeInternal)
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)
	right.parent = node.parent

	// Update parent pointers of moved children.
	for _, child := range right.children {
		child.parent = right
	}

	// Shrink left.
	node.keys = node.keys[:mid:mid]
	node.children = node.children[: mid+1 : mid+1]

	// Root split?
	if node == t.root {
		t.createNewRoot(node, promoteKey, right)
		return
	}
	t.insertIntoParent(node.parent, node, promoteKey, right)
}
