package bplus

func (t *BPlusTree) splitLeaf(leaf *Node) {
	mid := len(leaf.keys) / 2

	right := newNode(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)
	right.next = leaf.next // right inherits leaf's old next pointer
	right.parent = leaf.parent

	leaf.keys = leaf.keys[:mid:mid]
	leaf.values = leaf.values[:mid:mid]
	leaf.next = right

	sepKey := right.keys[0]
	if leaf == t.root {
		t.createNewRoot(leaf, sepKey, right)
		return
	}
	t.insertIntoParent(leaf.parent, leaf, sepKey, right)
}
