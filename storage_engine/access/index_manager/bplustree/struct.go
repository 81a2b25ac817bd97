// Structure of B+ Tree
/*
Tree
 ├── Internal Node (keys + child pointers)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + row lists + next pointer)


- keys: sorted ascending order, no duplicates
- internal nodes: children length == len(keys)+1
- internal key i is the smallest key reachable through children[i+1]
- leaf nodes: values length == len(keys); each value is every row with that key, in insertion order
- leaf nodes linked with `next` for range scans
- all leaf nodes at same depth

The tree lives in memory only.
*/
package bplus

import (
	"DukaDB/types"
	"sync"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

// MaxKeys is the fan-out; a node holding more keys is split.
const MaxKeys = 32

type Node struct {
	nodeType NodeType
	keys     []types.Value // keys in the node (sorted keys)
	children []*Node       // only for internal node
	values   [][]types.Row // leaf nodes
	next     *Node         // only for leaf node
	parent   *Node
}

type BPlusTree struct {
	root *Node
	cmp  func(a, b types.Value) int // key comparator
	keys int                        // distinct keys
	rows int                        // row references across all keys
	mu   sync.RWMutex
}
