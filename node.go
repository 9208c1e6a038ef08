package phone_forward

import "container/list"

// nodeID addresses a trieNode inside the trie's arena.
type nodeID int32

const nilNode nodeID = -1

// trieNode represents a node in the forwarding trie.
type trieNode struct {
	children    [alphabetSize]nodeID
	numChildren uint8

	parent nodeID
	order  uint8 // slot in parent.children

	hasValue bool
	value    string

	// Keys whose value ends at this node
	keys *keyRegistry

	// Node of this node's value and this node's key inside its registry
	revNode  nodeID
	revEntry *list.Element

	root   bool
	pinned bool
	inUse  bool
}

func newNode(parent nodeID, order uint8) trieNode {
	node := trieNode{
		parent:  parent,
		order:   order,
		revNode: nilNode,
		inUse:   true,
	}

	for i := range node.children {
		node.children[i] = nilNode
	}

	return node
}

func rootNode() trieNode {
	node := newNode(nilNode, 0)
	node.root = true
	return node
}

func (node *trieNode) isRoot() bool {
	return nil != node && node.root
}

func (node *trieNode) isLeaf() bool {
	return nil != node && node.numChildren == 0
}

// isUseless reports whether the node can be dropped from the trie.
func (node *trieNode) isUseless() bool {
	return nil != node && !node.root && !node.pinned && node.isLeaf() &&
		!node.hasValue && node.keys.isEmpty()
}

func (node *trieNode) saveValue(value string, revNode nodeID, revEntry *list.Element) {
	node.value = value
	node.hasValue = true
	node.revNode = revNode
	node.revEntry = revEntry
}

func (node *trieNode) clearValue() {
	node.value = ""
	node.hasValue = false
	node.revNode = nilNode
	node.revEntry = nil
}

// nodeStack is a simple stack of node ids.
// Used to assist in trie traversals.
type nodeStack struct {
	nodes []nodeID
}

func newNodeStack() *nodeStack {
	return &nodeStack{
		nodes: make([]nodeID, 0),
	}
}

func (s *nodeStack) Push(id nodeID) {
	s.nodes = append(s.nodes, id)
}

func (s *nodeStack) Pop() nodeID {
	if len(s.nodes) == 0 {
		return nilNode
	}

	id := s.nodes[len(s.nodes)-1]
	s.nodes = s.nodes[:len(s.nodes)-1]
	return id
}

func (s *nodeStack) Peek() nodeID {
	if len(s.nodes) == 0 {
		return nilNode
	}

	return s.nodes[len(s.nodes)-1]
}

func (s *nodeStack) IsEmpty() bool {
	return len(s.nodes) == 0
}

func (s *nodeStack) Size() int {
	return len(s.nodes)
}
