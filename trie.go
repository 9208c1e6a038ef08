package phone_forward

// trie is the prefix tree behind PhoneForward. Nodes live in an arena and
// refer to each other by nodeID; freed slots are recycled.
//
// Every node other than the root is kept only while it has a child, a
// value or a non-empty registry. Every mutation prunes what it leaves
// useless.
type trie struct {
	nodes []trieNode
	free  []nodeID
	root  nodeID

	numNodes uint64
	maxNodes uint64
}

// Returns a trie made of the root only
// Arguments:
//
//	maxNodes - maximum number of non-root nodes, 0 for no limit
func newTrie(maxNodes uint64) *trie {
	t := &trie{maxNodes: maxNodes}
	t.nodes = append(t.nodes, rootNode())
	t.root = 0
	return t
}

func (t *trie) node(id nodeID) *trieNode {
	return &t.nodes[id]
}

// Allocates a child of parent in the given slot
// Returns:
//
//	nodeID - id of the new node
//	error  - ErrNodeLimitExceeded when the arena is full
func (t *trie) allocNode(parent nodeID, order uint8) (nodeID, error) {
	if t.maxNodes > 0 && t.numNodes >= t.maxNodes {
		return nilNode, ErrNodeLimitExceeded
	}

	var id nodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = newNode(parent, order)
	} else {
		id = nodeID(len(t.nodes))
		t.nodes = append(t.nodes, newNode(parent, order))
	}

	p := t.node(parent)
	p.children[order] = id
	p.numChildren++

	t.numNodes++
	return id, nil
}

// Detaches the node from its parent and returns its slot to the arena
func (t *trie) freeNode(id nodeID) {
	node := t.node(id)
	if node.parent != nilNode {
		p := t.node(node.parent)
		p.children[node.order] = nilNode
		p.numChildren--
	}

	t.nodes[id] = trieNode{parent: nilNode, revNode: nilNode}
	t.free = append(t.free, id)
	t.numNodes--
}

// Removes the node if it is useless and repeats on its parent
func (t *trie) prune(id nodeID) {
	for id != nilNode && t.node(id).inUse && t.node(id).isUseless() {
		parent := t.node(id).parent
		t.freeNode(id)
		id = parent
	}
}

// Returns the node for key or nilNode if the path does not exist
func (t *trie) find(key string) nodeID {
	id := t.root
	for i := 0; i < len(key) && id != nilNode; i++ {
		symbol := symbolOf(key[i])
		if symbol == invalidSymbol {
			return nilNode
		}

		id = t.node(id).children[symbol]
	}

	return id
}

// Returns the node for key, creating missing nodes on the way
// If a node cannot be created the nodes created so far are pruned.
// Arguments:
//
//	key - path of the node
//
// Returns:
//
//	nodeID - node for key
//	error  - ErrNodeLimitExceeded or ErrInvalidNumber
func (t *trie) getOrCreatePath(key string) (nodeID, error) {
	id := t.root
	for i := 0; i < len(key); i++ {
		symbol := symbolOf(key[i])
		if symbol == invalidSymbol {
			t.prune(id)
			return nilNode, ErrInvalidNumber
		}

		next := t.node(id).children[symbol]
		if next == nilNode {
			var err error
			if next, err = t.allocNode(id, symbol); err != nil {
				t.prune(id)
				return nilNode, err
			}
		}

		id = next
	}

	return id, nil
}

// Drops the value of the node and its entry in the registry of the value's node
// Returns:
//
//	nodeID - node that held the entry, nilNode if the node had no value
func (t *trie) unregister(id nodeID) nodeID {
	node := t.node(id)
	if !node.hasValue {
		return nilNode
	}

	rev := node.revNode
	revNode := t.node(rev)
	revNode.keys.remove(node.revEntry)
	if revNode.keys.isEmpty() {
		revNode.keys = nil
	}

	node.clearValue()
	return rev
}

// Forwards key to value, replacing the previous forwarding of key
// Nothing changes when an error is returned.
// Arguments:
//
//	key   - non-empty prefix being forwarded
//	value - non-empty replacement prefix
//
// Returns:
//
//	OpResult - Ok for a new forwarding, Replaced when one was overwritten
//	error    - error, if any
func (t *trie) insert(key, value string) (OpResult, error) {
	keyNode, err := t.getOrCreatePath(key)
	if err != nil {
		return Error, err
	}

	valueNode, err := t.getOrCreatePath(value)
	if err != nil {
		t.prune(keyNode)
		return Error, err
	}

	vn := t.node(valueNode)
	if vn.keys == nil {
		vn.keys = newKeyRegistry()
	}
	entry := vn.keys.addFront(key)

	result := Ok
	oldRev := nilNode
	if t.node(keyNode).hasValue {
		result = Replaced
		oldRev = t.unregister(keyNode)
	}

	t.node(keyNode).saveValue(value, valueNode, entry)
	t.prune(oldRev)

	return result, nil
}

// Finds the value of the longest non-empty prefix of number that has one
// Returns:
//
//	string - value of the prefix
//	int    - length of the prefix
//	bool   - false if no prefix of number is forwarded
func (t *trie) longestPrefix(number string) (string, int, bool) {
	var (
		value string
		depth int
		found bool
	)

	id := t.root
	for i := 0; i < len(number); i++ {
		symbol := symbolOf(number[i])
		if symbol == invalidSymbol {
			break
		}

		if id = t.node(id).children[symbol]; id == nilNode {
			break
		}

		if node := t.node(id); node.hasValue {
			value, depth, found = node.value, i+1, true
		}
	}

	return value, depth, found
}

// Applies the longest matching forwarding to number
func (t *trie) forward(number string) string {
	value, depth, ok := t.longestPrefix(number)
	if !ok {
		return number
	}

	return value + number[depth:]
}

// Appends every number that may forward to value
// Registries are collected at every depth of value's path since the
// forward lookup may resolve at any of them.
// Arguments:
//
//	value - forwarded number
//	out   - vector receiving the candidates
//
// Returns:
//
//	error - error from out, if any
func (t *trie) reverse(value string, out *Vector) error {
	id := t.root
	for i := 0; i < len(value); i++ {
		symbol := symbolOf(value[i])
		if symbol == invalidSymbol {
			break
		}

		if id = t.node(id).children[symbol]; id == nilNode {
			break
		}

		suffix := value[i+1:]
		err := t.node(id).keys.each(func(key string) error {
			return out.Append(key + suffix)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Removes the forwardings of key and of every number key is a prefix of
// Returns:
//
//	OpResult - NoMatch if no node exists for key, Ok otherwise
func (t *trie) removeSubtree(key string) OpResult {
	start := t.find(key)
	if start == nilNode {
		return NoMatch
	}

	// Pinned nodes survive pruning while their values are cleared
	var order []nodeID

	stack := newNodeStack()
	stack.Push(start)
	for !stack.IsEmpty() {
		id := stack.Pop()
		node := t.node(id)
		node.pinned = true
		order = append(order, id)

		for c := alphabetSize - 1; c >= 0; c-- {
			if child := node.children[c]; child != nilNode {
				stack.Push(child)
			}
		}
	}

	for _, id := range order {
		t.prune(t.unregister(id))
	}

	for _, id := range order {
		t.node(id).pinned = false
	}

	// Children come after their parent in order, so walk it backwards
	for i := len(order) - 1; i >= 0; i-- {
		if t.node(order[i]).inUse {
			t.prune(order[i])
		}
	}

	return Ok
}

// Returns the value registered exactly under key
func (t *trie) lookupExact(key string) (string, bool) {
	id := t.find(key)
	if id == nilNode || !t.node(id).hasValue {
		return "", false
	}

	return t.node(id).value, true
}

// Rebuilds the key of a node from its parent chain
func (t *trie) keyOf(id nodeID) string {
	var path []byte
	for ; id != nilNode && !t.node(id).isRoot(); id = t.node(id).parent {
		path = append(path, charOf(t.node(id).order))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return string(path)
}

// Calls fn for every forwarding in phone number order
func (t *trie) walk(fn func(from, to string) error) error {
	stack := newNodeStack()
	stack.Push(t.root)

	for !stack.IsEmpty() {
		id := stack.Pop()
		node := t.node(id)

		if node.hasValue {
			if err := fn(t.keyOf(id), node.value); err != nil {
				return err
			}
		}

		for c := alphabetSize - 1; c >= 0; c-- {
			if child := node.children[c]; child != nilNode {
				stack.Push(child)
			}
		}
	}

	return nil
}

// Drops every node except the root
func (t *trie) clear() {
	t.nodes = append(t.nodes[:0], rootNode())
	t.free = nil
	t.root = 0
	t.numNodes = 0
}
