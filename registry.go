package phone_forward

import "container/list"

// keyRegistry holds the keys whose forwarding points at a trie node.
// Keys are kept in front-insertion order. Each key is removed through the
// handle returned when it was added.
type keyRegistry struct {
	keys *list.List
}

func newKeyRegistry() *keyRegistry {
	return &keyRegistry{keys: list.New()}
}

func (r *keyRegistry) addFront(key string) *list.Element {
	return r.keys.PushFront(key)
}

func (r *keyRegistry) remove(handle *list.Element) {
	if nil == r || nil == handle {
		return
	}

	r.keys.Remove(handle)
}

func (r *keyRegistry) isEmpty() bool {
	return nil == r || r.keys.Len() == 0
}

func (r *keyRegistry) len() int {
	if nil == r {
		return 0
	}

	return r.keys.Len()
}

// each calls fn for every key, front to back, and stops at the first error.
func (r *keyRegistry) each(fn func(key string) error) error {
	if nil == r {
		return nil
	}

	for e := r.keys.Front(); e != nil; e = e.Next() {
		if err := fn(e.Value.(string)); err != nil {
			return err
		}
	}

	return nil
}
