package phone_forward

import "sort"

// Vector is a growable sequence of numbers used to collect query results.
// A vector created with a limit refuses to grow past it, standing in for
// an allocation failure: the failed Append leaves the vector unchanged.
type Vector struct {
	items []string
	limit int
}

// Returns a new empty vector without an element limit
func NewVector() *Vector {
	return &Vector{}
}

// Returns a new empty vector holding at most limit elements
// Arguments:
//
//	limit - maximum number of elements, 0 for no limit
//
// Returns:
//
//	*Vector - new vector
func NewVectorWithLimit(limit int) *Vector {
	if limit < 0 {
		limit = 0
	}

	return &Vector{limit: limit}
}

// Appends the number to the end of the vector
// Capacity doubles whenever the vector is full.
// Arguments:
//
//	s - number to be appended
//
// Returns:
//
//	error - ErrResultLimitExceeded if the vector is at its limit
func (v *Vector) Append(s string) error {
	if v.limit > 0 && len(v.items) >= v.limit {
		return ErrResultLimitExceeded
	}

	if len(v.items) == cap(v.items) {
		grown := make([]string, len(v.items), max(1, 2*cap(v.items)))
		copy(grown, v.items)
		v.items = grown
	}

	v.items = append(v.items, s)
	return nil
}

func (v *Vector) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(v.items) {
		return "", false
	}

	return v.items[idx], true
}

func (v *Vector) RemoveLast() {
	if len(v.items) == 0 {
		return
	}

	v.items[len(v.items)-1] = ""
	v.items = v.items[:len(v.items)-1]
}

func (v *Vector) Swap(i, j int) {
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

func (v *Vector) Len() int {
	return len(v.items)
}

func (v *Vector) Cap() int {
	return cap(v.items)
}

// Sorts the vector with the given comparator
// Arguments:
//
//	cmp - returns a negative number when a sorts before b
func (v *Vector) Sort(cmp func(a, b string) int) {
	sort.SliceStable(v.items, func(i, j int) bool {
		return cmp(v.items[i], v.items[j]) < 0
	})
}

// Reallocates the vector to exactly its length, keeping a capacity of at least 1
func (v *Vector) Shrink() {
	if cap(v.items) == max(1, len(v.items)) {
		return
	}

	shrunk := make([]string, len(v.items), max(1, len(v.items)))
	copy(shrunk, v.items)
	v.items = shrunk
}

// Truncate drops every element from position n on.
func (v *Vector) Truncate(n int) {
	for len(v.items) > n {
		v.RemoveLast()
	}
}
