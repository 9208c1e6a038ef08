package phone_forward

// PhoneNumbers is the read-only result of a query.
type PhoneNumbers struct {
	numbers *Vector
}

func newPhoneNumbers(v *Vector) *PhoneNumbers {
	if nil == v {
		v = NewVector()
	}

	return &PhoneNumbers{numbers: v}
}

// Returns the number at position idx
// Arguments:
//
//	idx - position of the number
//
// Returns:
//
//	string - the number
//	bool   - false if idx is out of range
func (pn *PhoneNumbers) Get(idx int) (string, bool) {
	if nil == pn {
		return "", false
	}

	return pn.numbers.Get(idx)
}

func (pn *PhoneNumbers) Len() int {
	if nil == pn {
		return 0
	}

	return pn.numbers.Len()
}

func (pn *PhoneNumbers) IsEmpty() bool {
	return pn.Len() == 0
}

// All returns a copy of the numbers.
func (pn *PhoneNumbers) All() []string {
	if nil == pn {
		return nil
	}

	all := make([]string, pn.numbers.Len())
	copy(all, pn.numbers.items)
	return all
}
