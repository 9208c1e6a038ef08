package phone_forward

// Reverse queries. A number X is a reverse of num when replacing some
// forwarded prefix of X by its replacement gives num. Results are sorted
// with CompareNumbers() and free of duplicates.

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Returns every number that may be forwarded to num, num included
// The result is not checked against the longest prefix rule.
// For that, use GetReverse().
// Arguments:
//
//	ctx - context for the operation
//	num - forwarded number
//
// Returns:
//
//	*PhoneNumbers - sorted numbers, empty for an invalid num
//	error         - error, if any. No result is returned on error.
func (pf *PhoneForward) Reverse(ctx context.Context, num string) (pn *PhoneNumbers, err error) {
	ctx, span := startSpan(ctx, opReverse, num)
	defer func() { finishQuery(span, opReverse, pn, err) }()

	if nil == pf {
		return nil, ErrInvalidPhoneForward
	}

	if !IsValidNumber(num) {
		return newPhoneNumbers(nil), nil
	}

	pf.rlock(ctx)
	defer pf.runlock(ctx)

	v, err := pf.reverse(num)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("number", num).Msg("reverse failed")
		return nil, fmt.Errorf("reverse %q: %w", num, err)
	}

	return newPhoneNumbers(v), nil
}

// Similar to Reverse(), but keeps only the numbers X for which Get(X)
// returns num. The order of Reverse() is preserved.
// Arguments:
//
//	ctx - context for the operation
//	num - forwarded number
//
// Returns:
//
//	*PhoneNumbers - sorted numbers, empty for an invalid num
//	error         - error, if any. No result is returned on error.
func (pf *PhoneForward) GetReverse(ctx context.Context, num string) (pn *PhoneNumbers, err error) {
	ctx, span := startSpan(ctx, opGetReverse, num)
	defer func() { finishQuery(span, opGetReverse, pn, err) }()

	if nil == pf {
		return nil, ErrInvalidPhoneForward
	}

	if !IsValidNumber(num) {
		return newPhoneNumbers(nil), nil
	}

	pf.rlock(ctx)
	defer pf.runlock(ctx)

	v, err := pf.reverse(num)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("number", num).Msg("reverse failed")
		return nil, fmt.Errorf("get reverse %q: %w", num, err)
	}

	// kept - numbers before i that forward to num; they are moved to the front
	kept := 0
	for i := 0; i < v.Len(); i++ {
		candidate, _ := v.Get(i)
		if pf.trie.forward(candidate) == num {
			v.Swap(i, kept)
			kept++
		}
	}

	v.Truncate(kept)
	v.Shrink()

	return newPhoneNumbers(v), nil
}

// Collects, sorts and deduplicates the reverse candidates of num
// Caller must lock
func (pf *PhoneForward) reverse(num string) (*Vector, error) {
	v := pf.newVector()
	if err := pf.trie.reverse(num, v); err != nil {
		return nil, err
	}

	// Every number forwards to itself unless a prefix of it is forwarded
	if err := v.Append(num); err != nil {
		return nil, err
	}

	v.Sort(CompareNumbers)
	dedupSorted(v)
	v.Shrink()

	return v, nil
}

// Removes duplicates from a sorted vector, keeping the order
func dedupSorted(v *Vector) {
	if v.Len() < 2 {
		return
	}

	// unique - number of distinct numbers moved to the front so far
	unique := 1
	for i := 1; i < v.Len(); i++ {
		last, _ := v.Get(unique - 1)
		current, _ := v.Get(i)
		if current != last {
			v.Swap(i, unique)
			unique++
		}
	}

	v.Truncate(unique)
}
