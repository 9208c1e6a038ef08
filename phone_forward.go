package phone_forward

// PhoneForward stores forwardings of phone number prefixes.
// A forwarding from A to B rewrites every number starting with A by
// replacing A with B. A number is rewritten by the longest forwarded
// prefix it has. Reverse queries answer which numbers are rewritten into
// a given one.
//
// PhoneForward does no locking of its own. Callers sharing it between
// goroutines plug their lock in with NewWithLockHandlers().

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type PhoneForward struct {
	trie       *trie
	maxResults int

	rlockFn   ReadLockFn
	runlockFn ReadUnlockFn
	wlockFn   WriteLockFn
	unlockFn  UnlockFn
}

var _ Forwarder = (*PhoneForward)(nil)

type Option func(*PhoneForward)

// Limits the number of trie nodes. Add() fails with ErrNodeLimitExceeded
// instead of growing the trie past it.
func WithMaxNodes(maxNodes uint64) Option {
	return func(pf *PhoneForward) {
		pf.trie.maxNodes = maxNodes
	}
}

// Limits the number of results of a single query. Queries that would
// return more fail with ErrResultLimitExceeded.
func WithMaxResults(maxResults int) Option {
	return func(pf *PhoneForward) {
		pf.maxResults = maxResults
	}
}

func WithLockHandlers(rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn) Option {
	return func(pf *PhoneForward) {
		pf.rlockFn = rlockFn
		pf.runlockFn = runlockFn
		pf.wlockFn = wlockFn
		pf.unlockFn = unlockFn
	}
}

// Returns a new, empty phone forward
// Arguments:
//
//	opts - options
//
// Returns:
//
//	*PhoneForward - phone forward without any forwardings
func New(opts ...Option) *PhoneForward {
	pf := &PhoneForward{
		trie: newTrie(0),
	}

	for _, opt := range opts {
		opt(pf)
	}

	return pf
}

// Returns a new phone forward with custom lock handlers
// Arguments:
//
//	rlockFn   - read lock function
//	runlockFn - read unlock function
//	wlockFn   - write lock function
//	unlockFn  - unlock function
//	opts      - further options
//
// Returns:
//
//	*PhoneForward - phone forward without any forwardings
func NewWithLockHandlers(rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn, opts ...Option) *PhoneForward {
	return New(append([]Option{WithLockHandlers(rlockFn, runlockFn, wlockFn, unlockFn)}, opts...)...)
}

func (pf *PhoneForward) rlock(ctx context.Context) {
	if nil != pf.rlockFn {
		pf.rlockFn(ctx)
	}
}

func (pf *PhoneForward) runlock(ctx context.Context) {
	if nil != pf.runlockFn {
		pf.runlockFn(ctx)
	}
}

func (pf *PhoneForward) wlock(ctx context.Context) {
	if nil != pf.wlockFn {
		pf.wlockFn(ctx)
	}
}

func (pf *PhoneForward) unlock(ctx context.Context) {
	if nil != pf.unlockFn {
		pf.unlockFn(ctx)
	}
}

func (pf *PhoneForward) newVector() *Vector {
	return NewVectorWithLimit(pf.maxResults)
}

// Adds a forwarding from num1 to num2
// A previous forwarding of num1 is replaced.
// Arguments:
//
//	ctx  - context for the operation
//	num1 - forwarded prefix
//	num2 - replacement prefix
//
// Returns:
//
//	OpResult - Ok, Replaced or Error
//	error    - ErrInvalidNumber, ErrSameNumber or ErrNodeLimitExceeded.
//	           The forwardings are unchanged on error.
func (pf *PhoneForward) Add(ctx context.Context, num1, num2 string) (res OpResult, err error) {
	ctx, span := startSpan(ctx, opAdd, num1)
	defer func() { finishOp(span, opAdd, res, err) }()

	if nil == pf {
		return Error, ErrInvalidPhoneForward
	}

	if !IsValidNumber(num1) || !IsValidNumber(num2) {
		return Error, fmt.Errorf("add %q -> %q: %w", num1, num2, ErrInvalidNumber)
	}

	if num1 == num2 {
		return Error, fmt.Errorf("add %q: %w", num1, ErrSameNumber)
	}

	pf.wlock(ctx)
	defer pf.unlock(ctx)

	// The trie keeps its own copies
	res, err = pf.trie.insert(strings.Clone(num1), strings.Clone(num2))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("from", num1).
			Str("to", num2).
			Uint64("nodes", pf.trie.numNodes).
			Msg("forwarding not added")
		return Error, fmt.Errorf("add %q -> %q: %w", num1, num2, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", num1).
		Str("to", num2).
		Stringer("result", res).
		Msg("forwarding added")

	return res, nil
}

// Removes the forwardings of every number starting with num
// Arguments:
//
//	ctx - context for the operation
//	num - prefix to be removed
//
// Returns:
//
//	OpResult - Ok, NoMatch if nothing starts with num, Error for an invalid num
//	error    - ErrInvalidNumber for an invalid num
func (pf *PhoneForward) Remove(ctx context.Context, num string) (res OpResult, err error) {
	ctx, span := startSpan(ctx, opRemove, num)
	defer func() { finishOp(span, opRemove, res, err) }()

	if nil == pf {
		return Error, ErrInvalidPhoneForward
	}

	if !IsValidNumber(num) {
		return Error, fmt.Errorf("remove %q: %w", num, ErrInvalidNumber)
	}

	pf.wlock(ctx)
	defer pf.unlock(ctx)

	res = pf.trie.removeSubtree(num)

	zerolog.Ctx(ctx).Debug().
		Str("prefix", num).
		Stringer("result", res).
		Uint64("nodes", pf.trie.numNodes).
		Msg("forwardings removed")

	return res, nil
}

// Returns num rewritten by its longest forwarded prefix
// Arguments:
//
//	ctx - context for the operation
//	num - number to be forwarded
//
// Returns:
//
//	*PhoneNumbers - the forwarded number, num itself if no prefix is
//	                forwarded, empty for an invalid num
//	error         - error, if any. No result is returned on error.
func (pf *PhoneForward) Get(ctx context.Context, num string) (pn *PhoneNumbers, err error) {
	ctx, span := startSpan(ctx, opGet, num)
	defer func() { finishQuery(span, opGet, pn, err) }()

	if nil == pf {
		return nil, ErrInvalidPhoneForward
	}

	v := pf.newVector()
	if !IsValidNumber(num) {
		return newPhoneNumbers(v), nil
	}

	pf.rlock(ctx)
	defer pf.runlock(ctx)

	if err := v.Append(pf.trie.forward(num)); err != nil {
		return nil, fmt.Errorf("get %q: %w", num, err)
	}

	return newPhoneNumbers(v), nil
}

// Returns the forwarding registered exactly under num
// Arguments:
//
//	ctx - context for the operation
//	num - forwarded prefix
//
// Returns:
//
//	OpResult - Match, NoMatch or Error
//	string   - replacement prefix, if any
//	error    - ErrInvalidNumber for an invalid num
func (pf *PhoneForward) Lookup(ctx context.Context, num string) (res OpResult, value string, err error) {
	ctx, span := startSpan(ctx, opLookup, num)
	defer func() { finishOp(span, opLookup, res, err) }()

	if nil == pf {
		return Error, "", ErrInvalidPhoneForward
	}

	if !IsValidNumber(num) {
		return Error, "", fmt.Errorf("lookup %q: %w", num, ErrInvalidNumber)
	}

	pf.rlock(ctx)
	defer pf.runlock(ctx)

	value, ok := pf.trie.lookupExact(num)
	if !ok {
		return NoMatch, "", nil
	}

	return Match, value, nil
}

// Walk the forwardings and call passed function for each of them
// Forwardings are visited in phone number order of their prefixes.
// The callback must not modify the phone forward.
// Arguments:
//
//	ctx      - context for the operation
//	callback - function to be called for every forwarding
//
// Returns:
//
//	error - nil if successful, else the first error returned by callback
func (pf *PhoneForward) Walk(ctx context.Context, callback WalkerFn) (err error) {
	ctx, span := startSpan(ctx, opWalk, "")
	defer func() {
		res := Ok
		if err != nil {
			res = Error
		}
		finishOp(span, opWalk, res, err)
	}()

	if nil == pf {
		return ErrInvalidPhoneForward
	}

	if nil == callback {
		return ErrNoWalkerFunction
	}

	pf.rlock(ctx)
	defer pf.runlock(ctx)

	return pf.trie.walk(func(from, to string) error {
		return callback(ctx, from, to)
	})
}

// Removes every forwarding
func (pf *PhoneForward) Clear(ctx context.Context) {
	ctx, span := startSpan(ctx, opClear, "")
	defer finishOp(span, opClear, Ok, nil)

	if nil == pf {
		return
	}

	pf.wlock(ctx)
	defer pf.unlock(ctx)

	pf.trie.clear()
	zerolog.Ctx(ctx).Debug().Msg("forwardings cleared")
}

// Returns the number of trie nodes, the root excluded
// Returns:
//
//	uint64 - number of nodes in the trie
func (pf *PhoneForward) GetNodesCount() uint64 {
	if nil == pf {
		return 0
	}

	return pf.trie.numNodes
}
