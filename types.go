package phone_forward

import (
	"context"
	"errors"
)

type OpResult int

const (
	Error OpResult = iota
	Ok
	Replaced
	Match
	NoMatch
)

func (r OpResult) String() string {
	switch r {
	case Ok:
		return "ok"
	case Replaced:
		return "replaced"
	case Match:
		return "match"
	case NoMatch:
		return "no_match"
	default:
		return "error"
	}
}

type ReadLockFn func(context.Context)
type ReadUnlockFn func(context.Context)
type WriteLockFn func(context.Context)
type UnlockFn func(context.Context)

// WalkerFn is called once per registered forwarding.
type WalkerFn func(ctx context.Context, from string, to string) error

type Forwarder interface {
	Add(context.Context, string, string) (OpResult, error)
	Remove(context.Context, string) (OpResult, error)
	Get(context.Context, string) (*PhoneNumbers, error)
	Reverse(context.Context, string) (*PhoneNumbers, error)
	GetReverse(context.Context, string) (*PhoneNumbers, error)
	Lookup(context.Context, string) (OpResult, string, error)
	Walk(context.Context, WalkerFn) error
	Clear(context.Context)
	GetNodesCount() uint64
}

var (
	ErrInvalidPhoneForward = errors.New("invalid phone forward")
	ErrInvalidNumber       = errors.New("invalid phone number")
	ErrSameNumber          = errors.New("number cannot forward to itself")
	ErrNodeLimitExceeded   = errors.New("trie node limit exceeded")
	ErrResultLimitExceeded = errors.New("result limit exceeded")
	ErrNoWalkerFunction    = errors.New("no walker function provided")
)
