package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	phfwd "github.com/camelinx/phone_forward"
)

var errSyntax = errors.New("syntax error")

// runner executes operation scripts against one phone forward.
// A script has one operation per line:
//
//	add <from> <to>   add a forwarding
//	del <prefix>      remove forwardings starting with prefix
//	get <num>         print the forwarded number
//	rev <num>         print the reverse of num
//	getrev <num>      print the numbers forwarded exactly to num
//	lookup <prefix>   print the forwarding of prefix
//	list              print every forwarding
//	nodes             print the number of trie nodes
//
// Blank lines and lines starting with '#' are skipped. Since '#' is also a
// phone symbol, comments must start the line.
type runner struct {
	pf  *phfwd.PhoneForward
	out io.Writer
}

func newRunner(pf *phfwd.PhoneForward, out io.Writer) *runner {
	return &runner{pf: pf, out: out}
}

// run executes every line of in and stops at the first failing one.
func (r *runner) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := r.exec(ctx, strings.Fields(line)); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int("line", lineNo).Msg("operation failed")
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return scanner.Err()
}

func (r *runner) exec(ctx context.Context, fields []string) error {
	op, args := fields[0], fields[1:]

	want := map[string]int{
		"add": 2, "del": 1, "get": 1, "rev": 1, "getrev": 1,
		"lookup": 1, "list": 0, "nodes": 0,
	}

	n, ok := want[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", errSyntax, op)
	}

	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", errSyntax, op, n, len(args))
	}

	switch op {
	case "add":
		res, err := r.pf.Add(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return r.println(res)

	case "del":
		res, err := r.pf.Remove(ctx, args[0])
		if err != nil {
			return err
		}
		return r.println(res)

	case "get":
		return r.printNumbers(r.pf.Get(ctx, args[0]))

	case "rev":
		return r.printNumbers(r.pf.Reverse(ctx, args[0]))

	case "getrev":
		return r.printNumbers(r.pf.GetReverse(ctx, args[0]))

	case "lookup":
		res, value, err := r.pf.Lookup(ctx, args[0])
		if err != nil {
			return err
		}
		if res != phfwd.Match {
			return r.println(res)
		}
		return r.println(value)

	case "list":
		return r.pf.Walk(ctx, func(_ context.Context, from, to string) error {
			return r.println(from + " " + to)
		})

	case "nodes":
		return r.println(r.pf.GetNodesCount())
	}

	return nil
}

func (r *runner) println(v any) error {
	_, err := fmt.Fprintln(r.out, v)
	return err
}

func (r *runner) printNumbers(pn *phfwd.PhoneNumbers, err error) error {
	if err != nil {
		return err
	}

	for i := 0; i < pn.Len(); i++ {
		num, _ := pn.Get(i)
		if err := r.println(num); err != nil {
			return err
		}
	}

	return nil
}
