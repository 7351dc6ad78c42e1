package attr

import (
	"errors"
	"fmt"
)

// ErrNoParams is returned when constructing Params without at least
// the command itself.
var ErrNoParams = errors.New("params require at least a command")

// Params is the command line a host runs when a menu item is clicked:
// the command path plus its positional arguments. Rendered as bash=,
// param1=, param2=, and so on.
type Params struct {
	Cmd  string
	Args []string
}

// NewParams builds Params from a full argument vector. The vector must
// contain at least the command.
func NewParams(argv ...string) (Params, error) {
	if len(argv) == 0 {
		return Params{}, ErrNoParams
	}
	return Params{Cmd: argv[0], Args: argv[1:]}, nil
}

// MaxParams returns a validator enforcing a host's hard limit on the
// total element count, command included. Hosts with such limits apply
// it at the boundary; Params itself is unbounded.
func MaxParams(n int) func(Params) error {
	return func(p Params) error {
		if total := 1 + len(p.Args); total > n {
			return fmt.Errorf("too many params: %d elements, host allows %d", total, n)
		}
		return nil
	}
}

// ValidBitBarParams rejects params the original BitBar app cannot
// handle: the command plus at most five arguments
// (https://github.com/matryer/bitbar/issues/490). SwiftBar has no such
// limit.
var ValidBitBarParams = MaxParams(6)

// Command is a clickable menu item action. Terminal controls whether
// the host runs it in a visible terminal window. Unlike the hosts'
// default of terminal=true, the zero value here is terminal=false,
// which is what plugins almost always want.
type Command struct {
	Params   Params
	Terminal bool
}

// Exec builds a Command that runs in the background.
func Exec(argv ...string) (Command, error) {
	p, err := NewParams(argv...)
	if err != nil {
		return Command{}, err
	}
	return Command{Params: p}, nil
}

// TerminalExec builds a Command that runs in a visible terminal window.
func TerminalExec(argv ...string) (Command, error) {
	p, err := NewParams(argv...)
	if err != nil {
		return Command{}, err
	}
	return Command{Params: p, Terminal: true}, nil
}
