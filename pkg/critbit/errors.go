package critbit

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when the word is already stored.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStopWalk can be returned from a Walk callback to end the walk early
	// without Walk reporting an error.
	ErrStopWalk = errors.New("stop walk")
)

// InvariantError reports a tree shape that the node model does not allow.
// It always means a bug and callers should not try to recover from it.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("critbit: %s: invariant violated: %s", e.Op, e.Detail)
}

func badNode(op string, n node) error {
	return &InvariantError{Op: op, Detail: fmt.Sprintf("unexpected node %T", n)}
}
