package child

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrChildDied reports that the child died before the gate was released.
var ErrChildDied = errors.New("child died unexpectedly")

// NotFoundError reports a command whose binary resolves to no executable
// path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %q does not exist or is not executable", e.Name)
}

// AmbiguousPathError reports a command whose binary resolves to more than
// one executable path.
type AmbiguousPathError struct {
	Name    string
	Matches int
}

func (e *AmbiguousPathError) Error() string {
	return fmt.Sprintf("path %q must refer to a unique binary but matched %d binaries", e.Name, e.Matches)
}

// TooManyArgsError reports a command exceeding the argument limit.
type TooManyArgsError struct {
	Count int
	Max   int
}

func (e *TooManyArgsError) Error() string {
	return fmt.Sprintf("too many arguments for command (%d > %d)", e.Count, e.Max)
}
