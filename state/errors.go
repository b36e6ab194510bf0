package state

import (
	"errors"
	"fmt"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

// ErrUnresolved is wrapped by every ResolutionError so callers can test for
// the fatal class with errors.Is.
var ErrUnresolved = errors.New("unresolved reference")

const (
	RefHouse     = "house"
	RefTitle     = "title"
	RefCharacter = "character"
)

// ResolutionError reports a required one-hop reference that could not be
// followed. It aborts the run.
type ResolutionError struct {
	Kind   string
	Id     Id
	Reason string
}

func (err *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved %s %q: %s", err.Kind, err.Id, err.Reason)
}

func (err *ResolutionError) Unwrap() error {
	return ErrUnresolved
}

func Unresolved(kind string, id Id, format string, args ...any) *ResolutionError {
	return &ResolutionError{
		Kind:   kind,
		Id:     id,
		Reason: fmt.Sprintf(format, args...),
	}
}
