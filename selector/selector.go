package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrPromptAborted is returned when the user interrupts a prompt.
	ErrPromptAborted = errors.New("prompt aborted")
	// ErrIndexOutOfRange is returned when a Chooser picks an index outside
	// of the options it was given.
	ErrIndexOutOfRange = errors.New("selected index out of range")
)

// Chooser asks the user to pick one of several options or to type a line.
type Chooser interface {
	// Select blocks until an option is picked and returns its index.
	Select(title string, options []string) (int, error)
	// Input blocks until a line is entered and returns it verbatim.
	Input(title string) (string, error)
}

// NoCandidatesError reports a stage that returned nothing to choose from.
type NoCandidatesError struct {
	Resource string
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("no %s found", e.Resource)
}
