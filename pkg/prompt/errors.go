package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoElements is returned when there is nothing to choose from.
	ErrNoElements = errors.New("prompt: no custom elements found")
	// ErrUnknownSelection is returned when a scripted selection names an
	// element the manifest does not define.
	ErrUnknownSelection = errors.New("prompt: unknown element")
)
