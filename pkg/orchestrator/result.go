package orchestrator

import (
	"errors"
	"fmt"
)

// ErrElementNotFound is returned when a selected element is not among the
// manifest's custom-element definitions or has no declaration.
var ErrElementNotFound = errors.New("orchestrator: element not found")

// ElementError attaches the element name to a per-element failure.
type ElementError struct {
	Element string
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %s: %v", e.Element, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Result is the outcome of generating one element.
type Result struct {
	Element string
	// Files lists every path written for the element, in write order.
	Files []string
	Err   error
}

// OK reports whether the element was generated without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary collects the results of a batch in processing order.
type Summary struct {
	Results []Result
}

// Total returns the number of attempted elements.
func (s Summary) Total() int {
	return len(s.Results)
}

// Succeeded returns the number of elements generated without error.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failures returns the failed results in processing order.
func (s Summary) Failures() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
