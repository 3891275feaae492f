package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-aemgen/pkg/manifest"
)

// Choices is the resolved set of answers for one batch.
type Choices struct {
	// Selection is an element name or manifest.SelectAll.
	Selection string
	Group     string
	Versioned bool
	// Namespace is optional; empty means no namespace.
	Namespace string
}

// UserChoice supplies the batch choices for the discovered element names.
type UserChoice interface {
	Choose(ctx context.Context, names []string) (Choices, error)
}

// Question texts shown by the interactive flow.
const (
	MessageElement   = "Choose a custom element to transpile to an AEM component:"
	MessageGroup     = "Enter a component group for your library:"
	MessageVersioned = "Do you wish to use versioned clientlibs?"
	MessageNamespace = "Enter an AEM app directory (optional):"
)

// Interactive asks each question through a Driver.
type Interactive struct {
	driver   Driver
	defaults Choices
}

var _ UserChoice = (*Interactive)(nil)

// Option customises an Interactive adapter.
type Option func(*Interactive)

// WithDriver swaps the terminal driver.
func WithDriver(driver Driver) Option {
	return func(i *Interactive) {
		if driver != nil {
			i.driver = driver
		}
	}
}

// WithDefaults pre-fills the answers, typically from configuration.
func WithDefaults(defaults Choices) Option {
	return func(i *Interactive) {
		i.defaults = defaults
	}
}

// NewInteractive constructs the interactive adapter. Without WithDriver it
// talks to the terminal through survey.
func NewInteractive(options ...Option) *Interactive {
	i := &Interactive{}
	for _, opt := range options {
		if opt != nil {
			opt(i)
		}
	}
	if i.driver == nil {
		i.driver = NewSurveyDriver()
	}
	return i
}

// Choose asks for the element first ("All" leads the list), then the group,
// versioning flag, and namespace.
func (i *Interactive) Choose(ctx context.Context, names []string) (Choices, error) {
	if len(names) == 0 {
		return Choices{}, ErrNoElements
	}

	options := append([]string{manifest.SelectAll}, names...)
	idx, err := i.driver.Select(ctx, SelectConfig{
		Message:      MessageElement,
		Options:      options,
		DefaultIndex: indexOf(options, i.defaults.Selection),
		PageSize:     15,
	})
	if err != nil {
		return Choices{}, err
	}
	if idx < 0 || idx >= len(options) {
		return Choices{}, fmt.Errorf("prompt: selection index %d out of range", idx)
	}

	out := Choices{Selection: options[idx]}
	if out.Group, err = i.driver.Input(ctx, InputConfig{Message: MessageGroup, Default: i.defaults.Group}); err != nil {
		return Choices{}, err
	}
	if out.Versioned, err = i.driver.Confirm(ctx, ConfirmConfig{Message: MessageVersioned, Default: i.defaults.Versioned}); err != nil {
		return Choices{}, err
	}
	namespace, err := i.driver.Input(ctx, InputConfig{
		Message: MessageNamespace,
		Default: i.defaults.Namespace,
		Help:    "Leave empty to write components directly into the output directory.",
	})
	if err != nil {
		return Choices{}, err
	}
	out.Namespace = strings.TrimSpace(namespace)
	out.Group = strings.TrimSpace(out.Group)
	return out, nil
}

// Scripted returns fixed choices, used for flags and configuration driven
// runs.
type Scripted struct {
	Choices Choices
}

var _ UserChoice = Scripted{}

// Choose validates the scripted selection against names. An empty selection
// means every element.
func (s Scripted) Choose(ctx context.Context, names []string) (Choices, error) {
	if err := ctx.Err(); err != nil {
		return Choices{}, err
	}
	if len(names) == 0 {
		return Choices{}, ErrNoElements
	}
	out := s.Choices
	out.Namespace = strings.TrimSpace(out.Namespace)
	if out.Selection == "" || manifest.IsAll(out.Selection) {
		out.Selection = manifest.SelectAll
		return out, nil
	}
	if indexOf(names, out.Selection) < 0 {
		return Choices{}, fmt.Errorf("%w: %s", ErrUnknownSelection, out.Selection)
	}
	return out, nil
}
