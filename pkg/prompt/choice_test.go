package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	inputPos   int
	selectPos  int
	confirmPos int

	selects  []SelectConfig
	messages []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func TestInteractive_Choose(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{2},
		inputs:    []string{" Widgets ", "  "},
		confirm:   []bool{true},
	}
	choices, err := NewInteractive(WithDriver(driver)).Choose(context.Background(), []string{"MyButton", "TagList"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}

	want := Choices{Selection: "TagList", Group: "Widgets", Versioned: true}
	if diff := cmp.Diff(want, choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"All", "MyButton", "TagList"}, driver.selects[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	wantOrder := []string{MessageElement, MessageGroup, MessageVersioned, MessageNamespace}
	if diff := cmp.Diff(wantOrder, driver.messages); diff != "" {
		t.Fatalf("question order mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractive_DefaultsPreselect(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0}, inputs: []string{"g", "ns"}, confirm: []bool{false}}
	adapter := NewInteractive(WithDriver(driver), WithDefaults(Choices{Selection: "TagList"}))
	choices, err := adapter.Choose(context.Background(), []string{"MyButton", "TagList"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if driver.selects[0].DefaultIndex != 2 {
		t.Fatalf("default index = %d, want 2", driver.selects[0].DefaultIndex)
	}
	if choices.Selection != "All" || choices.Namespace != "ns" {
		t.Fatalf("unexpected choices: %+v", choices)
	}
}

func TestInteractive_Aborted(t *testing.T) {
	driver := &abortDriver{stubDriver{selectIdx: []int{1}}}
	_, err := NewInteractive(WithDriver(driver)).Choose(context.Background(), []string{"MyButton"})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestInteractive_NoElements(t *testing.T) {
	_, err := NewInteractive(WithDriver(&stubDriver{})).Choose(context.Background(), nil)
	if !errors.Is(err, ErrNoElements) {
		t.Fatalf("expected ErrNoElements, got %v", err)
	}
}

func TestScripted_Choose(t *testing.T) {
	names := []string{"MyButton", "TagList"}

	got, err := Scripted{Choices: Choices{Group: "g"}}.Choose(context.Background(), names)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got.Selection != "All" {
		t.Fatalf("empty selection should become All, got %q", got.Selection)
	}

	got, err = Scripted{Choices: Choices{Selection: "all", Namespace: " acme "}}.Choose(context.Background(), names)
	if err != nil || got.Selection != "All" || got.Namespace != "acme" {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}

	if _, err := (Scripted{Choices: Choices{Selection: "Nope"}}).Choose(context.Background(), names); !errors.Is(err, ErrUnknownSelection) {
		t.Fatalf("expected ErrUnknownSelection, got %v", err)
	}
}

type abortDriver struct {
	stubDriver
}

func (d *abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}
