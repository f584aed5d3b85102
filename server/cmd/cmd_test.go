package cmd

import (
	"errors"
	"testing"
)

type echo struct{ ran [][]string }

func (*echo) Name() string        { return "echo" }
func (*echo) Aliases() []string   { return []string{"say"} }
func (*echo) Description() string { return "" }
func (*echo) Usage() string       { return "<text>" }
func (e *echo) Run(_ Source, args []string, o *Output) {
	e.ran = append(e.ran, args)
	for _, a := range args {
		o.Print(a)
	}
	if len(args) == 0 {
		o.Error(errors.New("nothing to echo"))
	}
}

type source struct{ outputs []*Output }

func (*source) Name() string                  { return "test" }
func (s *source) SendCommandOutput(o *Output) { s.outputs = append(s.outputs, o) }

func TestExecuteLine(t *testing.T) {
	e := &echo{}
	Register(e)
	src := &source{}

	ExecuteLine(src, "/echo  a b", nil)
	ExecuteLine(src, "SAY c", nil)
	ExecuteLine(src, "   ", nil)
	ExecuteLine(src, "echo", nil)
	ExecuteLine(src, "missing x", nil)
	ExecuteLine(src, "echo blocked", func(Command, []string) bool { return false })

	if len(e.ran) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(e.ran))
	}
	if len(src.outputs) != 4 {
		t.Fatalf("expected 4 outputs, got %d", len(src.outputs))
	}
	if got := src.outputs[0].Messages(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected messages %v", got)
	}
	if src.outputs[2].ErrorCount() != 1 || src.outputs[2].MessageCount() != 0 {
		t.Fatalf("expected a single error for empty echo")
	}
	if src.outputs[3].ErrorCount() != 1 {
		t.Fatalf("expected unknown command error")
	}
	if _, ok := Commands()["say"]; !ok {
		t.Fatalf("alias not registered")
	}
}
