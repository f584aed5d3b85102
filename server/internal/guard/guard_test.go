package guard

import (
	"errors"
	"testing"
)

func TestRunReturnsError(t *testing.T) {
	want := errors.New("failed")
	if err := Run(func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
	if err := Run(func() error { return nil }); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	err := Run(func() error { panic("boom") })
	var perr *PanicError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if perr.Value != "boom" || len(perr.Stack) == 0 {
		t.Fatalf("unexpected panic error: %+v", perr)
	}
}

func TestRunUnwrapsPanickedError(t *testing.T) {
	want := errors.New("inner")
	if err := Run(func() error { panic(want) }); !errors.Is(err, want) {
		t.Fatalf("expected panicked error to unwrap, got %v", err)
	}
}
