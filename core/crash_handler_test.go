package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeScreen struct{ finalized int }

func (f *fakeScreen) Fini() { f.finalized++ }

func TestHandleCrash(t *testing.T) {
	var out bytes.Buffer
	var code int
	origOut, origExit := crashOut, exit
	crashOut = &out
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, exit = origOut, origExit
		SetCrashScreen(nil)
	})

	screen := &fakeScreen{}
	SetCrashScreen(screen)

	HandleCrash("boom")

	if screen.finalized != 1 {
		t.Errorf("Expected screen finalized once, got %d", screen.finalized)
	}
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "HOPPER CRASHED: boom") {
		t.Errorf("Expected crash report, got %q", out.String())
	}

	// Screen is finalized at most once
	HandleCrash("again")
	if screen.finalized != 1 {
		t.Errorf("Expected no second Fini, got %d", screen.finalized)
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	called := false
	origExit := exit
	exit = func(int) { called = true }
	t.Cleanup(func() { exit = origExit })

	HandleCrash(nil)
	if called {
		t.Error("Expected no exit for nil panic value")
	}
}

func TestGo_Recovers(t *testing.T) {
	done := make(chan struct{})
	origOut, origExit := crashOut, exit
	crashOut = &bytes.Buffer{}
	exit = func(int) { close(done) }
	t.Cleanup(func() { crashOut, exit = origOut, origExit })

	Go(func() { panic("in goroutine") })
	<-done
}
