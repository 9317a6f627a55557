package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct{ f Finalizer }

var crashScreen atomic.Pointer[finalizerBox]

// crashOut receives the crash report, swapped in tests
var crashOut io.Writer = os.Stderr

// exit terminates the process after a crash report, swapped in tests
var exit = os.Exit

// SetCrashScreen registers the screen to finalize before a crash report
// nil clears the registration
func SetCrashScreen(f Finalizer) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&finalizerBox{f: f})
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashScreen.Swap(nil); box != nil {
		box.f.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mHOPPER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
