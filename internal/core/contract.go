package core

import (
	"fmt"
	"os"
)

// Abort terminates the process after a contract violation. It never returns
// in production; tests replace it.
var Abort = func(msg string) {
	fmt.Fprintln(os.Stderr, "union: fatal: "+msg)
	os.Exit(2)
}

// Require aborts with the formatted message when cond is false.
func Require(cond bool, format string, args ...any) {
	if !cond {
		Abort(fmt.Sprintf(format, args...))
	}
}
