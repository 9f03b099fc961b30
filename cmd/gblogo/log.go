package main

import (
	"fmt"
	"io"
	"os"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	logOut io.Writer = os.Stderr
)

func log(args ...any) {
	_, _ = fmt.Fprint(logOut, args...)
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOut, format, args...)
}

func logln(args ...any) {
	_, _ = fmt.Fprintln(logOut, args...)
}
