package lox

import (
	"fmt"
	"io"
	"os"
)

// Print writes one line to standard output: the value's display form
// followed by a newline. The only I/O surface of the runtime.
func Print(v Value) {
	Fprint(os.Stdout, v)
}

func Fprint(w io.Writer, v Value) {
	fmt.Fprintln(w, v.String())
}
