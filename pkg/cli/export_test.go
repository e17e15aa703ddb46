package cli

import "io"

// SetStdoutForTest redirects printed output and returns a restore function
func SetStdoutForTest(w io.Writer) func() {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

var PrintNotes = printNotes
