package logger

import (
	"fmt"
	"io"
	"os"
)

var (
	// EnableDebug determines if debug logs are emitted.
	EnableDebug bool

	// output is where logs are written, stderr unless overridden.
	output io.Writer = os.Stderr
)

// SetOutput redirects all logs to w.
func SetOutput(w io.Writer) {
	output = w
}

// Log writes a log message to stderr, followed by a newline. Printf-style
// formatting is applied to msg using args.
func Log(msg string, args ...interface{}) {
	if len(args) == 0 {
		// Use Fprint if no args - avoids treating msg like a format string
		fmt.Fprint(output, msg+"\n")
	} else {
		fmt.Fprintf(output, msg+"\n", args...)
	}
}

// Debug writes a log message to stderr, followed by a newline, if the CLI
// is executing in debug mode. Printf-style formatting is applied to msg
// using args.
func Debug(msg string, args ...interface{}) {
	if !EnableDebug {
		return
	}
	debugPrefix := "[" + Blue("debug") + "] "
	if len(args) == 0 {
		fmt.Fprint(output, debugPrefix+msg+"\n")
	} else {
		fmt.Fprintf(output, debugPrefix+msg+"\n", args...)
	}
}

// Error writes an error message to stderr, prefixed with "Error:".
func Error(msg string, args ...interface{}) {
	Log(Red("Error:")+" "+msg, args...)
}
