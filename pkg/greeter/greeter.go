// Package greeter resolves who to greet and formats the greeting.
package greeter

import (
	"fmt"
	"io"
)

// DefaultName is greeted when neither the flag nor the environment
// provide a name.
const DefaultName = "World"

// Source identifies which link of the fallback chain produced a name.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceDefault Source = "default"
)

// Resolve returns name if set, else user if set, else DefaultName.
func Resolve(name, user string) string {
	resolved, _ := ResolveSource(name, user)
	return resolved
}

// ResolveSource is like Resolve but also reports where the name came from.
func ResolveSource(name, user string) (string, Source) {
	switch {
	case name != "":
		return name, SourceFlag
	case user != "":
		return user, SourceEnv
	default:
		return DefaultName, SourceDefault
	}
}

// Format returns the greeting for name, without a trailing newline.
func Format(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Greet writes the greeting for name to w, followed by a newline.
func Greet(w io.Writer, name string) error {
	_, err := fmt.Fprintln(w, Format(name))
	return err
}
