package version

import "fmt"

// Set by Go Releaser.
var (
	version string = "<unknown>"
	date    string = "<unknown>"
)

func Get() string {
	return version
}

func Date() string {
	return date
}

// String formats the version the way --version prints it.
func String() string {
	return fmt.Sprintf("%s (%s)", version, date)
}
