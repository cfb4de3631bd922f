package cli

// Config represents command configuration.
//
// The config is populated by the root command's flags and
// read by its run function.
type Config struct {
	// Name is the explicit name to greet, set by --name.
	Name string

	// DebugMode indicates if the CLI should produce additional
	// debug output on stderr.
	DebugMode bool

	// Environ is the environment the user's identity is read from.
	//
	// When nil, the process environment is used.
	Environ map[string]string
}
