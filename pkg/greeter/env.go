package greeter

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Identity is the invoking user's identity as exposed by the environment.
type Identity struct {
	User string `env:"USER"`

	// Username is the Windows equivalent of USER.
	Username string `env:"USERNAME"`
}

// Name returns the first non-empty identity, or "" if there is none.
func (i Identity) Name() string {
	if i.User != "" {
		return i.User
	}
	return i.Username
}

// Environ returns the current process environment as a map.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// User reads the invoking user's name from environ.
//
// A nil environ reads the process environment.
func User(environ map[string]string) (string, error) {
	if environ == nil {
		environ = Environ()
	}

	var id Identity
	if err := env.ParseWithOptions(&id, env.Options{Environment: environ}); err != nil {
		return "", errors.Wrap(err, "parse identity")
	}

	return id.Name(), nil
}
