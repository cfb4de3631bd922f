package greeter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("USER", func(t *testing.T) {
		var assert = require.New(t)

		user, err := User(map[string]string{"USER": "bob", "USERNAME": "robert"})
		assert.NoError(err)
		assert.Equal("bob", user)
	})

	t.Run("USERNAME when USER is missing", func(t *testing.T) {
		var assert = require.New(t)

		user, err := User(map[string]string{"USERNAME": "robert"})
		assert.NoError(err)
		assert.Equal("robert", user)
	})

	t.Run("USERNAME when USER is empty", func(t *testing.T) {
		var assert = require.New(t)

		user, err := User(map[string]string{"USER": "", "USERNAME": "robert"})
		assert.NoError(err)
		assert.Equal("robert", user)
	})

	t.Run("empty", func(t *testing.T) {
		var assert = require.New(t)

		user, err := User(map[string]string{})
		assert.NoError(err)
		assert.Equal("", user)
	})

	t.Run("process environment", func(t *testing.T) {
		var assert = require.New(t)

		t.Setenv("USER", "carol")

		user, err := User(nil)
		assert.NoError(err)
		assert.Equal("carol", user)
	})
}
