package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/airplanedev/greet/pkg/logger"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func invoke(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.EnableDebug = false
	})

	code := run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun(t *testing.T) {
	t.Run("name flag", func(t *testing.T) {
		var assert = require.New(t)
		t.Setenv("USER", "bob")

		res := invoke(t, "--name", "Alice")

		assert.Equal(0, res.code)
		assert.Equal("Hello, Alice!\n", res.stdout)
		assert.Empty(res.stderr)
	})

	t.Run("user from environment", func(t *testing.T) {
		var assert = require.New(t)
		t.Setenv("USER", "bob")

		res := invoke(t)

		assert.Equal(0, res.code)
		assert.Equal("Hello, bob!\n", res.stdout)
	})

	t.Run("default", func(t *testing.T) {
		var assert = require.New(t)
		t.Setenv("USER", "")
		t.Setenv("USERNAME", "")

		res := invoke(t)

		assert.Equal(0, res.code)
		assert.Equal("Hello, World!\n", res.stdout)
		assert.Empty(res.stderr)
	})

	t.Run("unknown flag", func(t *testing.T) {
		var assert = require.New(t)

		res := invoke(t, "--bogus")

		assert.Equal(exitUsage, res.code)
		assert.Empty(res.stdout)
		assert.Contains(res.stderr, "unknown flag: --bogus")
		assert.Contains(res.stderr, "Usage:")
		assert.Contains(res.stderr, "--name NAME")
	})

	t.Run("stray argument", func(t *testing.T) {
		var assert = require.New(t)

		res := invoke(t, "Alice")

		assert.Equal(exitUsage, res.code)
		assert.Empty(res.stdout)
		assert.Contains(res.stderr, "Usage:")
	})

	t.Run("help", func(t *testing.T) {
		var assert = require.New(t)

		for _, flag := range []string{"--help", "-h"} {
			res := invoke(t, flag)

			assert.Equal(0, res.code)
			assert.Contains(res.stdout, "Usage:")
			assert.Empty(res.stderr)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		var assert = require.New(t)
		t.Setenv("USER", "bob")

		first := invoke(t, "-n", "Alice")
		second := invoke(t, "-n", "Alice")

		assert.Equal(first, second)
	})
}
