package main

import (
	"io"
	"os"

	"github.com/airplanedev/greet/pkg/cli"
	"github.com/airplanedev/greet/pkg/cmd/root"
	"github.com/airplanedev/greet/pkg/logger"
	"github.com/pkg/errors"
)

const (
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// Cobra falls back to os.Args when args are nil.
		args = []string{}
	}

	logger.SetOutput(stderr)
	cmd := root.New(&cli.Config{})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Error("%s", err)

		var uerr *root.UsageError
		if errors.As(err, &uerr) {
			logger.Log("")
			cmd.Usage()
			return exitUsage
		}
		return exitError
	}

	return 0
}
