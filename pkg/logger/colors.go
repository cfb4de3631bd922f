package logger

import (
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
)

var (
	Blue = color.New(color.FgHiBlue).SprintFunc()
	Red  = color.New(color.FgHiRed).SprintFunc()
	Bold = color.New(color.Bold).SprintFunc()
)

func init() {
	// Logs go to stderr, so it has to be a terminal too.
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}
