package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/airplanedev/greet/pkg/logger"
	"github.com/kr/text"
	"github.com/spf13/cobra"
)

// Usage prints the usage for a command to stderr.
func usage(cmd *cobra.Command) error {
	writeUsage(cmd.ErrOrStderr(), cmd)
	return nil
}

// Help prints the help for a command to stdout.
func help(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	desc := cmd.Short
	if cmd.Long != "" {
		desc = cmd.Long
	}
	fmt.Fprintf(w, "%s\n\n", trim(desc))
	writeUsage(w, cmd)

	if cmd.HasExample() {
		s := trim(cmd.Example)
		fmt.Fprintf(w, "\n%s\n", logger.Bold("Examples:"))
		fmt.Fprintf(w, "%s\n", text.Indent(s, "  "))
	}
}

func writeUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "%s\n", logger.Bold("Usage:"))
	fmt.Fprintf(w, "  %s\n", cmd.UseLine())

	if flags := cmd.LocalFlags().FlagUsages(); flags != "" {
		s := dedent(flags)
		fmt.Fprintf(w, "\n%s\n", logger.Bold("Flags:"))
		fmt.Fprint(w, text.Indent(s, "  "))
	}
}

// Trim trims all spaces.
func trim(s string) string {
	return strings.TrimSpace(s)
}

// Dedent trims spaces from each line.
func dedent(s string) string {
	var lines = strings.Split(s, "\n")
	var ret []string
	var min = -1

	for _, line := range lines {
		if len(line) > 0 {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			if min == -1 || indent < min {
				min = indent
			}
		}
	}
	if min <= 0 {
		return s
	}

	for _, l := range lines {
		ret = append(ret, strings.TrimPrefix(l,
			strings.Repeat(" ", min),
		))
	}

	return strings.Join(ret, "\n")
}
