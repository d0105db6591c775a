package solver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// SolveFunc reads a complete puzzle input and computes the answers.
type SolveFunc func(io.Reader) (Answers, error)

// Puzzle describes one day.
type Puzzle struct {
	Day   int
	Title string
	Solve SolveFunc
}

// Name is the name of the day's executable, e.g. "day07".
func (p Puzzle) Name() string {
	return fmt.Sprintf("day%02d", p.Day)
}

// TraceKey is the tracing key of the day's package, e.g. "aoc.day07".
func (p Puzzle) TraceKey() string {
	return "aoc." + p.Name()
}

// sharedTraceKeys are the keys of the toolbox packages, adjusted together
// with the day's own tracer.
var sharedTraceKeys = []string{"aoc.input", "aoc.grid", "aoc.snailfish", "aoc.solver"}

// ParseTraceLevel maps "debug", "info" and "error" to tracing levels.
func ParseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// SetTraceLevel sets the level for the tracers of the toolbox packages and
// for the tracers given by extra keys.
func SetTraceLevel(level tracing.TraceLevel, extra ...string) {
	for _, key := range append(append([]string{}, sharedTraceKeys...), extra...) {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// Run opens the input named by path, solves the puzzle and closes the input
// again. A path of "-" denotes standard input.
func Run(p Puzzle, path string) (Answers, error) {
	src := input.FromArg(path)
	r, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	tracer().Infof("solving %s for input %s", p.Name(), src)
	answers, err := p.Solve(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return answers, nil
}

// NewCommand creates the command line interface for a puzzle. Tracing goes
// to the command's error output, answers go to its standard output.
func NewCommand(p Puzzle) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:           p.Name() + " <input-file>",
		Short:         p.Title,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ParseTraceLevel(level)
			if err != nil {
				return err
			}
			InstallTracing(cmd.ErrOrStderr())
			SetTraceLevel(l, p.TraceKey())
			answers, err := Run(p, args[0])
			if err != nil {
				return err
			}
			return answers.Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&level, "trace", "error", "trace level (debug, info, error)")
	return cmd
}

// Main executes the command for a puzzle and terminates the process with
// exit code 1 if anything fails.
func Main(p Puzzle) {
	cmd := NewCommand(p)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", p.Name(), err)
		os.Exit(1)
	}
}
