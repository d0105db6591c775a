// Command aoc runs the day executable matching the name of an input file.
//
//	aoc inputs/day07.txt
//
// is equivalent to running "day07 inputs/day07.txt". The exit code of the
// day executable becomes the exit code of aoc.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/aoc2021/runner"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/spf13/cobra"
)

type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("day executable exited with code %d", e.code)
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

func newRootCmd() *cobra.Command {
	var r runner.Runner
	var level string
	cmd := &cobra.Command{
		Use:           "aoc <input-file>",
		Short:         "Run the day executable for an input file named dayNN…",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := solver.ParseTraceLevel(level)
			if err != nil {
				return err
			}
			solver.InstallTracing(cmd.ErrOrStderr())
			solver.SetTraceLevel(l, "aoc.runner")
			r.Stdout, r.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
			code, err := r.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if code != 0 {
				return exitCodeError{code: code}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&r.BinDir, "bin-dir", "", "directory with pre-built day executables")
	cmd.Flags().StringVar(&r.GoTool, "go", "go", "go tool used to run a day from source, inside the aoc module, if --bin-dir has no executable for it")
	cmd.Flags().StringVar(&level, "trace", "error", "trace level (debug, info, error)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if withCode, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(withCode.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
