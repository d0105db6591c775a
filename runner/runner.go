package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/npillmayer/aoc2021/input"
)

// ErrNamingConvention is returned for input files whose name does not start
// with "dayNN".
var ErrNamingConvention = errors.New(`input file name must start with "day" and two digits`)

// ErrNoModule is returned if a day has to be run from source, but the go
// tool does not find an enclosing module.
var ErrNoModule = errors.New("not inside the aoc module; use --bin-dir")

var dayPattern = regexp.MustCompile(`^day\d{2}`)

// DayOf derives the day executable's name (e.g. "day07") from the name of an
// input file. The file has to exist.
func DayOf(path string) (string, error) {
	if err := input.CheckFile(path); err != nil {
		return "", err
	}
	base := filepath.Base(path)
	day := dayPattern.FindString(base)
	if day == "" {
		return "", fmt.Errorf("%w: %s", ErrNamingConvention, base)
	}
	return day, nil
}

// Runner starts day executables.
type Runner struct {
	BinDir string    // directory with pre-built day executables, may be empty
	GoTool string    // go tool used if no pre-built executable exists; defaults to "go"
	Dir    string    // working directory of the child process; see Run
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Command creates the command which runs day on the input file at path.
func (r Runner) Command(ctx context.Context, day, path string) *exec.Cmd {
	var cmd *exec.Cmd
	if bin, ok := r.binary(day); ok {
		cmd = exec.CommandContext(ctx, bin, path)
	} else {
		cmd = exec.CommandContext(ctx, r.gotool(), "run", "./cmd/"+day, path)
	}
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd
}

func (r Runner) gotool() string {
	if r.GoTool == "" {
		return "go"
	}
	return r.GoTool
}

// ModuleDir asks the go tool for the root directory of the module
// enclosing the current working directory.
func (r Runner) ModuleDir(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.gotool(), "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("cannot locate module: %w", err)
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", ErrNoModule
	}
	return filepath.Dir(gomod), nil
}

func (r Runner) binary(day string) (string, bool) {
	if r.BinDir == "" {
		return "", false
	}
	bin := filepath.Join(r.BinDir, day)
	fi, err := os.Stat(bin)
	if err != nil || !fi.Mode().IsRegular() || fi.Mode().Perm()&0o111 == 0 {
		return "", false
	}
	return bin, true
}

// Run derives the day from the input file's name and runs its executable.
// It returns the exit code of the child process. An error is returned only
// if the child could not be started at all; the exit code is then 1.
//
// A day without pre-built executable is run from source. If r.Dir is empty,
// it is run from the root of the module enclosing the working directory.
func (r Runner) Run(ctx context.Context, path string) (int, error) {
	day, err := DayOf(path)
	if err != nil {
		return 1, err
	}
	if _, ok := r.binary(day); !ok && r.Dir == "" {
		if r.Dir, err = r.ModuleDir(ctx); err != nil {
			return 1, err
		}
		if path, err = filepath.Abs(path); err != nil {
			return 1, err
		}
	}
	cmd := r.Command(ctx, day, path)
	tracer().Infof("running %v", cmd.Args)
	err = cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		tracer().Infof("%s exited with code %d", day, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	} else if err != nil {
		return 1, fmt.Errorf("cannot run %s: %w", day, err)
	}
	return 0, nil
}
