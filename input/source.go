package input

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInputNotFound is returned if an input path does not exist or does not
// denote a regular file.
var ErrInputNotFound = errors.New("input file not found")

// StdinName is the path argument which selects standard input.
const StdinName = "-"

// Source is an input source: either a file or standard input.
type Source struct {
	Path string // empty or "-" for standard input
}

// FromArg creates an input source from a command-line argument.
func FromArg(arg string) Source {
	return Source{Path: arg}
}

// IsStdin is true if the source reads from standard input.
func (src Source) IsStdin() bool {
	return src.Path == "" || src.Path == StdinName
}

func (src Source) String() string {
	if src.IsStdin() {
		return "<stdin>"
	}
	return src.Path
}

// Open returns a reader for the input source. Clients must close it.
// Standard input is wrapped so that closing it is a no-op.
func (src Source) Open() (io.ReadCloser, error) {
	if src.IsStdin() {
		tracer().Debugf("reading input from stdin")
		return io.NopCloser(os.Stdin), nil
	}
	if err := CheckFile(src.Path); err != nil {
		return nil, err
	}
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", src.Path, err)
	}
	tracer().Debugf("reading input from %s", src.Path)
	return f, nil
}

// CheckFile returns an error wrapping ErrInputNotFound if path does not
// exist or is not a regular file.
func CheckFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInputNotFound, path)
	}
	return nil
}
