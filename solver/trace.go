package solver

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// keySelector hands out one Go-logger tracer per key, so every package
// keeps a trace level of its own.
type keySelector struct {
	mx      sync.Mutex
	out     io.Writer
	tracers map[string]tracing.Trace
}

// NewTraceSelector creates a trace selector whose tracers write to out.
// New tracers start at level error.
func NewTraceSelector(out io.Writer) tracing.TraceSelector {
	return &keySelector{out: out, tracers: make(map[string]tracing.Trace)}
}

func (sel *keySelector) Select(key string) tracing.Trace {
	sel.mx.Lock()
	defer sel.mx.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetOutput(sel.out)
		t.SetTraceLevel(tracing.LevelError)
		sel.tracers[key] = t
	}
	return t
}

// InstallTracing routes the tracing of all packages to out.
func InstallTracing(out io.Writer) {
	tracing.SetTraceSelector(NewTraceSelector(out))
}
