/*
Package maybe implements an option type for results which may be absent,
such as the score of a bingo board that never wins or the placement of a
scanner which shares too few beacons with the scanners placed so far.

Clients pattern-match on a Maybe like this:

    var score int
    switch m := result.Match(); m {
    case m.Just(&score):
        // use score
    case m.Nothing():
        // handle absence
    }

Matching works for any T, including slices and maps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the empty option of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromOK converts the Go idiom (value, ok) into a Maybe.
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is compared by identity in switch statements, never by the
// wrapped value.
type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
