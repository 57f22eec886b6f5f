// Package variadic demonstrates collecting positional and named arguments
// in a single call, and spreading existing collections into that call.
//
// Positional values use a Go variadic parameter (args ...any). Named values
// are carried by Kwargs, an insertion-ordered list of name/value pairs.
package variadic

import (
	"fmt"
	"io"
	"slices"
)

// Pair is one named argument.
type Pair struct {
	Name  string
	Value any
}

// Kwargs holds named arguments in insertion order. Names are unique when
// built through Set or KwargsOf.
type Kwargs []Pair

// KwargsOf builds Kwargs from alternating name/value arguments:
//
//	KwargsOf("fruit", "apple", "color", "red")
//
// A non-string name or a trailing name without a value is an error.
func KwargsOf(pairs ...any) (Kwargs, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("kwargs: odd number of arguments (%d)", len(pairs))
	}

	kw := make(Kwargs, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("kwargs: argument %d: name must be a string, got %T", i, pairs[i])
		}
		kw = kw.Set(name, pairs[i+1])
	}
	return kw, nil
}

// Set returns a copy of kw with name bound to value. An existing name keeps
// its position. kw itself is not modified.
func (kw Kwargs) Set(name string, value any) Kwargs {
	kw = slices.Clone(kw)
	for i := range kw {
		if kw[i].Name == name {
			kw[i].Value = value
			return kw
		}
	}
	return append(kw, Pair{Name: name, Value: value})
}

// Get returns the value bound to name.
func (kw Kwargs) Get(name string) (any, bool) {
	for _, p := range kw {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Names returns the names in insertion order.
func (kw Kwargs) Names() []string {
	names := make([]string, len(kw))
	for i, p := range kw {
		names[i] = p.Name
	}
	return names
}

// Demo writes every positional argument with its index, then every named
// argument in insertion order. Any value type is accepted; only write
// errors are returned.
func Demo(w io.Writer, kwargs Kwargs, args ...any) error {
	ew := &errWriter{w: w}

	ew.printf("Positional arguments received:\n")
	for i, arg := range args {
		ew.printf("  Argument %d: %v\n", i, arg)
	}

	ew.printf("\nNamed arguments received:\n")
	for _, p := range kwargs {
		ew.printf("  %s: %v\n", p.Name, p.Value)
	}

	return ew.err
}

// errWriter stops writing after the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
