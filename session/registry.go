package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ninghz77/chess/engine"
)

var (
	// ErrUnknownEvaluator is returned when a session requests an evaluator
	// name with no registered constructor.
	ErrUnknownEvaluator = errors.New("unknown evaluator")
)

// Registry maps evaluator names to constructors. The engine core never
// references a concrete evaluator; sessions select one by name here, so new
// evaluators become available by registering a constructor.
type Registry map[string]func() engine.Evaluator

// DefaultRegistry lists the built-in evaluators.
func DefaultRegistry() Registry {
	return Registry{
		"material":   func() engine.Evaluator { return engine.NewMaterialEvaluator() },
		"positional": func() engine.Evaluator { return engine.NewPositionalEvaluator() },
	}
}

// New constructs the evaluator registered under name.
func (r Registry) New(name string) (engine.Evaluator, error) {
	ctor, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
	return ctor(), nil
}

// Names returns the registered evaluator names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
