package decoder

import "fmt"

// Handler is the operation a matcher binds for handler set V. The caller
// invokes it after a successful match; the bool result is the handler set's
// own protocol (translators use it to report whether the current block may
// continue).
type Handler[V any] func(v V, inst uint32) bool

// Matcher combines one compiled pattern with its name and bound handler.
// It is immutable after construction, so any number of goroutines may call
// Matches concurrently.
type Matcher[V any] struct {
	name    string
	pattern Pattern
	handler Handler[V]
}

// NewMatcher compiles desc and binds fn to it under name.
func NewMatcher[V any](fn Handler[V], name, desc string) (Matcher[V], error) {
	p, err := CompilePattern(desc)
	if err != nil {
		return Matcher[V]{}, fmt.Errorf("failed to compile pattern for %q: %s", name, err)
	}
	return Matcher[V]{name: name, pattern: p, handler: fn}, nil
}

func (m *Matcher[V]) Name() string {
	return m.name
}

func (m *Matcher[V]) Pattern() Pattern {
	return m.pattern
}

// Matches reports whether word is an instance of this record's encoding.
func (m *Matcher[V]) Matches(word uint32) bool {
	return m.pattern.Matches(word)
}

// Handle invokes the bound handler on v for inst.
func (m *Matcher[V]) Handle(v V, inst uint32) bool {
	return m.handler(v, inst)
}
