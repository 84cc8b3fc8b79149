// environment.go: lexical scope chain for variable storage.
package lox

import "fmt"

// Env is a lexical environment frame with a parent link forming a chain
// rooted at the global scope. Lookups and assignments walk parent-ward.
// Use Define to bind in the current frame, Set to update the nearest
// existing binding, and Get to retrieve.
//
// Frames follow strict stack discipline: the evaluator creates a child on
// block entry and drops it on exit, so a frame never outlives the statement
// that created it.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new lexical frame with the given parent (which may be nil
// for the global frame).
func NewEnv(parent *Env) *Env { return &Env{parent: parent, table: make(map[string]Value)} }

// Define binds name to v in the current frame, shadowing any outer binding.
// Redefining a name in the same frame silently replaces the old binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set updates the nearest existing binding of name to v. If no binding
// exists in any visible frame, Set returns an error: assignment never
// implicitly defines, not even in the global frame.
func (e *Env) Set(name string, v Value) error {
	if _, ok := e.table[name]; ok {
		e.table[name] = v
		return nil
	}
	if e.parent != nil {
		return e.parent.Set(name, v)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Get retrieves the nearest visible binding for name or returns an error.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, fmt.Errorf("Undefined variable '%s'.", name)
}
