/*
File    : ember/object/object.go
Author  : akashmaji946

Package object defines Ember's runtime value model: a tagged union over a
closed set of kinds, plus the lexically-scoped Environment that binds
names to values. Every evaluation step produces an Object.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/ember/ast"
)

// ObjectType is the type-name form used in error messages.
type ObjectType string

const (
	NIL_OBJ        ObjectType = "NIL"
	NUMBER_OBJ     ObjectType = "NUMBER"
	STRING_OBJ     ObjectType = "STRING"
	BOOLEAN_OBJ    ObjectType = "BOOLEAN"
	RETURN_OBJ     ObjectType = "RETURN"
	ERROR_OBJ      ObjectType = "ERROR"
	UNDEFINED_OBJ  ObjectType = "UNDEFINED"
	FUNCTION_OBJ   ObjectType = "FUNCTION"
	BUILTIN_OBJ    ObjectType = "BUILTIN OBJECT"
	BUILTIN_FN_OBJ ObjectType = "BUILTIN FUNCTION"
	ARRAY_OBJ      ObjectType = "ARRAY"
	HASH_OBJ       ObjectType = "HASH"
)

// Object is the interface every runtime value satisfies.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Hashable is implemented by the value kinds that may be used as hash
// keys: Number, String, Boolean.
type Hashable interface {
	HashKey() string
}

// Number is Ember's single numeric type — there is no int/float split.
type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return strconv.FormatFloat(n.Value, 'f', -1, 64) }
func (n *Number) HashKey() string  { return "N:" + n.Inspect() }

// String wraps a Go string.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }
func (s *String) HashKey() string  { return "S:" + s.Value }

// Boolean wraps a Go bool. TRUE and FALSE in package eval are the process-lifetime
// singletons the evaluator returns; there is no reason to allocate a
// fresh Boolean per comparison.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}
func (b *Boolean) HashKey() string {
	if b.Value {
		return "B:1"
	}
	return "B:0"
}

// Nil is the language's null value.
type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "Nil" }

// ReturnValue wraps a Value during evaluator control flow. It never
// surfaces to a caller outside the evaluator: evalProgram unwraps it at
// the program boundary, and applyFunction unwraps it at every call
// boundary.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error carries a human-readable message. Once produced it propagates
// through every subsequent evaluation step unmodified.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// Undefined is the sentinel Environment.Get returns for a missing name.
// It is internal to the lookup protocol and must never be returned from
// Eval.
type Undefined struct{}

func (u *Undefined) Type() ObjectType { return UNDEFINED_OBJ }
func (u *Undefined) Inspect() string  { return "undefined" }

// Function is a closure: the literal that defines it, plus the
// environment captured at the point of its creation.
type Function struct {
	Params []*ast.Identifier
	Body   *ast.BlockStatement
	Env    *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "<function: fn>" }

// BuiltinFunction is the signature every native callable implements.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a BuiltinFunction so it satisfies Object.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_FN_OBJ }
func (b *Builtin) Inspect() string  { return "<builtin-function: " + b.Name + ">" }

// BuiltinObject wraps a constant-like built-in value, such as PI.
type BuiltinObject struct {
	Name  string
	Inner Object
}

func (bo *BuiltinObject) Type() ObjectType { return BUILTIN_OBJ }
func (bo *BuiltinObject) Inspect() string  { return "<builtin: " + bo.Inner.Inspect() + ">" }

// Array is an ordered sequence of Values.
type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	parts := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		parts = append(parts, e.Inspect())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashPair preserves the original key alongside its bound value, so the
// key round-trips for inspection even though the map is keyed by the
// derived hash-key string.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash maps a hash-key string (see HashKey) to a (original key, value)
// pair. Only Number, String, and Boolean may be used as keys.
type Hash struct {
	Pairs map[string]HashPair
}

func (h *Hash) Type() ObjectType { return HASH_OBJ }
func (h *Hash) Inspect() string {
	parts := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		parts = append(parts, fmt.Sprintf("%s:%s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
