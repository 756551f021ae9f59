/*
File    : ember/eval/builtins.go
Author  : akashmaji946

The built-in registry: len, first, last, push, print, plus the PI
constant. Every error string here is an observable contract and must
match byte for byte.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/ember/object"
)

var builtinFns = map[string]*object.Builtin{
	"len": {
		Name: "len",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of argument. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *object.String:
				return &object.Number{Value: float64(len(arg.Value))}
			case *object.Array:
				return &object.Number{Value: float64(len(arg.Elements))}
			default:
				return newError("argument to len not supported, got %s", args[0].Type())
			}
		},
	},

	"first": {
		Name: "first",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of argument. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to first must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return NIL
			}
			return arr.Elements[0]
		},
	},

	"last": {
		Name: "last",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of argument. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to last must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return NIL
			}
			return arr.Elements[len(arr.Elements)-1]
		},
	},

	"push": {
		Name: "push",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError("wrong number of argument. got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to push must be ARRAY, got %s", args[0].Type())
			}
			newElements := make([]object.Object, len(arr.Elements), len(arr.Elements)+1)
			copy(newElements, arr.Elements)
			newElements = append(newElements, args[1])
			return &object.Array{Elements: newElements}
		},
	},

	"print": {
		Name: "print",
		Fn: func(args ...object.Object) object.Object {
			for _, arg := range args {
				fmt.Println(arg.Inspect())
			}
			return NIL
		},
	},
}

// builtinObjects holds the constant-like built-ins — just PI. Reading
// the name unwraps to the inner Number; the BuiltinObject wrapper itself
// is only ever visible via its own Inspect/Type if something other than
// a bare identifier reference handed it around.
var builtinObjects = map[string]*object.BuiltinObject{
	"PI": {Name: "PI", Inner: &object.Number{Value: 3.14}},
}

// InstallGlobals is a hook for bindings that must live in the
// Environment itself rather than the read-only builtin tables above.
// Ember currently needs none — PI and the builtin functions are
// resolved directly by evalIdentifier — but the hook is kept so the
// REPL and file-runner have a single seeding point to call before
// evaluating user code.
func InstallGlobals(env *object.Environment) {}
