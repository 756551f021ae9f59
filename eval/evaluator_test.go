/*
File    : ember/eval/evaluator_test.go
Author  : akashmaji946
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/ember/object"
	"github.com/akashmaji946/ember/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(input)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	env := object.NewEnvironment()
	return Eval(program, env)
}

func testNumberObject(t *testing.T, obj object.Object, expected float64) {
	t.Helper()
	num, ok := obj.(*object.Number)
	require.True(t, ok, "object is not Number, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, num.Value)
}

func TestEvalNumberExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}
	for _, tt := range tests {
		testNumberObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
	}
	for _, tt := range tests {
		result, ok := testEval(t, tt.input).(*object.Boolean)
		require.True(t, ok)
		assert.Equal(t, tt.expected, result.Value)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!0", false},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		{"!(if (false) { 1 })", true},
	}
	for _, tt := range tests {
		result, ok := testEval(t, tt.input).(*object.Boolean)
		require.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, result.Value, "input %q", tt.input)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", float64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", float64(10)},
		{"if (1 < 2) { 10 }", float64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", float64(20)},
		{"if (1 < 2) { 10 } else { 20 }", float64(10)},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(float64); ok {
			testNumberObject(t, evaluated, expected)
		} else {
			assert.Equal(t, NIL, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{
			`
			if (10 > 1) {
				if (10 > 1) {
					return 10;
				}
				return 1;
			}
			`,
			10,
		},
	}
	for _, tt := range tests {
		testNumberObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "type mismatch: NUMBER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: NUMBER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{
			`
			if (10 > 1) {
				if (10 > 1) {
					return true + false;
				}
				return 1;
			}
			`,
			"unknown operator: BOOLEAN + BOOLEAN",
		},
		{"foobar", "identifier not found: foobar"},
		{`"hello" - "world"`, "unknown operator: STRING - STRING"},
		{`{"name": "Monkey"}[fn(x) { x }];`, "unusable as hash key: FUNCTION"},
	}
	for _, tt := range tests {
		errObj, ok := testEval(t, tt.input).(*object.Error)
		require.True(t, ok, "input %q did not produce an error", tt.input)
		assert.Equal(t, tt.expected, errObj.Message)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}
	for _, tt := range tests {
		testNumberObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}
	for _, tt := range tests {
		testNumberObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestClosures(t *testing.T) {
	input := `
	let newAdder = fn(x) {
		fn(y) { x + y };
	};
	let addTwo = newAdder(2);
	addTwo(2);
	`
	testNumberObject(t, testEval(t, input), 4)
}

func TestFunctionArityMismatch(t *testing.T) {
	input := "let add = fn(x, y) { x + y; }; add(1);"
	errObj, ok := testEval(t, input).(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "wrong number of argument. got=1, want=2", errObj.Message)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hello World!"`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hello" + " " + "World!"`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`len("")`, float64(0)},
		{`len("four")`, float64(4)},
		{`len("hello world")`, float64(11)},
		{`len(1)`, "argument to len not supported, got NUMBER"},
		{`len("one", "two")`, "wrong number of argument. got=2, want=1"},
		{`len([])`, float64(0)},
		{`len([2, 3 + 4])`, float64(2)},
		{`first([1, 2, 3])`, float64(1)},
		{`first([])`, nil},
		{`last([1, 2, 3])`, float64(3)},
		{`last([])`, nil},
		{`push([1], 2)`, []float64{1, 2}},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		switch expected := tt.expected.(type) {
		case float64:
			testNumberObject(t, evaluated, expected)
		case string:
			errObj, ok := evaluated.(*object.Error)
			require.True(t, ok, "input %q", tt.input)
			assert.Equal(t, expected, errObj.Message)
		case nil:
			assert.Equal(t, NIL, evaluated)
		case []float64:
			arr, ok := evaluated.(*object.Array)
			require.True(t, ok)
			require.Len(t, arr.Elements, len(expected))
			for i, v := range expected {
				testNumberObject(t, arr.Elements[i], v)
			}
		}
	}
}

func TestArrayLiterals(t *testing.T) {
	evaluated := testEval(t, "[1, 2 * 2, 3 + 3]")
	arr, ok := evaluated.(*object.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	testNumberObject(t, arr.Elements[0], 1)
	testNumberObject(t, arr.Elements[1], 4)
	testNumberObject(t, arr.Elements[2], 6)
}

func TestArrayIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1, 2, 3][0]", float64(1)},
		{"[1, 2, 3][1]", float64(2)},
		{"[1, 2, 3][2]", float64(3)},
		{"let i = 0; [1][i];", float64(1)},
		{"[1, 2, 3][1 + 1];", float64(3)},
		{"let myArray = [1, 2, 3]; myArray[2];", float64(3)},
		{"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];", float64(6)},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(float64); ok {
			testNumberObject(t, evaluated, expected)
		} else {
			assert.Equal(t, NIL, evaluated)
		}
	}
}

func TestHashLiterals(t *testing.T) {
	input := `
	let two = "two";
	{
		"one": 10 - 9,
		two: 1 + 1,
		"thr" + "ee": 6 / 2,
		4: 4,
		true: 5,
		false: 6
	}
	`
	evaluated := testEval(t, input)
	result, ok := evaluated.(*object.Hash)
	require.True(t, ok)

	expected := map[string]float64{
		(&object.String{Value: "one"}).HashKey():   1,
		(&object.String{Value: "two"}).HashKey():   2,
		(&object.String{Value: "three"}).HashKey(): 3,
		(&object.Number{Value: 4}).HashKey():       4,
		TRUE.HashKey():  5,
		FALSE.HashKey(): 6,
	}

	require.Len(t, result.Pairs, len(expected))
	for expectedKey, expectedValue := range expected {
		pair, ok := result.Pairs[expectedKey]
		require.True(t, ok, "no pair for key %q", expectedKey)
		testNumberObject(t, pair.Value, expectedValue)
	}
}

func TestHashIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`{"foo": 5}["foo"]`, float64(5)},
		{`{"foo": 5}["bar"]`, nil},
		{`let key = "foo"; {"foo": 5}[key]`, float64(5)},
		{`{}["foo"]`, nil},
		{`{5: 5}[5]`, float64(5)},
		{`{true: 5}[true]`, float64(5)},
		{`{false: 5}[false]`, float64(5)},
	}
	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(float64); ok {
			testNumberObject(t, evaluated, expected)
		} else {
			assert.Equal(t, NIL, evaluated)
		}
	}
}

func TestPIResolvesToInnerNumber(t *testing.T) {
	testNumberObject(t, testEval(t, "PI"), 3.14)
}

func TestPIShadowedByLetBinding(t *testing.T) {
	testNumberObject(t, testEval(t, "let PI = 9; PI;"), 9)
}
