package main

import (
	"errors"
	"fmt"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ArithmeticError = errors.New("arithmetic error")

var UnsupportedExpressionError = fmt.Errorf("%w: %s", ArithmeticError, "only numbers, parentheses and + - * / % operators are allowed")

var EmptyExpressionError = fmt.Errorf("%w: %s", ArithmeticError, "expression is empty")

var NonFiniteResultError = fmt.Errorf("%w: %s", ArithmeticError, "result is not a finite number")

var numberLiteralRegexp = regexp.MustCompile(`[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?`)

// ArithmeticEvaluator computes pure arithmetic: numeric literals, parentheses, unary + -, binary + - * / %.
// Text is parsed by expr-lang, but the tree is reduced here, nothing else of the language is reachable.
type ArithmeticEvaluator struct{}

func NewArithmeticEvaluator() *ArithmeticEvaluator {
	return &ArithmeticEvaluator{}
}

func (e *ArithmeticEvaluator) Evaluate(expression string) (float64, error) {
	if strings.TrimSpace(expression) == "" {
		return 0, EmptyExpressionError
	}

	tree, err := parser.Parse(floatLiterals(expression))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ArithmeticError, err.Error())
	}

	visitor := &ArithmeticNodesVisitor{}
	ast.Walk(&tree.Node, visitor)
	if visitor.unsupported != nil {
		return 0, fmt.Errorf("%w: %T", UnsupportedExpressionError, visitor.unsupported)
	}

	result, err := e.reduce(tree.Node)
	if err == nil && !isFinite(result) {
		err = NonFiniteResultError
	}

	return result, err
}

func (e *ArithmeticEvaluator) reduce(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Value), nil

	case *ast.FloatNode:
		return n.Value, nil

	case *ast.UnaryNode:
		operand, err := e.reduce(n.Node)
		if err != nil {
			return 0, err
		}
		if n.Operator == "-" {
			return -operand, nil
		}
		return operand, nil

	case *ast.BinaryNode:
		left, err := e.reduce(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.reduce(n.Right)
		if err != nil {
			return 0, err
		}
		return applyOperator(n.Operator, left, right)
	}

	return 0, fmt.Errorf("%w: %T", UnsupportedExpressionError, node)
}

func applyOperator(operator string, left float64, right float64) (float64, error) {
	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if result := left / right; isFinite(result) {
			return result, nil
		}
		return 0, fmt.Errorf("%v / %v: %w", left, right, NonFiniteResultError)
	case "%":
		if result := math.Mod(left, right); isFinite(result) {
			return result, nil
		}
		return 0, fmt.Errorf("%v %% %v: %w", left, right, NonFiniteResultError)
	}

	return 0, fmt.Errorf("%w: operator %s", UnsupportedExpressionError, operator)
}

// floatLiterals marks integer literals beyond int64 as floats, expr-lang fails on them otherwise
func floatLiterals(expression string) string {
	return numberLiteralRegexp.ReplaceAllStringFunc(expression, func(literal string) string {
		if _, err := strconv.ParseInt(literal, 10, 64); errors.Is(err, strconv.ErrRange) {
			return literal + ".0"
		}
		return literal
	})
}

func isFinite(number float64) bool {
	return !math.IsInf(number, 0) && !math.IsNaN(number)
}

// ArithmeticNodesVisitor remembers first node which is not a part of plain arithmetic
type ArithmeticNodesVisitor struct {
	unsupported ast.Node
}

func (v *ArithmeticNodesVisitor) Visit(node *ast.Node) {
	if v.unsupported != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IntegerNode, *ast.FloatNode:
		return
	case *ast.UnaryNode:
		if n.Operator == "-" || n.Operator == "+" {
			return
		}
	case *ast.BinaryNode:
		switch n.Operator {
		case "+", "-", "*", "/", "%":
			return
		}
	}

	v.unsupported = *node
}
