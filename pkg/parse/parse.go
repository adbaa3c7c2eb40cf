// Package parse classifies lines of calculator input.
//
// A line is one of three things: a control command like "history", a call of
// a unary function like "√16" or "sin(30)", or a binary expression of exactly
// three whitespace-separated tokens like "5 + 3". There is no nesting.
package parse

import (
	"strings"

	"src.elv.sh/elvcalc/pkg/calc"
)

// Node is the result of parsing a line. It is one of *Command, *Call and
// *Expr.
type Node interface {
	node()
}

// Names of control commands.
const (
	Quit    = "quit"
	History = "history"
	Clear   = "clear"
)

// Command is a control command.
type Command struct {
	// One of Quit, History and Clear.
	Name string
}

// Names of unary functions.
const (
	Sqrt = "√"
	Sin  = "sin"
)

// Call is a call of a unary function.
type Call struct {
	// One of Sqrt and Sin.
	Func string
	Arg  float64
}

// Expr is a binary expression. The operator is not validated by the parser.
type Expr struct {
	Left  float64
	Op    string
	Right float64
}

func (*Command) node() {}
func (*Call) node()    {}
func (*Expr) node()    {}

var commands = map[string]string{
	"quit": Quit, "exit": Quit, "q": Quit,
	"history": History,
	"clear":   Clear,
}

// Multiplication and division glyphs are accepted in place of their ASCII
// equivalents.
var opNormalizer = strings.NewReplacer("×", "*", "÷", "/")

// Parse parses a line of input. Surrounding whitespace is ignored, and
// commands are matched case-insensitively. If the returned error is not nil,
// it is a calc.ParseError.
func Parse(line string) (Node, error) {
	line = strings.TrimSpace(line)
	if name, ok := commands[strings.ToLower(line)]; ok {
		return &Command{name}, nil
	}

	if strings.HasPrefix(line, Sqrt) {
		arg, err := calc.ParseNum(line[len(Sqrt):])
		if err != nil {
			return nil, err
		}
		return &Call{Sqrt, arg}, nil
	}

	if strings.HasPrefix(line, Sin+"(") {
		if !strings.HasSuffix(line, ")") {
			return nil, calc.ParseError{What: "function call", Text: line}
		}
		arg, err := calc.ParseNum(line[len(Sin)+1 : len(line)-1])
		if err != nil {
			return nil, err
		}
		return &Call{Sin, arg}, nil
	}

	fields := strings.Fields(opNormalizer.Replace(line))
	if len(fields) != 3 {
		return nil, calc.ParseError{What: "expression", Text: line, Err: calc.ErrFormat}
	}
	left, err := calc.ParseNum(fields[0])
	if err != nil {
		return nil, err
	}
	right, err := calc.ParseNum(fields[2])
	if err != nil {
		return nil, err
	}
	return &Expr{left, fields[1], right}, nil
}
