package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// ErrFormat is wrapped in the ParseError returned for input that is not a
// command, a function call or an expression of exactly three tokens. Its
// message doubles as a hint on the accepted input forms.
var ErrFormat = errors.New("format: '5 + 3' or '√16' or 'sin(30)'")

// DomainError is returned when an operand lies outside the domain of a
// function.
type DomainError struct {
	Func    string
	Operand float64
}

func (e DomainError) Error() string {
	return fmt.Sprintf("cannot calculate %s of negative number %s",
		e.Func, FormatNum(e.Operand))
}

// UnknownOperator is returned when the operator of a binary expression is not
// one of the supported ones.
type UnknownOperator struct {
	Op string
}

func (e UnknownOperator) Error() string {
	return "unknown operator: " + e.Op
}

// ParseError is returned when some text cannot be parsed as what is expected
// in its position.
type ParseError struct {
	// What was expected, like "number" or "function call".
	What string
	// The offending text.
	Text string
	// The underlying cause, if any.
	Err error
}

func (e ParseError) Error() string {
	if e.Err == ErrFormat {
		return e.Err.Error()
	}
	msg := "cannot parse " + strconv.Quote(e.Text) + " as " + e.What
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ParseError) Unwrap() error { return e.Err }
