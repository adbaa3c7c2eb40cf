// Package calc implements the arithmetic and trigonometric operations of the
// calculator.
//
// All operations are pure. Each returns a Result that pairs the computed
// value with a human-readable label of the computation; recording results is
// up to the caller.
package calc

import "math"

// Result is the outcome of a successful operation.
type Result struct {
	Label string
	Value float64
}

// Add returns a+b.
func Add(a, b float64) Result {
	return Result{binaryLabel(a, "+", b), a + b}
}

// Subtract returns a-b.
func Subtract(a, b float64) Result {
	return Result{binaryLabel(a, "-", b), a - b}
}

// Multiply returns a*b.
func Multiply(a, b float64) Result {
	return Result{binaryLabel(a, "×", b), a * b}
}

// Divide returns a/b. It fails with ErrDivisionByZero if b is zero.
func Divide(a, b float64) (Result, error) {
	if b == 0 {
		return Result{}, ErrDivisionByZero
	}
	return Result{binaryLabel(a, "÷", b), a / b}, nil
}

// Power returns a raised to the power of b, following the semantics of
// math.Pow.
func Power(a, b float64) Result {
	return Result{binaryLabel(a, "^", b), math.Pow(a, b)}
}

// Sqrt returns the square root of a. It fails with a DomainError if a is
// negative.
func Sqrt(a float64) (Result, error) {
	if a < 0 {
		return Result{}, DomainError{"square root", a}
	}
	return Result{"√" + FormatNum(a), math.Sqrt(a)}, nil
}

// Sin returns the sine of a, which is in degrees.
func Sin(a float64) Result {
	return Result{"sin(" + FormatNum(a) + "°)", math.Sin(a * math.Pi / 180)}
}

// Apply applies the binary operator op to a and b. The operator is one of
// "+", "-", "*", "/" and "^"; "×" and "÷" are also accepted as aliases of "*"
// and "/". Any other operator results in an UnknownOperator error.
func Apply(op string, a, b float64) (Result, error) {
	switch op {
	case "+":
		return Add(a, b), nil
	case "-":
		return Subtract(a, b), nil
	case "*", "×":
		return Multiply(a, b), nil
	case "/", "÷":
		return Divide(a, b)
	case "^":
		return Power(a, b), nil
	default:
		return Result{}, UnknownOperator{op}
	}
}

func binaryLabel(a float64, op string, b float64) string {
	return FormatNum(a) + " " + op + " " + FormatNum(b)
}
