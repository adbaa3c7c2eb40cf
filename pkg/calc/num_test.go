package calc

import (
	"math"
	"testing"

	. "src.elv.sh/elvcalc/pkg/tt"
)

func TestParseNum(t *testing.T) {
	Test(t, Fn("ParseNum", ParseNum), Table{
		Args("5").Rets(5.0, nil),
		Args(" -2.5 ").Rets(-2.5, nil),
		Args("1e3").Rets(1000.0, nil),
		Args(".5").Rets(0.5, nil),
		Args("inf").Rets(math.Inf(1), nil),
		Args("1e400").Rets(math.Inf(1), nil),

		Args("").Rets(0.0, ParseError{What: "number", Text: ""}),
		Args("abc").Rets(0.0, ParseError{What: "number", Text: "abc"}),
		Args("1,5").Rets(0.0, ParseError{What: "number", Text: "1,5"}),
		Args("0x1p4").Rets(0.0, ParseError{What: "number", Text: "0x1p4"}),
		Args(" -0X10").Rets(0.0, ParseError{What: "number", Text: " -0X10"}),
		Args("0").Rets(0.0, nil),
	})
}

func TestFormatNum(t *testing.T) {
	Test(t, Fn("FormatNum", FormatNum), Table{
		Args(5.0).Rets("5.0"),
		Args(-3.0).Rets("-3.0"),
		Args(0.0).Rets("0.0"),
		Args(0.1).Rets("0.1"),
		Args(2.5).Rets("2.5"),
		Args(0.0001).Rets("0.0001"),
		// Exponent below -4 switches to scientific notation.
		Args(0.00001).Rets("1e-05"),
		Args(-0.00009).Rets("-9e-05"),
		Args(1e15).Rets("1000000000000000.0"),
		// Exponent of 16 or more switches to scientific notation.
		Args(1e16).Rets("1e+16"),
		Args(1.5e20).Rets("1.5e+20"),
		Args(math.Inf(1)).Rets("inf"),
		Args(math.Inf(-1)).Rets("-inf"),
		Args(math.NaN()).Rets("nan"),
	})
}

func TestFormatResult(t *testing.T) {
	Test(t, Fn("FormatResult", FormatResult), Table{
		Args(8.0).Rets("8.0000"),
		Args(0.49999999999999994).Rets("0.5000"),
		Args(1.0 / 3).Rets("0.3333"),
		Args(-2.0 / 3).Rets("-0.6667"),
		Args(1e20).Rets("100000000000000000000.0000"),
		Args(math.Inf(1)).Rets("inf"),
		Args(math.NaN()).Rets("nan"),
	})
}
