package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sgostarter/libunits/dimension"
)

// MaxExpDenominator bounds the rational exponents accepted in formulas and
// when snapping float powers.
const MaxExpDenominator = 16

// parseFormula resolves a formula like "kg*m/s^2" or "km^(1/2)" against the
// registry. Affine units are only legal as the whole expression with
// exponent 1.
func (reg *Registry) parseFormula(formula string) (r Resolved, err error) {
	s := strings.TrimSpace(formula)
	if s == "" {
		r = Dimensionless()

		return
	}

	p := &formulaParser{reg: reg, input: s}

	return p.parse()
}

type formulaParser struct {
	reg   *Registry
	input string
	pos   int
}

type formulaTerm struct {
	def   Definition
	exp   dimension.Ratio
	unity bool
}

func (p *formulaParser) parse() (r Resolved, err error) {
	r = Dimensionless()

	terms := 0
	sign := int64(1)

	for {
		var term formulaTerm

		term, err = p.parseTerm()
		if err != nil {
			return
		}

		terms++

		if !term.unity {
			if term.def.IsAffine() {
				// A bare affine unit is the only allowed shape; anything
				// following it (or preceding it) is rejected below.
				if terms > 1 || !term.exp.IsOne() || sign != 1 {
					err = ErrMalformedExpression

					return
				}

				r.Offset = term.def.Offset
			}

			e := term.exp.MulInt(sign)
			r.Dims = dimension.Combine(r.Dims, dimension.Scale(term.def.Dims, e), 1)
			r.Scale *= powRatio(term.def.Scale, e)
			r.Factors = mergeFactors(r.Factors, []Factor{{Symbol: term.def.Symbol, Exp: e}}, 1)
		}

		p.skipSpace()

		if p.pos >= len(p.input) {
			return
		}

		switch p.input[p.pos] {
		case '*':
			sign = 1
		case '/':
			sign = -1
		default:
			err = fmt.Errorf("%w: unexpected %q in %q", ErrMalformedExpression, p.input[p.pos], p.input)

			return
		}

		if r.IsAffine() {
			err = ErrMalformedExpression

			return
		}

		p.pos++
	}
}

func (p *formulaParser) parseTerm() (term formulaTerm, err error) {
	p.skipSpace()

	sym := p.scanSymbol()
	if sym == "" {
		err = fmt.Errorf("%w: expected unit symbol in %q", ErrMalformedExpression, p.input)

		return
	}

	if sym == "1" {
		term.unity = true

		return
	}

	term.def, err = p.reg.Lookup(sym)
	if err != nil {
		return
	}

	term.exp = dimension.NewRatio(1, 1)

	p.skipSpace()

	if p.pos < len(p.input) && p.input[p.pos] == '^' {
		p.pos++

		term.exp, err = p.parseExponent()
		if err != nil {
			return
		}

		if term.exp.IsZero() && err == nil {
			// sym^0 contributes nothing but must still be a known unit,
			// which Lookup already checked.
			term.unity = true
		}
	}

	return
}

func (p *formulaParser) parseExponent() (r dimension.Ratio, err error) {
	p.skipSpace()

	neg := false

	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		neg = true
		p.pos++
	}

	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		p.pos++

		r, err = p.parseRatio()
		if err != nil {
			return
		}

		p.skipSpace()

		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			err = fmt.Errorf("%w: missing ) in %q", ErrMalformedExpression, p.input)

			return
		}

		p.pos++
	} else {
		r, err = p.parseNumber()
		if err != nil {
			return
		}
	}

	if neg {
		r = r.Neg()
	}

	return
}

func (p *formulaParser) parseRatio() (r dimension.Ratio, err error) {
	p.skipSpace()

	neg := false

	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		neg = true
		p.pos++
	}

	num := p.scanDigits()
	if num == "" {
		err = fmt.Errorf("%w: expected exponent in %q", ErrMalformedExpression, p.input)

		return
	}

	n, _ := strconv.ParseInt(num, 10, 64)

	d := int64(1)

	p.skipSpace()

	if p.pos < len(p.input) && p.input[p.pos] == '/' {
		p.pos++
		p.skipSpace()

		den := p.scanDigits()
		if den == "" {
			err = fmt.Errorf("%w: expected denominator in %q", ErrMalformedExpression, p.input)

			return
		}

		d, _ = strconv.ParseInt(den, 10, 64)
		if d == 0 || d > MaxExpDenominator {
			err = ErrIncompatibleExponent

			return
		}
	}

	if neg {
		n = -n
	}

	r = dimension.NewRatio(n, d)

	return
}

// parseNumber accepts an integer or decimal exponent; decimals are snapped
// to a bounded-denominator rational.
func (p *formulaParser) parseNumber() (r dimension.Ratio, err error) {
	start := p.pos

	p.scanDigits()

	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		p.pos++
		p.scanDigits()
	}

	if p.pos == start {
		err = fmt.Errorf("%w: expected exponent in %q", ErrMalformedExpression, p.input)

		return
	}

	f, convErr := strconv.ParseFloat(p.input[start:p.pos], 64)
	if convErr != nil {
		err = fmt.Errorf("%w: bad exponent in %q", ErrMalformedExpression, p.input)

		return
	}

	r, ok := dimension.ApproxRatio(f, MaxExpDenominator)
	if !ok {
		err = ErrIncompatibleExponent

		return
	}

	return r, nil
}

func (p *formulaParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *formulaParser) scanSymbol() string {
	start := p.pos

	if p.pos < len(p.input) && p.input[p.pos] == '1' {
		p.pos++

		return "1"
	}

	for p.pos < len(p.input) && isSymbolChar(p.input[p.pos]) {
		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *formulaParser) scanDigits() string {
	start := p.pos

	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}

	return p.input[start:p.pos]
}

func isSymbolChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' || c == '_'
}

// powRatio computes base^(num/den) for scale factors, keeping integer powers
// exact by repeated multiplication.
func powRatio(base float64, p dimension.Ratio) float64 {
	if p.IsZero() {
		return 1
	}

	if p.Den == 1 {
		return powInt(base, p.Num)
	}

	return math.Pow(base, p.Float())
}

func powInt(base float64, n int64) float64 {
	if n < 0 {
		return 1 / powInt(base, -n)
	}

	r := 1.0

	for ; n > 0; n-- {
		r *= base
	}

	return r
}
