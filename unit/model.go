package unit

import (
	"math"

	"github.com/sgostarter/libunits/dimension"
)

// Definition is a registered unit: its physical dimension and the affine map
// raw*Scale+Offset into base units. Immutable once the registry is built.
type Definition struct {
	Symbol string
	Name   string
	Dims   dimension.Vector
	Scale  float64
	Offset float64
}

func (d Definition) IsAffine() bool {
	return d.Offset != 0
}

// Factor is one symbol^exponent term of a resolved expression, kept for
// canonical rendering.
type Factor struct {
	Symbol string
	Exp    dimension.Ratio
}

// Resolved is a parsed unit expression: dimension vector, scale to base
// units, an additive offset (non-zero only for a bare affine unit), and the
// display factors. Treated as immutable; the Factors slice is never written
// after construction.
type Resolved struct {
	Dims    dimension.Vector
	Scale   float64
	Offset  float64
	Factors []Factor
}

func Dimensionless() Resolved {
	return Resolved{Scale: 1}
}

func (r Resolved) IsAffine() bool {
	return r.Offset != 0
}

func (r Resolved) IsDimensionless() bool {
	return r.Dims.IsZero()
}

// Times combines two resolved units as multiplication. Affine units do not
// compose multiplicatively.
func (r Resolved) Times(o Resolved) (res Resolved, err error) {
	if r.IsAffine() || o.IsAffine() {
		err = ErrMalformedExpression

		return
	}

	res = Resolved{
		Dims:    dimension.Combine(r.Dims, o.Dims, 1),
		Scale:   r.Scale * o.Scale,
		Factors: mergeFactors(r.Factors, o.Factors, 1),
	}

	return
}

func (r Resolved) Over(o Resolved) (res Resolved, err error) {
	if r.IsAffine() || o.IsAffine() {
		err = ErrMalformedExpression

		return
	}

	res = Resolved{
		Dims:    dimension.Combine(r.Dims, o.Dims, -1),
		Scale:   r.Scale / o.Scale,
		Factors: mergeFactors(r.Factors, o.Factors, -1),
	}

	return
}

// PowRatio raises the unit to an exact rational power.
func (r Resolved) PowRatio(p dimension.Ratio) (res Resolved, err error) {
	if r.IsAffine() {
		err = ErrMalformedExpression

		return
	}

	if p.IsZero() {
		res = Dimensionless()

		return
	}

	factors := make([]Factor, 0, len(r.Factors))

	for _, f := range r.Factors {
		e := f.Exp.Mul(p)
		if e.IsZero() {
			continue
		}

		factors = append(factors, Factor{Symbol: f.Symbol, Exp: e})
	}

	res = Resolved{
		Dims:    dimension.Scale(r.Dims, p),
		Scale:   math.Pow(r.Scale, p.Float()),
		Factors: factors,
	}

	return
}

// mergeFactors sums exponents per symbol, dropping zeros. First-appearance
// order is kept; the printer sorts when rendering.
func mergeFactors(a, b []Factor, sign int64) []Factor {
	out := make([]Factor, 0, len(a)+len(b))
	idx := make(map[string]int, len(a)+len(b))

	add := func(sym string, exp dimension.Ratio) {
		if i, ok := idx[sym]; ok {
			out[i].Exp = out[i].Exp.Add(exp)

			return
		}

		idx[sym] = len(out)
		out = append(out, Factor{Symbol: sym, Exp: exp})
	}

	for _, f := range a {
		add(f.Symbol, f.Exp)
	}

	for _, f := range b {
		add(f.Symbol, f.Exp.MulInt(sign))
	}

	compact := out[:0]

	for _, f := range out {
		if !f.Exp.IsZero() {
			compact = append(compact, f)
		}
	}

	return compact
}
