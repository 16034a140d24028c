package quantity

import (
	"math"

	"github.com/spf13/cast"

	"github.com/sgostarter/libunits/dimension"
	"github.com/sgostarter/libunits/unit"
)

// WithUnit binds a raw payload to a resolved unit. The raw value is stored in
// its display unit; applying the unit's scale (and offset) yields base units.
// Instances are immutable; arithmetic returns new ones.
type WithUnit[P Payload[P]] struct {
	raw P
	u   unit.Resolved
}

type (
	Value   = WithUnit[Scalar]
	Complex = WithUnit[Cplx]
)

func NewValue(reg *unit.Registry, v float64, formula string) (Value, error) {
	u, err := reg.Parse(formula)
	if err != nil {
		return Value{}, err
	}

	return Value{raw: Scalar(v), u: u}, nil
}

func NewComplex(reg *unit.Registry, v complex128, formula string) (Complex, error) {
	u, err := reg.Parse(formula)
	if err != nil {
		return Complex{}, err
	}

	return Complex{raw: Cplx(v), u: u}, nil
}

func ValueIn(v float64, u unit.Resolved) Value {
	return Value{raw: Scalar(v), u: u}
}

func ComplexIn(v complex128, u unit.Resolved) Complex {
	return Complex{raw: Cplx(v), u: u}
}

func MustValue(reg *unit.Registry, v float64, formula string) Value {
	return ValueIn(v, reg.MustParse(formula))
}

// Wrap coerces a bare number into a dimensionless Value. Coercion of
// arbitrary operands is explicit; nothing in this package treats a plain
// number as a quantity implicitly.
func Wrap(v interface{}) (Value, error) {
	if q, ok := v.(Value); ok {
		return q, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Value{}, err
	}

	return ValueIn(f, unit.Dimensionless()), nil
}

// ToComplex widens a real quantity, keeping its unit tag.
func ToComplex(x Value) Complex {
	return Complex{raw: Cplx(complex(float64(x.raw), 0)), u: x.u}
}

//
//
//

func (x WithUnit[P]) Raw() P {
	return x.raw
}

func (x WithUnit[P]) Unit() unit.Resolved {
	return x.u
}

func (x WithUnit[P]) UnitString() string {
	return x.u.String()
}

func (x WithUnit[P]) BaseDims() dimension.Vector {
	return x.u.Dims
}

func (x WithUnit[P]) IsDimensionless() bool {
	return x.u.IsDimensionless()
}

func (x WithUnit[P]) IsCompatible(o WithUnit[P]) bool {
	return x.u.Dims == o.u.Dims
}

func (x WithUnit[P]) String() string {
	us := x.u.String()
	if us == "" {
		return x.raw.String()
	}

	return x.raw.String() + " " + us
}

// Add converts o into x's unit and adds the raw payloads. Fails when the
// dimension vectors differ. This is the pathway where affine units are
// legal.
func (x WithUnit[P]) Add(o WithUnit[P]) (r WithUnit[P], err error) {
	conv, err := convertRaw(o.raw, o.u, x.u)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: x.raw.Add(conv), u: x.u}

	return
}

func (x WithUnit[P]) Sub(o WithUnit[P]) (r WithUnit[P], err error) {
	conv, err := convertRaw(o.raw, o.u, x.u)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: x.raw.Sub(conv), u: x.u}

	return
}

// Mul combines the unit tags symbolically: 2 m * 3 mm is 6 m*mm, not 0.006
// m^2. Conversion happens on demand via ConvertTo or comparisons.
func (x WithUnit[P]) Mul(o WithUnit[P]) (r WithUnit[P], err error) {
	u, err := x.u.Times(o.u)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: x.raw.Mul(o.raw), u: u}

	return
}

func (x WithUnit[P]) Div(o WithUnit[P]) (r WithUnit[P], err error) {
	u, err := x.u.Over(o.u)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: x.raw.Div(o.raw), u: u}

	return
}

// MulScalar scales the raw payload, keeping the unit tag.
func (x WithUnit[P]) MulScalar(f float64) WithUnit[P] {
	return WithUnit[P]{raw: x.raw.Scale(f), u: x.u}
}

func (x WithUnit[P]) Neg() WithUnit[P] {
	return WithUnit[P]{raw: x.raw.Neg(), u: x.u}
}

// Pow raises the quantity to a power. Dimensioned bases only accept powers
// that snap to a small rational, so the resulting dimension exponents stay
// representable; a plain dimensionless value accepts any float power.
func (x WithUnit[P]) Pow(p float64) (r WithUnit[P], err error) {
	if x.u.IsAffine() {
		err = unit.ErrMalformedExpression

		return
	}

	if x.u.IsDimensionless() && len(x.u.Factors) == 0 {
		r = WithUnit[P]{raw: x.raw.Pow(p), u: x.u}

		return
	}

	ratio, ok := dimension.ApproxRatio(p, unit.MaxExpDenominator)
	if !ok {
		err = unit.ErrIncompatibleExponent

		return
	}

	u, err := x.u.PowRatio(ratio)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: x.raw.Pow(p), u: u}

	return
}

// ConvertTo re-expresses the quantity in the target unit. Fails when the
// dimension vectors differ.
func (x WithUnit[P]) ConvertTo(target unit.Resolved) (r WithUnit[P], err error) {
	conv, err := convertRaw(x.raw, x.u, target)
	if err != nil {
		return
	}

	r = WithUnit[P]{raw: conv, u: target}

	return
}

// InBase re-expresses the quantity in the registry's base units.
func (x WithUnit[P]) InBase(reg *unit.Registry) (WithUnit[P], error) {
	return x.ConvertTo(reg.Base(x.u.Dims))
}

// Equal reports exact equality after converting o into x's unit. Quantities
// of different dimensions are unequal, not an error.
func (x WithUnit[P]) Equal(o WithUnit[P]) bool {
	if x.u.Dims != o.u.Dims {
		return false
	}

	conv, err := convertRaw(o.raw, o.u, x.u)
	if err != nil {
		return false
	}

	return x.raw.Equal(conv)
}

// AllClose converts o into x's unit and delegates tolerance comparison to
// the payload. Dimension mismatch is an error, not a false.
func (x WithUnit[P]) AllClose(o WithUnit[P], options ...ApproxOption) (ok bool, err error) {
	opts := approxOptionNew(options...)

	conv, err := convertRaw(o.raw, o.u, x.u)
	if err != nil {
		return
	}

	ok = x.raw.AllClose(conv, opts.rtol, opts.atol)

	return
}

func (x WithUnit[P]) Copy() WithUnit[P] {
	return WithUnit[P]{raw: x.raw.Copy(), u: x.u}
}

func (x WithUnit[P]) DeepCopy() WithUnit[P] {
	return WithUnit[P]{raw: x.raw.DeepCopy(), u: x.u}
}

//
//
//

// Compare orders two real quantities after converting y into x's unit.
func Compare(x, y Value) (c int, err error) {
	conv, err := convertRaw(y.raw, y.u, x.u)
	if err != nil {
		return
	}

	switch {
	case x.raw < conv:
		c = -1
	case x.raw > conv:
		c = 1
	}

	return
}

// DivMod returns the floored quotient as a bare count and the remainder in
// x's unit. Both operands must share a dimension and be offset-free.
func DivMod(x, y Value) (q float64, rem Value, err error) {
	if x.u.IsAffine() || y.u.IsAffine() {
		err = unit.ErrMalformedExpression

		return
	}

	conv, err := convertRaw(y.raw, y.u, x.u)
	if err != nil {
		return
	}

	q = math.Floor(float64(x.raw) / float64(conv))
	rem = Value{raw: x.raw - Scalar(q)*conv, u: x.u}

	return
}

func FloorDiv(x, y Value) (q float64, err error) {
	q, _, err = DivMod(x, y)

	return
}

func Mod(x, y Value) (rem Value, err error) {
	_, rem, err = DivMod(x, y)

	return
}

// IsOfDimension reports whether a quantity has the given physical shape,
// e.g. IsOfDimension(v, dimension.Speed()).
func IsOfDimension[P Payload[P]](x WithUnit[P], d dimension.Vector) bool {
	return x.u.Dims == d
}

// convertRaw maps raw from unit `from` into unit `to`, applying scale and
// offset.
func convertRaw[P Payload[P]](raw P, from, to unit.Resolved) (r P, err error) {
	conv, err := unit.Div(from, to)
	if err != nil {
		return
	}

	r = raw.Scale(conv.Factor)

	if conv.Offset != 0 {
		r = r.Shift(conv.Offset)
	}

	return
}
