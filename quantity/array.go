package quantity

import (
	"github.com/sgostarter/i/commerr"

	"github.com/sgostarter/libunits/unit"
)

// ValueArray is an array payload with a unit tag. Arithmetic and conversion
// come from the embedded WithUnit; element access and the unit-checked
// indexed assignment live here. Concurrent writers to the same instance must
// serialize; everything else is read-only.
type ValueArray struct {
	WithUnit[Array]
}

func NewArray(reg *unit.Registry, data []float64, formula string) (ValueArray, error) {
	u, err := reg.Parse(formula)
	if err != nil {
		return ValueArray{}, err
	}

	return ArrayIn(data, u), nil
}

func ArrayIn(data []float64, u unit.Resolved) ValueArray {
	return ValueArray{WithUnit[Array]{raw: ArrayOf(data), u: u}}
}

// AsArray rewraps the result of embedded arithmetic, e.g.
// AsArray(a.MulScalar(2)).
func AsArray(x WithUnit[Array]) ValueArray {
	return ValueArray{x}
}

func (a ValueArray) Len() int      { return a.raw.Len() }
func (a ValueArray) Shape() []int  { return a.raw.Shape() }
func (a ValueArray) NDim() int     { return a.raw.NDim() }
func (a ValueArray) DType() string { return a.raw.DType() }

// At returns the i-th element as a scalar quantity sharing the array's unit
// tag.
func (a ValueArray) At(i int) (v Value, err error) {
	if i < 0 || i >= a.raw.Len() {
		err = commerr.ErrOutOfRange

		return
	}

	v = Value{raw: Scalar(a.raw.data[i]), u: a.u}

	return
}

// SetItem assigns into slot i with a unit check on every call. A bare number
// coerces to a dimensionless quantity first; the value's raw payload is
// rescaled into the array's unit before the write, and nothing is written on
// any failure.
func (a ValueArray) SetItem(i int, value interface{}) (err error) {
	if i < 0 || i >= a.raw.Len() {
		err = commerr.ErrOutOfRange

		return
	}

	v, err := Wrap(value)
	if err != nil {
		return
	}

	conv, err := unit.Div(v.u, a.u)
	if err != nil {
		return
	}

	f, err := conv.ToFloat()
	if err != nil {
		return
	}

	a.raw.data[i] = float64(v.raw) * f

	return
}

func (a ValueArray) Copy() ValueArray {
	return ValueArray{a.WithUnit.Copy()}
}

func (a ValueArray) DeepCopy() ValueArray {
	return ValueArray{a.WithUnit.DeepCopy()}
}

// Iter walks the elements as scalar quantities. The iterator is restartable:
// Reset rewinds it, and a fresh Iter starts over; it never consumes the
// array.
func (a ValueArray) Iter() *ArrayIterator {
	return &ArrayIterator{a: a}
}

type ArrayIterator struct {
	a   ValueArray
	idx int
}

func (it *ArrayIterator) Next() (v Value, ok bool) {
	if it.idx >= it.a.raw.Len() {
		return
	}

	v = Value{raw: Scalar(it.a.raw.data[it.idx]), u: it.a.u}
	it.idx++
	ok = true

	return
}

func (it *ArrayIterator) Reset() {
	it.idx = 0
}
