package quantity

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Payload is what the unit layer needs from a raw numeric value: elementwise
// arithmetic, affine rescaling, approximate equality, and copy semantics.
// The unit layer implements no numerics of its own.
type Payload[P any] interface {
	Add(P) P
	Sub(P) P
	Mul(P) P
	Div(P) P
	Scale(float64) P
	Shift(float64) P
	Neg() P
	Pow(float64) P
	Equal(P) bool
	AllClose(o P, rtol, atol float64) bool
	Copy() P
	DeepCopy() P
	String() string
}

//
//
//

type Scalar float64

func (s Scalar) Add(o Scalar) Scalar     { return s + o }
func (s Scalar) Sub(o Scalar) Scalar     { return s - o }
func (s Scalar) Mul(o Scalar) Scalar     { return s * o }
func (s Scalar) Div(o Scalar) Scalar     { return s / o }
func (s Scalar) Scale(f float64) Scalar  { return s * Scalar(f) }
func (s Scalar) Shift(f float64) Scalar  { return s + Scalar(f) }
func (s Scalar) Neg() Scalar             { return -s }
func (s Scalar) Pow(p float64) Scalar    { return Scalar(math.Pow(float64(s), p)) }
func (s Scalar) Equal(o Scalar) bool     { return s == o }
func (s Scalar) Copy() Scalar            { return s }
func (s Scalar) DeepCopy() Scalar        { return s }

func (s Scalar) AllClose(o Scalar, rtol, atol float64) bool {
	return floatsClose(float64(s), float64(o), rtol, atol)
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

//
//
//

type Cplx complex128

func (c Cplx) Add(o Cplx) Cplx       { return c + o }
func (c Cplx) Sub(o Cplx) Cplx       { return c - o }
func (c Cplx) Mul(o Cplx) Cplx       { return c * o }
func (c Cplx) Div(o Cplx) Cplx       { return c / o }
func (c Cplx) Scale(f float64) Cplx  { return c * Cplx(complex(f, 0)) }
func (c Cplx) Shift(f float64) Cplx  { return c + Cplx(complex(f, 0)) }
func (c Cplx) Neg() Cplx             { return -c }
func (c Cplx) Equal(o Cplx) bool     { return c == o }
func (c Cplx) Copy() Cplx            { return c }
func (c Cplx) DeepCopy() Cplx        { return c }

func (c Cplx) Pow(p float64) Cplx {
	return Cplx(cmplx.Pow(complex128(c), complex(p, 0)))
}

func (c Cplx) AllClose(o Cplx, rtol, atol float64) bool {
	return cmplx.Abs(complex128(c-o)) <= atol+rtol*cmplx.Abs(complex128(o))
}

func (c Cplx) String() string {
	return fmt.Sprintf("%v", complex128(c))
}

//
//
//

// Array is a 1-D float64 payload. The backing slice is shared by shallow
// copies; elementwise operations require equal lengths and panic otherwise,
// matching slice-bounds behavior (broadcasting is out of scope).
type Array struct {
	data []float64
}

func ArrayOf(data []float64) Array {
	return Array{data: data}
}

func (a Array) Data() []float64 { return a.data }
func (a Array) Len() int        { return len(a.data) }
func (a Array) Shape() []int    { return []int{len(a.data)} }
func (a Array) NDim() int       { return 1 }
func (a Array) DType() string   { return "float64" }

func (a Array) Add(o Array) Array { return a.zip(o, func(x, y float64) float64 { return x + y }) }
func (a Array) Sub(o Array) Array { return a.zip(o, func(x, y float64) float64 { return x - y }) }
func (a Array) Mul(o Array) Array { return a.zip(o, func(x, y float64) float64 { return x * y }) }
func (a Array) Div(o Array) Array { return a.zip(o, func(x, y float64) float64 { return x / y }) }

func (a Array) Scale(f float64) Array {
	return a.apply(func(x float64) float64 { return x * f })
}

func (a Array) Shift(f float64) Array {
	return a.apply(func(x float64) float64 { return x + f })
}

func (a Array) Neg() Array {
	return a.apply(func(x float64) float64 { return -x })
}

func (a Array) Pow(p float64) Array {
	return a.apply(func(x float64) float64 { return math.Pow(x, p) })
}

func (a Array) Equal(o Array) bool {
	if len(a.data) != len(o.data) {
		return false
	}

	for i, v := range a.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

func (a Array) AllClose(o Array, rtol, atol float64) bool {
	if len(a.data) != len(o.data) {
		return false
	}

	for i, v := range a.data {
		if !floatsClose(v, o.data[i], rtol, atol) {
			return false
		}
	}

	return true
}

func (a Array) Copy() Array {
	return Array{data: a.data}
}

func (a Array) DeepCopy() Array {
	d := make([]float64, len(a.data))
	copy(d, a.data)

	return Array{data: d}
}

func (a Array) String() string {
	return fmt.Sprintf("%v", a.data)
}

func (a Array) zip(o Array, fn func(x, y float64) float64) Array {
	if len(a.data) != len(o.data) {
		panic("libunits: array length mismatch")
	}

	d := make([]float64, len(a.data))

	for i, v := range a.data {
		d[i] = fn(v, o.data[i])
	}

	return Array{data: d}
}

func (a Array) apply(fn func(x float64) float64) Array {
	d := make([]float64, len(a.data))

	for i, v := range a.data {
		d[i] = fn(v)
	}

	return Array{data: d}
}

func floatsClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
