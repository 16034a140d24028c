package dimension

import (
	"math"
	"strconv"
)

// Ratio is an exact rational exponent. The zero value means exponent zero;
// non-zero ratios are kept reduced with a positive denominator, so == is
// exact structural equality.
type Ratio struct {
	Num int64
	Den int64
}

func NewRatio(num, den int64) Ratio {
	if num == 0 || den == 0 {
		return Ratio{}
	}

	if den < 0 {
		num = -num
		den = -den
	}

	g := gcd(abs64(num), den)

	return Ratio{Num: num / g, Den: den / g}
}

func (r Ratio) IsZero() bool {
	return r.Num == 0
}

func (r Ratio) IsOne() bool {
	return r.Num == 1 && r.Den == 1
}

func (r Ratio) den() int64 {
	if r.Den == 0 {
		return 1
	}

	return r.Den
}

func (r Ratio) Add(o Ratio) Ratio {
	return NewRatio(r.Num*o.den()+o.Num*r.den(), r.den()*o.den())
}

func (r Ratio) Neg() Ratio {
	return Ratio{Num: -r.Num, Den: r.Den}
}

func (r Ratio) Mul(o Ratio) Ratio {
	return NewRatio(r.Num*o.Num, r.den()*o.den())
}

func (r Ratio) MulInt(n int64) Ratio {
	return NewRatio(r.Num*n, r.den())
}

func (r Ratio) Float() float64 {
	if r.Num == 0 {
		return 0
	}

	return float64(r.Num) / float64(r.Den)
}

func (r Ratio) String() string {
	if r.Num == 0 {
		return "0"
	}

	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}

	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// ApproxRatio snaps a float to the nearest rational with denominator at most
// maxDen. Returns false when no denominator gets close enough, which callers
// treat as a non-representable exponent.
func ApproxRatio(x float64, maxDen int64) (Ratio, bool) {
	const tolerance = 1e-9

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Ratio{}, false
	}

	for den := int64(1); den <= maxDen; den++ {
		num := math.Round(x * float64(den))
		if math.Abs(num) > float64(math.MaxInt32) {
			return Ratio{}, false
		}

		if math.Abs(x-num/float64(den)) <= tolerance {
			return NewRatio(int64(num), den), true
		}
	}

	return Ratio{}, false
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
