package dimension

// Base indexes one of the fixed physical base dimensions. The set is closed;
// every unit's dimension is a rational exponent vector over these.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle

	baseCount
)

var baseNames = map[Base]string{
	Length:      "length",
	Mass:        "mass",
	Time:        "time",
	Current:     "current",
	Temperature: "temperature",
	Amount:      "amount",
	Luminosity:  "luminosity",
	Angle:       "angle",
}

func (b Base) String() string {
	return baseNames[b]
}

func BaseFromName(name string) (Base, bool) {
	for b, n := range baseNames {
		if n == name {
			return b, true
		}
	}

	return 0, false
}

// Vector is an exponent vector over the base dimensions. The zero value is
// dimensionless. Vectors are value types and compare exactly with ==.
type Vector [baseCount]Ratio

func New(b Base) Vector {
	var v Vector

	v[b] = NewRatio(1, 1)

	return v
}

// Combine returns a vector with each exponent a[i] + sign*b[i]. sign is +1
// for unit multiplication and -1 for division.
func Combine(a, b Vector, sign int) Vector {
	var r Vector

	for i := range a {
		r[i] = a[i].Add(b[i].MulInt(int64(sign)))
	}

	return r
}

// Scale multiplies every exponent by power, modeling unit exponentiation.
func Scale(a Vector, power Ratio) Vector {
	var r Vector

	for i := range a {
		r[i] = a[i].Mul(power)
	}

	return r
}

func (v Vector) IsZero() bool {
	return v == Vector{}
}

func (v Vector) Exp(b Base) Ratio {
	return v[b]
}

// Pow is Scale as a method, convenient for building composed vectors.
func (v Vector) Pow(num, den int64) Vector {
	return Scale(v, NewRatio(num, den))
}

func (v Vector) MulV(o Vector) Vector {
	return Combine(v, o, 1)
}

func (v Vector) DivV(o Vector) Vector {
	return Combine(v, o, -1)
}

func (v Vector) String() string {
	if v.IsZero() {
		return "1"
	}

	s := ""

	for b := Base(0); b < baseCount; b++ {
		if v[b].IsZero() {
			continue
		}

		if s != "" {
			s += "*"
		}

		s += baseNames[b]

		if !v[b].IsOne() {
			s += "^" + v[b].String()
		}
	}

	return s
}

//
//
//

// Common composed dimensions, used by callers validating that a quantity has
// an expected physical shape.

func Dimensionless() Vector { return Vector{} }

func Speed() Vector        { return New(Length).DivV(New(Time)) }
func Acceleration() Vector { return Speed().DivV(New(Time)) }
func Frequency() Vector    { return New(Time).Pow(-1, 1) }
func Area() Vector         { return New(Length).Pow(2, 1) }
func Volume() Vector       { return New(Length).Pow(3, 1) }
func Force() Vector        { return New(Mass).MulV(Acceleration()) }
func Pressure() Vector     { return Force().DivV(Area()) }
func Energy() Vector       { return Force().MulV(New(Length)) }
func Power() Vector        { return Energy().DivV(New(Time)) }
func Charge() Vector       { return New(Current).MulV(New(Time)) }
func Voltage() Vector      { return Power().DivV(New(Current)) }
func Resistance() Vector   { return Voltage().DivV(New(Current)) }
func Capacitance() Vector  { return Charge().DivV(Voltage()) }
func MagneticFlux() Vector { return Voltage().MulV(New(Time)) }
func SolidAngle() Vector   { return New(Angle).Pow(2, 1) }
