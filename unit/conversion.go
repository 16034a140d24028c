package unit

// Conversion maps a raw value between two dimension-compatible units:
// target = raw*Factor + Offset.
type Conversion struct {
	Factor float64
	Offset float64
}

// Div builds the conversion taking a value tagged with unit a into unit b.
// Fails when the dimension vectors differ.
func Div(a, b Resolved) (c Conversion, err error) {
	if a.Dims != b.Dims {
		err = NewMismatchError(a, b)

		return
	}

	c.Factor = a.Scale / b.Scale
	c.Offset = (a.Offset - b.Offset) / b.Scale

	return
}

// ToFloat collapses a purely multiplicative conversion into a single factor.
// A conversion with an offset component cannot be represented this way.
func (c Conversion) ToFloat() (f float64, err error) {
	if c.Offset != 0 {
		err = ErrOffsetConversion

		return
	}

	f = c.Factor

	return
}

func (c Conversion) Apply(v float64) float64 {
	return v*c.Factor + c.Offset
}
