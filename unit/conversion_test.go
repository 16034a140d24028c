package unit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionDiv(t *testing.T) {
	reg := Default()

	c, err := Div(reg.MustParse("km"), reg.MustParse("m"))
	assert.Nil(t, err)
	assert.EqualValues(t, 1000, c.Factor)
	assert.EqualValues(t, 0, c.Offset)
	assert.EqualValues(t, 2000, c.Apply(2))

	f, err := c.ToFloat()
	assert.Nil(t, err)
	assert.EqualValues(t, 1000, f)
}

func TestConversionMismatch(t *testing.T) {
	reg := Default()

	_, err := Div(reg.MustParse("m"), reg.MustParse("s"))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	var me *MismatchError

	assert.True(t, errors.As(err, &me))
	assert.EqualValues(t, "m", me.Left)
	assert.EqualValues(t, "s", me.Right)
}

func TestConversionAffine(t *testing.T) {
	reg := Default()

	c, err := Div(reg.MustParse("degC"), reg.MustParse("K"))
	assert.Nil(t, err)
	assert.EqualValues(t, 1, c.Factor)
	assert.EqualValues(t, 273.15, c.Offset)
	assert.InDelta(t, 373.15, c.Apply(100), 1e-9)

	_, err = c.ToFloat()
	assert.ErrorIs(t, err, ErrOffsetConversion)

	c, err = Div(reg.MustParse("degC"), reg.MustParse("degF"))
	assert.Nil(t, err)
	assert.InDelta(t, 212, c.Apply(100), 1e-9)
	assert.InDelta(t, 32, c.Apply(0), 1e-9)

	c, err = Div(reg.MustParse("K"), reg.MustParse("degC"))
	assert.Nil(t, err)
	assert.InDelta(t, 26.85, c.Apply(300), 1e-9)
}

func TestConversionChain(t *testing.T) {
	reg := Default()

	units := []string{"m", "in", "km", "ft", "mi", "yd", "nmi", "cm"}

	for _, a := range units {
		for _, b := range units {
			for _, c := range units {
				ab, err := Div(reg.MustParse(a), reg.MustParse(b))
				assert.Nil(t, err)

				bc, err := Div(reg.MustParse(b), reg.MustParse(c))
				assert.Nil(t, err)

				ac, err := Div(reg.MustParse(a), reg.MustParse(c))
				assert.Nil(t, err)

				assert.InEpsilon(t, ac.Factor, ab.Factor*bc.Factor, 1e-12)
			}
		}
	}
}
