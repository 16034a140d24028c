package unit

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"

	"github.com/sgostarter/libunits/dimension"
)

func TestLookup(t *testing.T) {
	reg := Default()

	def, err := reg.Lookup("m")
	assert.Nil(t, err)
	assert.EqualValues(t, "m", def.Symbol)
	assert.EqualValues(t, 1, def.Scale)
	assert.EqualValues(t, dimension.New(dimension.Length), def.Dims)

	alias, err := reg.Lookup("meter")
	assert.Nil(t, err)
	assert.EqualValues(t, def, alias)

	_, err = reg.Lookup("xyzzy")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestPrefixes(t *testing.T) {
	reg := Default()

	km, err := reg.Lookup("km")
	assert.Nil(t, err)
	assert.EqualValues(t, 1000, km.Scale)

	us, err := reg.Lookup("us")
	assert.Nil(t, err)
	assert.InEpsilon(t, 1e-6, us.Scale, 1e-12)

	micro, err := reg.Lookup("microsecond")
	assert.Nil(t, err)
	assert.EqualValues(t, us, micro)

	mhz, err := reg.Lookup("MHz")
	assert.Nil(t, err)
	assert.InEpsilon(t, 1e6, mhz.Scale, 1e-12)
}

func TestGramSpecialCase(t *testing.T) {
	reg := Default()

	kg, err := reg.Lookup("kg")
	assert.Nil(t, err)
	assert.EqualValues(t, 1, kg.Scale)

	g, err := reg.Lookup("g")
	assert.Nil(t, err)
	assert.InEpsilon(t, 1e-3, g.Scale, 1e-12)

	mg, err := reg.Lookup("Mg")
	assert.Nil(t, err)
	assert.EqualValues(t, 1000, mg.Scale)

	milligram, err := reg.Lookup("milligram")
	assert.Nil(t, err)
	assert.InEpsilon(t, 1e-6, milligram.Scale, 1e-12)
}

func TestExplicitSymbolsSurvivePrefixing(t *testing.T) {
	reg := Default()

	// Explicit entries that look like prefixed symbols keep their own
	// meaning.
	min, err := reg.Lookup("min")
	assert.Nil(t, err)
	assert.EqualValues(t, 60, min.Scale)
	assert.EqualValues(t, dimension.New(dimension.Time), min.Dims)

	h, err := reg.Lookup("h")
	assert.Nil(t, err)
	assert.EqualValues(t, 3600, h.Scale)

	tesla, err := reg.Lookup("T")
	assert.Nil(t, err)
	assert.EqualValues(t, dimension.MagneticFlux().DivV(dimension.Area()), tesla.Dims)
}

func TestRegistryBase(t *testing.T) {
	reg := Default()

	r := reg.Base(dimension.Force())
	assert.EqualValues(t, dimension.Force(), r.Dims)
	assert.EqualValues(t, 1, r.Scale)
	assert.EqualValues(t, "kg*m/s^2", r.String())
}

func TestCustomTable(t *testing.T) {
	table := Table{
		Bases: []BaseUnit{
			{Symbol: "pc", Name: "parsec", Dimension: "length", UsePrefixes: true},
		},
		Derived: []DerivedUnit{
			{Symbol: "ly", Name: "lightyear", Formula: "pc", Factor: 0.30660139},
		},
		Prefixes: SIPrefixes(),
	}

	reg, err := NewRegistry(table)
	assert.Nil(t, err)

	r, err := reg.Parse("kpc/ly")
	assert.Nil(t, err)
	assert.True(t, r.IsDimensionless())
	assert.InEpsilon(t, 1000/0.30660139, r.Scale, 1e-9)
}

func TestDuplicateSymbol(t *testing.T) {
	table := Table{
		Bases: []BaseUnit{
			{Symbol: "m", Name: "meter", Dimension: "length"},
			{Symbol: "m", Name: "metre", Dimension: "length"},
		},
	}

	_, err := NewRegistry(table)
	assert.ErrorIs(t, err, commerr.ErrAlreadyExists)
}

func TestBadDimensionName(t *testing.T) {
	table := Table{
		Bases: []BaseUnit{
			{Symbol: "q", Name: "quux", Dimension: "charm"},
		},
	}

	_, err := NewRegistry(table)
	assert.NotNil(t, err)
}

func TestFormulaCache(t *testing.T) {
	reg, err := NewRegistry(BuiltinTable())
	assert.Nil(t, err)

	a, err := reg.Parse("kg*m/s^2")
	assert.Nil(t, err)

	b, err := reg.Parse("kg*m/s^2")
	assert.Nil(t, err)
	assert.EqualValues(t, a, b)

	noCache, err := NewRegistry(BuiltinTable(), WithoutFormulaCacheOption())
	assert.Nil(t, err)

	c, err := noCache.Parse("kg*m/s^2")
	assert.Nil(t, err)
	assert.EqualValues(t, a.Dims, c.Dims)
}

func TestTableFromYAML(t *testing.T) {
	doc := []byte(`
bases:
  - symbol: bit
    name: bit
    dimension: amount
derived:
  - symbol: B
    name: byte
    formula: bit
    factor: 8
    use_prefixes: true
prefixes:
  - symbol: k
    name: kilo
    exp10: 3
`)

	table, err := TableFromYAML(doc)
	assert.Nil(t, err)
	assert.Len(t, table.Bases, 1)
	assert.Len(t, table.Derived, 1)

	reg, err := NewRegistry(table)
	assert.Nil(t, err)

	r, err := reg.Parse("kB/bit")
	assert.Nil(t, err)
	assert.True(t, r.IsDimensionless())
	assert.InEpsilon(t, 8000, r.Scale, 1e-12)

	out, err := table.ToYAML()
	assert.Nil(t, err)

	table2, err := TableFromYAML(out)
	assert.Nil(t, err)
	assert.EqualValues(t, table, table2)
}
