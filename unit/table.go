package unit

import "math"

// Table declares the units a registry is built from. Derived entries are
// resolved in order against everything registered before them, so formulas
// may only reference earlier entries. The same shape loads from YAML for
// custom registries.
type Table struct {
	Bases    []BaseUnit    `yaml:"bases"`
	Derived  []DerivedUnit `yaml:"derived"`
	Prefixes []Prefix      `yaml:"prefixes"`
}

type BaseUnit struct {
	Symbol      string `yaml:"symbol"`
	Name        string `yaml:"name"`
	Dimension   string `yaml:"dimension"`
	UsePrefixes bool   `yaml:"use_prefixes"`
}

// DerivedUnit defines symbol = Factor * 10^Exp10 * Formula, plus Offset in
// base units for affine scales. A zero Factor reads as 1 so plain literals
// and YAML documents can omit it.
type DerivedUnit struct {
	Symbol      string  `yaml:"symbol"`
	Name        string  `yaml:"name"`
	Formula     string  `yaml:"formula"`
	Factor      float64 `yaml:"factor"`
	Exp10       int     `yaml:"exp10"`
	Offset      float64 `yaml:"offset"`
	UsePrefixes bool    `yaml:"use_prefixes"`
}

type Prefix struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
	Exp10  int    `yaml:"exp10"`
}

func SIPrefixes() []Prefix {
	return []Prefix{
		{Symbol: "y", Name: "yocto", Exp10: -24},
		{Symbol: "z", Name: "zepto", Exp10: -21},
		{Symbol: "a", Name: "atto", Exp10: -18},
		{Symbol: "f", Name: "femto", Exp10: -15},
		{Symbol: "p", Name: "pico", Exp10: -12},
		{Symbol: "n", Name: "nano", Exp10: -9},
		{Symbol: "u", Name: "micro", Exp10: -6},
		{Symbol: "m", Name: "milli", Exp10: -3},
		{Symbol: "c", Name: "centi", Exp10: -2},
		{Symbol: "d", Name: "deci", Exp10: -1},
		{Symbol: "da", Name: "deka", Exp10: 1},
		{Symbol: "h", Name: "hecto", Exp10: 2},
		{Symbol: "k", Name: "kilo", Exp10: 3},
		{Symbol: "M", Name: "mega", Exp10: 6},
		{Symbol: "G", Name: "giga", Exp10: 9},
		{Symbol: "T", Name: "tera", Exp10: 12},
		{Symbol: "P", Name: "peta", Exp10: 15},
		{Symbol: "E", Name: "exa", Exp10: 18},
		{Symbol: "Z", Name: "zetta", Exp10: 21},
		{Symbol: "Y", Name: "yotta", Exp10: 24},
	}
}

// BuiltinTable is the default SI-plus-common-units table. kg is the mass
// base unit; the registry handles the gram special case when applying
// prefixes.
func BuiltinTable() Table {
	return Table{
		Bases: []BaseUnit{
			{Symbol: "m", Name: "meter", Dimension: "length", UsePrefixes: true},
			{Symbol: "kg", Name: "kilogram", Dimension: "mass", UsePrefixes: true},
			{Symbol: "s", Name: "second", Dimension: "time", UsePrefixes: true},
			{Symbol: "A", Name: "ampere", Dimension: "current", UsePrefixes: true},
			{Symbol: "K", Name: "kelvin", Dimension: "temperature", UsePrefixes: true},
			{Symbol: "mol", Name: "mole", Dimension: "amount", UsePrefixes: true},
			{Symbol: "cd", Name: "candela", Dimension: "luminosity", UsePrefixes: true},
			{Symbol: "rad", Name: "radian", Dimension: "angle", UsePrefixes: true},
		},
		Derived: []DerivedUnit{
			{Symbol: "Hz", Name: "hertz", Formula: "1/s", UsePrefixes: true},
			{Symbol: "N", Name: "newton", Formula: "kg*m/s^2", UsePrefixes: true},
			{Symbol: "Pa", Name: "pascal", Formula: "N/m^2", UsePrefixes: true},
			{Symbol: "J", Name: "joule", Formula: "N*m", UsePrefixes: true},
			{Symbol: "W", Name: "watt", Formula: "J/s", UsePrefixes: true},
			{Symbol: "C", Name: "coulomb", Formula: "A*s", UsePrefixes: true},
			{Symbol: "V", Name: "volt", Formula: "W/A", UsePrefixes: true},
			{Symbol: "F", Name: "farad", Formula: "C/V", UsePrefixes: true},
			{Symbol: "ohm", Name: "Ohm", Formula: "V/A", UsePrefixes: true},
			{Symbol: "S", Name: "siemens", Formula: "A/V", UsePrefixes: true},
			{Symbol: "Wb", Name: "weber", Formula: "V*s", UsePrefixes: true},
			{Symbol: "T", Name: "tesla", Formula: "Wb/m^2", UsePrefixes: true},
			{Symbol: "H", Name: "henry", Formula: "Wb/A", UsePrefixes: true},
			{Symbol: "sr", Name: "steradian", Formula: "rad^2"},
			{Symbol: "lm", Name: "lumen", Formula: "cd*sr", UsePrefixes: true},
			{Symbol: "lx", Name: "lux", Formula: "lm/m^2", UsePrefixes: true},
			{Symbol: "l", Name: "liter", Formula: "m^3", Exp10: -3, UsePrefixes: true},
			{Symbol: "eV", Name: "electronvolt", Formula: "J", Factor: 1.602176634e-19, UsePrefixes: true},

			{Symbol: "cyc", Name: "cycle", Formula: "rad", Factor: 2 * math.Pi},
			{Symbol: "deg", Name: "degree", Formula: "rad", Factor: math.Pi / 180},
			{Symbol: "%", Name: "percent", Formula: "", Exp10: -2},
			{Symbol: "min", Name: "minute", Formula: "s", Factor: 60},
			{Symbol: "h", Name: "hour", Formula: "s", Factor: 3600},
			{Symbol: "d", Name: "day", Formula: "s", Factor: 86400},
			{Symbol: "t", Name: "tonne", Formula: "kg", Exp10: 3},
			{Symbol: "in", Name: "inch", Formula: "m", Factor: 0.0254},
			{Symbol: "ft", Name: "foot", Formula: "m", Factor: 0.3048},
			{Symbol: "yd", Name: "yard", Formula: "m", Factor: 0.9144},
			{Symbol: "mi", Name: "mile", Formula: "m", Factor: 1609.344},
			{Symbol: "nmi", Name: "nauticalMile", Formula: "m", Factor: 1852},
			{Symbol: "bar", Formula: "Pa", Exp10: 5},
			{Symbol: "atm", Name: "atmosphere", Formula: "Pa", Factor: 101325},
			{Symbol: "cal", Name: "calorie", Formula: "J", Factor: 4.184},
			{Symbol: "lb", Name: "pound", Formula: "kg", Factor: 0.45359237},
			{Symbol: "oz", Name: "ounce", Formula: "kg", Factor: 0.028349523125},
			{Symbol: "gauss", Formula: "T", Exp10: -4},

			{Symbol: "degC", Name: "celsius", Formula: "K", Offset: 273.15},
			{Symbol: "degF", Name: "fahrenheit", Formula: "K", Factor: 5.0 / 9.0, Offset: 255.37222222222223},
		},
		Prefixes: SIPrefixes(),
	}
}
