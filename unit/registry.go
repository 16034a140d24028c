package unit

import (
	"fmt"
	"math"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libunits/dimension"
)

// Registry is the single source of truth mapping unit symbols to their
// definitions. It is sealed once NewRegistry returns, so concurrent lookups
// and parses need no locking.
type Registry struct {
	logger l.Wrapper

	defs        map[string]Definition
	baseSymbols map[dimension.Base]string

	formulaCache *cache.Cache
}

func NewRegistry(table Table, opts ...Option) (reg *Registry, err error) {
	o := optionNew(opts...)

	reg = &Registry{
		logger:      o.logger.WithFields(l.StringField(l.ClsKey, "unitRegistry")),
		defs:        make(map[string]Definition),
		baseSymbols: make(map[dimension.Base]string),
	}

	if !o.noFormulaCache {
		reg.formulaCache = cache.New(cache.NoExpiration, 0)
	}

	for _, b := range table.Bases {
		err = reg.addBaseUnit(b, table.Prefixes)
		if err != nil {
			return nil, err
		}
	}

	for _, d := range table.Derived {
		err = reg.addDerivedUnit(d, table.Prefixes)
		if err != nil {
			return nil, err
		}
	}

	reg.logger.WithFields(l.IntField("units", len(reg.defs))).Debug("registry built")

	return
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry built from BuiltinTable. It is
// constructed once and read-only afterwards.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := NewRegistry(BuiltinTable())
		if err != nil {
			panic("libunits: builtin unit table is invalid: " + err.Error())
		}

		defaultRegistry = reg
	})

	return defaultRegistry
}

func (reg *Registry) Lookup(symbol string) (def Definition, err error) {
	def, ok := reg.defs[symbol]
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)

		return
	}

	return
}

// Parse resolves a unit formula against the registry. Results are cached per
// formula string; Resolved values are immutable so sharing them is safe.
func (reg *Registry) Parse(formula string) (r Resolved, err error) {
	if reg.formulaCache != nil {
		if v, ok := reg.formulaCache.Get(formula); ok {
			// nolint:forcetypeassert
			return v.(Resolved), nil
		}
	}

	r, err = reg.parseFormula(formula)
	if err != nil {
		return
	}

	if reg.formulaCache != nil {
		reg.formulaCache.Set(formula, r, cache.NoExpiration)
	}

	return
}

func (reg *Registry) MustParse(formula string) Resolved {
	r, err := reg.Parse(formula)
	if err != nil {
		panic("libunits: " + err.Error())
	}

	return r
}

// Base returns the resolved base-unit expression for a dimension vector,
// rendered with this registry's base symbols.
func (reg *Registry) Base(dims dimension.Vector) Resolved {
	r := Dimensionless()
	r.Dims = dims

	for b, sym := range reg.baseSymbols {
		e := dims.Exp(b)
		if e.IsZero() {
			continue
		}

		r.Factors = append(r.Factors, Factor{Symbol: sym, Exp: e})
	}

	return r
}

func (reg *Registry) Count() int {
	return len(reg.defs)
}

//
//
//

func (reg *Registry) addBaseUnit(b BaseUnit, prefixes []Prefix) (err error) {
	dim, ok := dimension.BaseFromName(b.Dimension)
	if !ok {
		err = cuserror.NewWithErrorMsg("unknown base dimension: " + b.Dimension)

		return
	}

	err = reg.addDefinition(Definition{
		Symbol: b.Symbol,
		Name:   b.Name,
		Dims:   dimension.New(dim),
		Scale:  1,
	}, true)
	if err != nil {
		return
	}

	if _, taken := reg.baseSymbols[dim]; !taken {
		reg.baseSymbols[dim] = b.Symbol
	}

	symbol := b.Symbol
	name := b.Name
	skipPrefix := ""

	// The mass base unit is kg; prefixes attach to the gram, which is
	// registered here scaled down, and "kg" itself stays the base symbol.
	if b.Symbol == "kg" {
		symbol = "g"
		name = "gram"
		skipPrefix = "k"

		err = reg.addDefinition(Definition{
			Symbol: "g",
			Name:   "gram",
			Dims:   dimension.New(dim),
			Scale:  1e-3,
		}, true)
		if err != nil {
			return
		}
	}

	if !b.UsePrefixes {
		return
	}

	base := reg.defs[symbol]

	for _, pre := range prefixes {
		if pre.Symbol == skipPrefix {
			continue
		}

		reg.addPrefixed(pre, symbol, name, base)
	}

	return
}

func (reg *Registry) addDerivedUnit(d DerivedUnit, prefixes []Prefix) (err error) {
	parent, err := reg.parseFormula(d.Formula)
	if err != nil {
		return
	}

	if parent.IsAffine() {
		err = ErrMalformedExpression

		return
	}

	factor := d.Factor
	if factor == 0 {
		factor = 1
	}

	def := Definition{
		Symbol: d.Symbol,
		Name:   d.Name,
		Dims:   parent.Dims,
		Scale:  factor * math.Pow(10, float64(d.Exp10)) * parent.Scale,
		Offset: d.Offset,
	}

	err = reg.addDefinition(def, true)
	if err != nil {
		return
	}

	if !d.UsePrefixes {
		return
	}

	for _, pre := range prefixes {
		reg.addPrefixed(pre, d.Symbol, d.Name, def)
	}

	return
}

// addPrefixed registers one prefixed variant, skipping symbols already
// taken. Collisions between generated names and explicit entries resolve in
// favor of whatever was registered first.
func (reg *Registry) addPrefixed(pre Prefix, symbol, name string, base Definition) {
	def := Definition{
		Symbol: pre.Symbol + symbol,
		Dims:   base.Dims,
		Scale:  base.Scale * math.Pow(10, float64(pre.Exp10)),
	}

	if name != "" {
		def.Name = pre.Name + name
	}

	if err := reg.addDefinition(def, false); err != nil {
		reg.logger.WithFields(l.StringField("symbol", def.Symbol)).Debug("prefixed symbol already taken, skipped")
	}
}

// addDefinition registers the definition under its symbol and, when present
// and distinct, its long name. strict reports duplicates as errors.
func (reg *Registry) addDefinition(def Definition, strict bool) (err error) {
	keys := []string{def.Symbol}
	if def.Name != "" && def.Name != def.Symbol {
		keys = append(keys, def.Name)
	}

	for _, key := range keys {
		if _, exists := reg.defs[key]; exists {
			if strict {
				reg.logger.WithFields(l.StringField("symbol", key)).Error("duplicate unit symbol")

				err = commerr.ErrAlreadyExists

				return
			}

			continue
		}

		reg.defs[key] = def
	}

	return
}
