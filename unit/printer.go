package unit

import (
	"sort"
	"strconv"
	"strings"
)

// Format renders a resolved unit canonically: factors merged per symbol,
// sorted alphabetically, positive exponents first, each negative exponent as
// a /sym term. Parsing the result reproduces the same dimension vector and
// scale. The dimensionless empty expression renders as "".
func Format(r Resolved) string {
	factors := mergeFactors(r.Factors, nil, 1)
	if len(factors) == 0 {
		return ""
	}

	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Symbol < factors[j].Symbol
	})

	var sb strings.Builder

	wrote := false

	for _, f := range factors {
		if f.Exp.Num < 0 {
			continue
		}

		if wrote {
			sb.WriteByte('*')
		}

		sb.WriteString(f.Symbol)
		sb.WriteString(expSuffix(f.Exp.Num, f.Exp.Den))

		wrote = true
	}

	if !wrote {
		sb.WriteByte('1')
	}

	for _, f := range factors {
		if f.Exp.Num >= 0 {
			continue
		}

		sb.WriteByte('/')
		sb.WriteString(f.Symbol)
		sb.WriteString(expSuffix(-f.Exp.Num, f.Exp.Den))
	}

	return sb.String()
}

func (r Resolved) String() string {
	return Format(r)
}

func expSuffix(num, den int64) string {
	if num == 1 && den == 1 {
		return ""
	}

	if den != 1 {
		return "^(" + strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10) + ")"
	}

	return "^" + strconv.FormatInt(num, 10)
}
