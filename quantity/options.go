package quantity

type ApproxOptions struct {
	rtol float64
	atol float64
}

type ApproxOption func(o *ApproxOptions)

func approxOptionNew(option ...ApproxOption) *ApproxOptions {
	opts := &ApproxOptions{
		rtol: 1e-5,
		atol: 1e-8,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func RelToleranceOption(rtol float64) ApproxOption {
	return func(o *ApproxOptions) {
		o.rtol = rtol
	}
}

func AbsToleranceOption(atol float64) ApproxOption {
	return func(o *ApproxOptions) {
		o.atol = atol
	}
}
