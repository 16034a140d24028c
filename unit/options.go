package unit

import (
	"github.com/sgostarter/i/l"
)

type Options struct {
	logger         l.Wrapper
	noFormulaCache bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		logger: l.NewNopLoggerWrapper(),
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithLoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithoutFormulaCacheOption() Option {
	return func(o *Options) {
		o.noFormulaCache = true
	}
}
