package suffixtree

// Option configures a Tree at construction time. The functional-options
// shape mirrors how this pack's HTTP-router sibling configures its
// router: closures applied in order against a single config value, so new
// knobs can be added without breaking New's signature.
type Option interface {
	apply(*config)
}

type config struct {
	caseInsensitive bool
	observer        Observer
}

func newConfig(opts []Option) config {
	cfg := config{observer: noopObserver{}}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithCaseInsensitive folds the input (and every query pattern) to a
// common case at construction time, per the package's case-folding
// policy.
func WithCaseInsensitive() Option {
	return optionFunc(func(c *config) {
		c.caseInsensitive = true
	})
}

// WithObserver attaches an Observer notified on every node/edge creation
// during construction. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return optionFunc(func(c *config) {
		if o != nil {
			c.observer = o
		}
	})
}
