package HashSet

import "go.uber.org/zap"

type config struct {
	log *zap.Logger
}

type Option func(*config)

// WithLogger makes the set report every rehash at debug level on l.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
