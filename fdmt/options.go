package fdmt

import "github.com/ajroetker/go-highway/hwy/contrib/workerpool"

// config holds per-call transform settings.
type config struct {
	pool *workerpool.Pool
}

// Option mutates a transform config.
type Option func(*config)

// WithPool runs the transform on the given worker pool: head and tail
// sub-bands recurse on separate goroutines near the top of the call tree
// and merge trials are distributed across the pool's workers. A nil pool
// leaves the transform sequential. The pool is borrowed for the duration
// of the call and may be shared between concurrent transforms.
func WithPool(pool *workerpool.Pool) Option {
	return func(cfg *config) {
		cfg.pool = pool
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
