package collect

import "github.com/hasbyte1/go-arrayx/arr"

// Option configures a single call to an operation that takes callbacks or
// randomness.
type Option func(*options)

type options struct {
	context any
	rand    arr.Rand
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithContext binds ctx as [Visit.Context] for every callback invocation.
// Without it, Context is nil.
func WithContext(ctx any) Option {
	return func(o *options) { o.context = ctx }
}

// WithRand makes [Shuffle] draw from r instead of the global math/rand/v2
// source. A *rand.Rand over random.NewChaCha gives reproducible shuffles.
func WithRand(r arr.Rand) Option {
	return func(o *options) { o.rand = r }
}
