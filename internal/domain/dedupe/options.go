package dedupe

// Option applies a configuration option to the address set.
type Option func(*addressSet)

// WithMaxSize bounds the number of remembered addresses.
// If maxSize <= 0 the set is unbounded.
func WithMaxSize(maxSize int) Option {
	return func(d *addressSet) {
		d.maxSize = maxSize
	}
}
