package sae

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithMergedPolarity records events of every polarity on a single surface.
func WithMergedPolarity() Option {
	return func(s *Store) {
		s.split = false
	}
}

// WithSplitPolarity keeps one surface per polarity. This is the default.
func WithSplitPolarity(split bool) Option {
	return func(s *Store) {
		s.split = split
	}
}
