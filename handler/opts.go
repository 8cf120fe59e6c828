package handler

// Option adjusts serialization.
type Option func(*Opts)

// Opts is the resolved option set a serializer works from.
type Opts struct {
	// Indent overrides the per-format default indent string when non-empty.
	Indent string
	// MaxDepth bounds recursion on serialization; 0 uses DefaultMaxDepth.
	MaxDepth int
	// Colors enables colorized output when non-nil.
	Colors *Colors
}

// DefaultMaxDepth bounds tree recursion when callers do not choose a limit.
const DefaultMaxDepth = 512

func WithIndent(indent string) Option {
	return func(o *Opts) { o.Indent = indent }
}

func WithMaxDepth(n int) Option {
	return func(o *Opts) { o.MaxDepth = n }
}

func WithColors(c *Colors) Option {
	return func(o *Opts) { o.Colors = c }
}

// BuildOpts folds options into a resolved Opts.
func BuildOpts(opts ...Option) *Opts {
	o := &Opts{MaxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
