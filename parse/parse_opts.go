package parse

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of the parsed document. The default
// is 64.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
