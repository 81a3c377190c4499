package parse

type parseOpts struct {
	positions bool
	maxDepth  int
}

type ParseOption func(*parseOpts)

// ParsePositions controls whether nodes are stamped with source positions.
// It defaults to true; reading a tree without positions loses declaration
// order.
func ParsePositions(v bool) ParseOption {
	return func(o *parseOpts) { o.positions = v }
}

// ParseMaxDepth bounds value nesting (arrays and inline tables). It
// defaults to 512.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
