package encode

type EncodeOption func(*encState)

// Indent sets the indent width for pretty output. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeWire emits compact single-line output.
func EncodeWire(v bool) EncodeOption {
	return func(es *encState) { es.wire = v }
}

// EncodeColors colorizes output with the given table.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
