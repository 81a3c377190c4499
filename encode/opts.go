package encode

type EncodeOption func(*EncState)

// EncodeMultiline prefers triple-quoted strings for text containing
// newlines. Off by default: every string escapes onto one line.
func EncodeMultiline(v bool) EncodeOption {
	return func(es *EncState) { es.multiline = v }
}

// EncodeColors colorizes the output for terminal display.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
