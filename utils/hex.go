package utils

// HexCase selects the character table used when rendering bytes as hex.
type HexCase int

const (
	HexLower HexCase = iota
	HexUpper
)

const (
	hexCharsLower = "0123456789abcdef"
	hexCharsUpper = "0123456789ABCDEF"
)

func hexTable(c HexCase) string {
	if c == HexUpper {
		return hexCharsUpper
	}
	return hexCharsLower
}

// BytesToHex converts bytes to their hexadecimal representation,
// two characters per byte.
func BytesToHex(bytes []byte, c HexCase) string {
	table := hexTable(c)
	out := make([]byte, len(bytes)*2)
	for i, b := range bytes {
		out[i*2] = table[b>>4]
		out[i*2+1] = table[b&0x0F]
	}
	return string(out)
}

// AppendByteHex appends the two hex characters for a single byte to dst.
func AppendByteHex(dst []byte, b byte, c HexCase) []byte {
	table := hexTable(c)
	return append(dst, table[b>>4], table[b&0x0F])
}
