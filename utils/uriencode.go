package utils

//URI encoding (aka percent-encoding) exactly as specified by AWS for sigv4.
//Not for general use: a space must become %20 (never '+') and escapes must be
//uppercase hex, otherwise the signature will not match what AWS calculates.

// UriEncode percent-encodes input following the AWS sigv4 rule. Unreserved
// characters (A-Z a-z 0-9 _ - ~ .) pass through unchanged. A '/' passes
// through unless encodeSlash is true. Any other byte of the UTF-8 encoding
// becomes a %XX triplet with uppercase hex.
func UriEncode(input string, encodeSlash bool) string {
	if input == "" {
		return ""
	}
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case isUnreserved(ch):
			out = append(out, ch)
		case ch == '/':
			if encodeSlash {
				out = append(out, '%', '2', 'F')
			} else {
				out = append(out, ch)
			}
		default:
			out = append(out, '%')
			out = AppendByteHex(out, ch, HexUpper)
		}
	}
	return string(out)
}

func isUnreserved(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-' || ch == '~' || ch == '.'
}
