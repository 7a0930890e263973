package msgbox

import "unicode/utf16"

// encodeUTF16 returns s as UTF-16 code units followed by exactly one zero
// terminator. Embedded NULs are kept; the platform stops reading at the first.
func encodeUTF16(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// decodeUTF16 reverses encodeUTF16. Everything from the first zero unit on is
// ignored.
func decodeUTF16(buf []uint16) string {
	for i, v := range buf {
		if v == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
