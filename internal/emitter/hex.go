package emitter

import "strings"

const hexDigits = "0123456789abcdef"

// writeHexRows writes data as comma separated 0x%02x literals, perLine per
// row, each row prefixed by indent. With trailingComma every row ends in a
// comma (Go composite literals); otherwise the last row does not (C++ style).
func writeHexRows(b *strings.Builder, data []byte, perLine int, indent string, trailingComma bool) {
	for i := 0; i < len(data); i += perLine {
		end := min(i+perLine, len(data))
		b.WriteString(indent)
		for j, v := range data[i:end] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString("0x")
			b.WriteByte(hexDigits[v>>4])
			b.WriteByte(hexDigits[v&0x0f])
		}
		if trailingComma || end < len(data) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
}
