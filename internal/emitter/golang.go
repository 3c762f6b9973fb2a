package emitter

import (
	"fmt"
	"go/format"
	"strings"
)

func renderGo(p Payload, opts Options) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by %s from %s. DO NOT EDIT.\n\n", generatorName, opts.SourceName)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)

	fmt.Fprintf(&b, "// %s holds the UTF-8 bytes of %s.\n", opts.DataName, opts.SourceName)
	if p.Len == 0 {
		fmt.Fprintf(&b, "var %s = [%s]byte{}\n\n", opts.DataName, opts.SizeName)
	} else {
		fmt.Fprintf(&b, "var %s = [%s]byte{\n", opts.DataName, opts.SizeName)
		writeHexRows(&b, p.Data, opts.BytesPerLine, "\t", true)
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "// %s is the exact byte length of %s.\n", opts.SizeName, opts.DataName)
	fmt.Fprintf(&b, "const %s = %d\n\n", opts.SizeName, p.Len)

	fmt.Fprintf(&b, "// %s returns the text of %s.\n", opts.FuncName, opts.SourceName)
	fmt.Fprintf(&b, "func %s() string {\n", opts.FuncName)
	fmt.Fprintf(&b, "\treturn string(%s[:%s])\n", opts.DataName, opts.SizeName)
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated Go source: %w", err)
	}
	return src, nil
}
