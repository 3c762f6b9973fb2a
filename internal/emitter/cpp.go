package emitter

import (
	"fmt"
	"strings"
)

// renderCPP emits a translation unit defining the accessor; its declaration
// lives in the header named by opts.Include.
func renderCPP(p Payload, opts Options) []byte {
	var b strings.Builder

	b.WriteString("// Auto-generated file - DO NOT EDIT\n")
	fmt.Fprintf(&b, "// Generated from %s\n", opts.SourceName)
	fmt.Fprintf(&b, "// This file is generated at build time by %s\n\n", generatorName)

	if opts.Include != "" {
		fmt.Fprintf(&b, "#include \"%s\"\n", opts.Include)
	}
	b.WriteString("#include <cstddef>\n")
	b.WriteString("#include <string>\n\n")

	if opts.Namespace != "" {
		fmt.Fprintf(&b, "namespace %s {\n\n", opts.Namespace)
	}

	fmt.Fprintf(&b, "// Embedded %s as byte array\n", opts.SourceName)
	fmt.Fprintf(&b, "static const unsigned char %s[] = {\n", opts.DataName)
	if p.Len == 0 {
		// Zero-length arrays are ill-formed; the size constant stays 0.
		b.WriteString("    0x00\n")
	} else {
		writeHexRows(&b, p.Data, opts.BytesPerLine, "    ", false)
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "static const size_t %s = %d;\n\n", opts.SizeName, p.Len)

	fmt.Fprintf(&b, "std::string %s() {\n", opts.FuncName)
	b.WriteString("    return std::string(\n")
	fmt.Fprintf(&b, "        reinterpret_cast<const char*>(%s),\n", opts.DataName)
	fmt.Fprintf(&b, "        %s\n", opts.SizeName)
	b.WriteString("    );\n")
	b.WriteString("}\n")

	if opts.Namespace != "" {
		fmt.Fprintf(&b, "\n} // namespace %s\n", opts.Namespace)
	}
	return []byte(b.String())
}
