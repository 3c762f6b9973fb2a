package emitter

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

const generatorName = "embedgen"

// DefaultBytesPerLine is the number of array elements per generated line.
const DefaultBytesPerLine = 12

// Target is the language of the generated file.
type Target string

const (
	TargetGo  Target = "go"
	TargetCPP Target = "cpp"
)

// Options controls symbol names and layout of the generated file.
// Fields left empty are filled by WithDefaults.
type Options struct {
	Target     Target
	SourceName string

	// Go only.
	Package string

	// C++ only.
	Namespace string
	Include   string

	DataName     string
	SizeName     string
	FuncName     string
	BytesPerLine int
}

// ParseTarget maps a flag or config value to a Target.
func ParseTarget(raw string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "go", "golang":
		return TargetGo, nil
	case "cpp", "c++", "cxx", "cc":
		return TargetCPP, nil
	default:
		return "", fmt.Errorf("%w: unknown target %q (expected go or cpp)", ErrInvalidOptions, raw)
	}
}

// TargetForPath infers the target from the output file extension.
func TargetForPath(path string) (Target, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return TargetGo, true
	case ".cpp", ".cc", ".cxx":
		return TargetCPP, true
	default:
		return "", false
	}
}

// PackageForPath derives a Go package name from the directory holding path.
func PackageForPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	base := filepath.Base(filepath.Dir(abs))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	name := strings.TrimLeftFunc(b.String(), unicode.IsDigit)
	if name == "" || name == "_" || token.IsKeyword(name) {
		return "embedded"
	}
	return name
}

// WithDefaults fills empty fields with the target's default symbol names.
func (o Options) WithDefaults() Options {
	if o.Target == "" {
		o.Target = TargetGo
	}
	if o.SourceName == "" {
		o.SourceName = "dictionary"
	}
	if o.BytesPerLine == 0 {
		o.BytesPerLine = DefaultBytesPerLine
	}
	switch o.Target {
	case TargetGo:
		if o.Package == "" {
			o.Package = "embedded"
		}
		if o.DataName == "" {
			o.DataName = "embeddedDictData"
		}
		if o.SizeName == "" {
			o.SizeName = "embeddedDictSize"
		}
		if o.FuncName == "" {
			o.FuncName = "EmbeddedDictionary"
		}
	case TargetCPP:
		if o.DataName == "" {
			o.DataName = "embedded_dict_data"
		}
		if o.SizeName == "" {
			o.SizeName = "embedded_dict_size"
		}
		if o.FuncName == "" {
			o.FuncName = "GetEmbeddedDictionary"
		}
	}
	return o
}

var (
	cppIdent     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	cppNamespace = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// cppKeywords are the C++20 reserved words and alternative operator tokens.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true, "asm": true,
	"auto": true, "bitand": true, "bitor": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true,
	"char32_t": true, "class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true, "const_cast": true,
	"continue": true, "co_await": true, "co_return": true, "co_yield": true,
	"decltype": true, "default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true, "export": true,
	"extern": true, "false": true, "float": true, "for": true, "friend": true,
	"goto": true, "if": true, "inline": true, "int": true, "long": true,
	"mutable": true, "namespace": true, "new": true, "noexcept": true, "not": true,
	"not_eq": true, "nullptr": true, "operator": true, "or": true, "or_eq": true,
	"private": true, "protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "requires": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true, "volatile": true,
	"wchar_t": true, "while": true, "xor": true, "xor_eq": true,
}

// goSymbol reports whether name can be declared at package scope without
// shadowing a predeclared identifier the generated code relies on.
func goSymbol(name string) bool {
	return token.IsIdentifier(name) && types.Universe.Lookup(name) == nil
}

func cppSymbol(name string) bool {
	return cppIdent.MatchString(name) && !cppKeywords[name]
}

func cppNamespaceValid(ns string) bool {
	if !cppNamespace.MatchString(ns) {
		return false
	}
	for _, part := range strings.Split(ns, "::") {
		if cppKeywords[part] {
			return false
		}
	}
	return true
}

// Validate checks that every symbol is a legal identifier in the target
// language and that the names do not collide.
func (o Options) Validate() error {
	if o.BytesPerLine < 1 {
		return fmt.Errorf("%w: bytes per line must be positive, got %d", ErrInvalidOptions, o.BytesPerLine)
	}
	if strings.ContainsAny(o.SourceName, "\r\n") {
		return fmt.Errorf("%w: source name must be a single line", ErrInvalidOptions)
	}

	var valid func(string) bool
	switch o.Target {
	case TargetGo:
		valid = goSymbol
		if !token.IsIdentifier(o.Package) || o.Package == "_" {
			return fmt.Errorf("%w: invalid Go package name %q", ErrInvalidOptions, o.Package)
		}
	case TargetCPP:
		valid = cppSymbol
		if o.Namespace != "" && !cppNamespaceValid(o.Namespace) {
			return fmt.Errorf("%w: invalid C++ namespace %q", ErrInvalidOptions, o.Namespace)
		}
		if strings.ContainsAny(o.Include, "\"\r\n") {
			return fmt.Errorf("%w: invalid include path %q", ErrInvalidOptions, o.Include)
		}
	default:
		return fmt.Errorf("%w: unknown target %q", ErrInvalidOptions, o.Target)
	}

	names := map[string]string{}
	for _, sym := range []struct{ role, name string }{
		{"data", o.DataName},
		{"size", o.SizeName},
		{"func", o.FuncName},
	} {
		if !valid(sym.name) || sym.name == "_" {
			return fmt.Errorf("%w: invalid %s symbol %q for target %s", ErrInvalidOptions, sym.role, sym.name, o.Target)
		}
		if prev, ok := names[sym.name]; ok {
			return fmt.Errorf("%w: %s and %s symbols are both named %q", ErrInvalidOptions, prev, sym.role, sym.name)
		}
		names[sym.name] = sym.role
	}
	return nil
}
