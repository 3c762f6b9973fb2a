package emitter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// decodeGo evaluates a generated Go file the way the compiler would: it
// collects the array literal, the length constant, and checks that the
// accessor slices the array by that constant.
func decodeGo(t *testing.T, src []byte, opts Options) string {
	t.Helper()
	opts = opts.WithDefaults()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	if !ast.IsGenerated(f) {
		t.Errorf("generated source lacks the generated-code marker")
	}
	if f.Name.Name != opts.Package {
		t.Errorf("package = %q, want %q", f.Name.Name, opts.Package)
	}

	var data []byte
	size := -1
	accessor := false
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok || len(vs.Values) != 1 {
					continue
				}
				switch vs.Names[0].Name {
				case opts.DataName:
					lit, ok := vs.Values[0].(*ast.CompositeLit)
					if !ok {
						t.Fatalf("%s is not a composite literal", opts.DataName)
					}
					arr, ok := lit.Type.(*ast.ArrayType)
					if !ok || !isIdent(arr.Len, opts.SizeName) {
						t.Fatalf("%s must be a [%s]byte array", opts.DataName, opts.SizeName)
					}
					for _, e := range lit.Elts {
						bl, ok := e.(*ast.BasicLit)
						if !ok || bl.Kind != token.INT {
							t.Fatalf("unexpected array element %T", e)
						}
						if !strings.HasPrefix(bl.Value, "0x") || len(bl.Value) != 4 || strings.ToLower(bl.Value) != bl.Value {
							t.Errorf("element %q is not 0x + two lowercase hex digits", bl.Value)
						}
						v, err := strconv.ParseUint(bl.Value, 0, 8)
						if err != nil {
							t.Fatalf("parsing element %q: %v", bl.Value, err)
						}
						data = append(data, byte(v))
					}
				case opts.SizeName:
					if d.Tok != token.CONST {
						t.Fatalf("%s must be a constant", opts.SizeName)
					}
					bl, ok := vs.Values[0].(*ast.BasicLit)
					if !ok {
						t.Fatalf("%s is not a literal", opts.SizeName)
					}
					size, err = strconv.Atoi(bl.Value)
					if err != nil {
						t.Fatalf("parsing size %q: %v", bl.Value, err)
					}
				}
			}
		case *ast.FuncDecl:
			if d.Name.Name != opts.FuncName {
				continue
			}
			if d.Type.Params.NumFields() != 0 {
				t.Errorf("accessor must take no parameters")
			}
			ret, ok := d.Body.List[0].(*ast.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				t.Fatalf("accessor body must be a single return")
			}
			call, ok := ret.Results[0].(*ast.CallExpr)
			if !ok || !isIdent(call.Fun, "string") {
				t.Fatalf("accessor must return a string conversion")
			}
			slice, ok := call.Args[0].(*ast.SliceExpr)
			if !ok || !isIdent(slice.X, opts.DataName) || !isIdent(slice.High, opts.SizeName) {
				t.Fatalf("accessor must slice %s by %s", opts.DataName, opts.SizeName)
			}
			accessor = true
		}
	}

	if !accessor {
		t.Fatalf("accessor %s not found", opts.FuncName)
	}
	if size < 0 {
		t.Fatalf("size constant %s not found", opts.SizeName)
	}
	if size != len(data) {
		t.Fatalf("size constant = %d, array has %d elements", size, len(data))
	}
	return string(data[:size])
}

func isIdent(e ast.Expr, name string) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == name
}

var (
	cppArrayRe = regexp.MustCompile(`(?s)static const unsigned char (\w+)\[\] = \{\n(.*?)\};`)
	cppSizeRe  = regexp.MustCompile(`static const size_t (\w+) = (\d+);`)
)

// decodeCPP extracts the byte list and size constant from a generated C++
// file and rebuilds the text the way the accessor does.
func decodeCPP(t *testing.T, src []byte, opts Options) string {
	t.Helper()
	opts = opts.WithDefaults()
	text := string(src)

	m := cppArrayRe.FindStringSubmatch(text)
	if m == nil || m[1] != opts.DataName {
		t.Fatalf("array %s not found in:\n%s", opts.DataName, text)
	}
	var data []byte
	for _, field := range strings.Split(m[2], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			t.Fatalf("empty array element (stray comma) in:\n%s", m[2])
		}
		v, err := strconv.ParseUint(field, 0, 8)
		if err != nil {
			t.Fatalf("parsing element %q: %v", field, err)
		}
		data = append(data, byte(v))
	}

	s := cppSizeRe.FindStringSubmatch(text)
	if s == nil || s[1] != opts.SizeName {
		t.Fatalf("size constant %s not found", opts.SizeName)
	}
	size, err := strconv.Atoi(s[2])
	if err != nil {
		t.Fatalf("parsing size: %v", err)
	}
	if size > len(data) {
		t.Fatalf("size %d exceeds %d array elements", size, len(data))
	}
	if !strings.Contains(text, "reinterpret_cast<const char*>("+opts.DataName+"),\n        "+opts.SizeName+"\n") {
		t.Errorf("accessor does not construct the string from %s and %s", opts.DataName, opts.SizeName)
	}
	return string(data[:size])
}
