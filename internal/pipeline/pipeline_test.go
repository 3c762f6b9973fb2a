package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lamchakchan/embedgen/internal/emitter"
	"github.com/lamchakchan/embedgen/internal/loader"
	"github.com/lamchakchan/embedgen/internal/testutil/testlog"
)

func writeInput(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestRun_ABCDE(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := writeInput(t, dir, "abc.xml", []byte("ABCDE"))
	out := filepath.Join(dir, "dict.go")

	var progress bytes.Buffer
	res, err := Run(Request{Input: in, Output: out}, &progress)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Bytes != 5 || res.Chars != 5 {
		t.Errorf("Result = %+v, want 5 bytes and 5 chars", res)
	}
	if res.Target != emitter.TargetGo {
		t.Errorf("Result.Target = %q, want go", res.Target)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	got := string(src)
	for _, want := range []string{
		"// Code generated by embedgen from abc.xml. DO NOT EDIT.",
		"\t0x41, 0x42, 0x43, 0x44, 0x45,\n",
		"const embeddedDictSize = 5\n",
		"return string(embeddedDictData[:embeddedDictSize])",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	log := progress.String()
	for _, want := range []string{
		"Reading dictionary from: " + in,
		"Dictionary size: 5 characters (5 bytes)",
		"Generating byte array in: " + out,
		"Done!",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("progress missing %q:\n%s", want, log)
		}
	}
}

func TestRun_CharsVersusBytes(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "de.xml", []byte("Größe"))
	out := filepath.Join(dir, "dict.cpp")

	res, err := Run(Request{Input: in, Output: out}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Chars != 5 || res.Bytes != 7 {
		t.Errorf("Result = %+v, want 5 chars and 7 bytes", res)
	}
	if res.Target != emitter.TargetCPP {
		t.Errorf("Result.Target = %q, want cpp from the .cpp extension", res.Target)
	}
	src, _ := os.ReadFile(out)
	if !strings.Contains(string(src), "static const size_t embedded_dict_size = 7;") {
		t.Errorf("C++ output should carry the byte length:\n%s", src)
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dict.go")

	_, err := Run(Request{Input: filepath.Join(dir, "missing.xml"), Output: out}, &bytes.Buffer{})
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != StageLoad {
		t.Fatalf("Run() error = %v, want load StageError", err)
	}
	if !errors.Is(err, loader.ErrInputNotFound) {
		t.Errorf("Run() error = %v, want ErrInputNotFound", err)
	}
	if Kind(err) != "InputNotFound" {
		t.Errorf("Kind() = %q, want InputNotFound", Kind(err))
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output must not be created when the input is missing")
	}
}

func TestRun_InvalidUTF8LeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "bad.xml", []byte{'<', 0xff, '>'})
	out := writeInput(t, dir, "dict.go", []byte("previous content"))

	_, err := Run(Request{Input: in, Output: out}, &bytes.Buffer{})
	if !errors.Is(err, loader.ErrDecode) {
		t.Fatalf("Run() error = %v, want ErrDecode", err)
	}
	if Kind(err) != "DecodeError" {
		t.Errorf("Kind() = %q, want DecodeError", Kind(err))
	}
	got, _ := os.ReadFile(out)
	if string(got) != "previous content" {
		t.Errorf("output modified after decode failure: %q", got)
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}
	dir := t.TempDir()
	in := writeInput(t, dir, "abc.xml", []byte("ABCDE"))
	locked := filepath.Join(dir, "locked")
	if err := os.Mkdir(locked, 0555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := Run(Request{Input: in, Output: filepath.Join(locked, "dict.go")}, &bytes.Buffer{})
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != StageEmit {
		t.Fatalf("Run() error = %v, want emit StageError", err)
	}
	if Kind(err) != "OutputWriteError" {
		t.Errorf("Kind() = %q, want OutputWriteError", Kind(err))
	}
}

func TestRun_MissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "abc.xml", []byte("ABCDE"))

	_, err := Run(Request{Input: in, Output: filepath.Join(dir, "nope", "dict.go")}, &bytes.Buffer{})
	if !errors.Is(err, emitter.ErrOutputWrite) {
		t.Fatalf("Run() error = %v, want ErrOutputWrite", err)
	}
}

func TestRun_InvalidOptionsBeforeLoad(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dict.go")

	// Options are checked first, so even a missing input reports the option problem.
	_, err := Run(Request{
		Input:   filepath.Join(dir, "missing.xml"),
		Output:  out,
		Options: emitter.Options{FuncName: "1bad"},
	}, &bytes.Buffer{})
	if Kind(err) != "InvalidOptions" {
		t.Fatalf("Kind() = %q (err %v), want InvalidOptions", Kind(err), err)
	}
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want emitter.Options
	}{
		{
			name: "go from extension",
			req:  Request{Input: "dict/FIX44.xml", Output: filepath.Join("internal", "fix44", "dict.go")},
			want: emitter.Options{Target: emitter.TargetGo, SourceName: "FIX44.xml", Package: "fix44"},
		},
		{
			name: "cpp from extension",
			req:  Request{Input: "FIX44.xml", Output: "src/dictionary/embedded_fix44_dictionary.cpp"},
			want: emitter.Options{Target: emitter.TargetCPP, SourceName: "FIX44.xml"},
		},
		{
			name: "unknown extension defaults to go",
			req:  Request{Input: "d.xml", Output: filepath.Join("gen", "dict.txt")},
			want: emitter.Options{Target: emitter.TargetGo, SourceName: "d.xml", Package: "gen"},
		},
		{
			name: "explicit settings win",
			req: Request{Input: "d.xml", Output: "out.cpp", Options: emitter.Options{
				Target: emitter.TargetGo, Package: "dict", SourceName: "FIX 4.4",
			}},
			want: emitter.Options{Target: emitter.TargetGo, SourceName: "FIX 4.4", Package: "dict"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveOptions(tt.req)
			want := tt.want.WithDefaults()
			if got != want {
				t.Errorf("ResolveOptions() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestStageErrorMessage(t *testing.T) {
	err := &StageError{Stage: StageLoad, Path: "missing.xml", Err: loader.ErrInputNotFound}
	want := "load stage failed for missing.xml: loader: input file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
