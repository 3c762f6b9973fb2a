package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lamchakchan/embedgen/internal/config"
	"github.com/lamchakchan/embedgen/internal/emitter"
	"github.com/lamchakchan/embedgen/internal/logging"
	"github.com/lamchakchan/embedgen/internal/pipeline"
	"github.com/lamchakchan/embedgen/internal/platform"
	"github.com/lamchakchan/embedgen/internal/tui"
	"github.com/rs/zerolog/log"
)

// version is set via -ldflags at build time
var version = "dev"

const helpText = `
embedgen - embed a dictionary resource file as a byte array

Usage:
  embedgen [options] <input-path> <output-path>

The output language is taken from the output extension (.go, .cpp/.cc/.cxx)
unless -target is given. The generated file holds a fixed byte array, its
exact length as a constant, and an accessor that returns the original text.

Options:
  -config <file>       TOML file with generation options (flags override it)
  -target go|cpp       Output language
  -package <name>      Go package name (default: output directory name)
  -namespace <ns>      C++ namespace wrapping the generated symbols
  -include <header>    C++ header declaring the accessor
  -data <name>         Name of the byte array
  -size <name>         Name of the length constant
  -func <name>         Name of the accessor function
  -width <n>           Array elements per line (default: 12)
  -source-name <name>  Source named in the generated header (default: input file name)
  -preview             Page through the generated file when run in a terminal
  -version             Show version
  -help, -h            Show this help message

Examples:
  embedgen FIX44.xml internal/fix44/embedded_fix44.go
  embedgen -config embedgen.toml FIX44.xml src/dictionary/embedded_fix44_dictionary.cpp
  embedgen -target cpp -namespace duckdb -func GetEmbeddedFix44Dictionary FIX44.xml dict.cpp
`

func main() {
	platform.InitColor()
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("embedgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpText) }

	configPath := fs.String("config", "", "TOML file with generation options")
	target := fs.String("target", "", "output language: go|cpp")
	pkg := fs.String("package", "", "Go package name")
	namespace := fs.String("namespace", "", "C++ namespace")
	include := fs.String("include", "", "C++ header declaring the accessor")
	data := fs.String("data", "", "byte array name")
	size := fs.String("size", "", "length constant name")
	fn := fs.String("func", "", "accessor function name")
	width := fs.Int("width", 0, "array elements per line")
	sourceName := fs.String("source-name", "", "source named in the generated header")
	preview := fs.Bool("preview", false, "page through the generated file")
	showVersion := fs.Bool("version", false, "show version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *showVersion {
		fmt.Fprintf(stdout, "embedgen %s\n", version)
		return 0
	}
	if fs.NArg() != 2 {
		platform.PrintFail(stderr, fmt.Sprintf("UsageError: expected <input-path> <output-path>, got %d argument(s)", fs.NArg()))
		fmt.Fprint(stderr, helpText)
		return 1
	}
	input, output := fs.Arg(0), fs.Arg(1)

	var opts emitter.Options
	if *configPath != "" {
		loaded, err := config.Load(*configPath, opts)
		if err != nil {
			label := "ConfigError"
			if errors.Is(err, emitter.ErrInvalidOptions) {
				label = pipeline.Kind(err)
			}
			platform.PrintFail(stderr, fmt.Sprintf("%s: %v", label, err))
			return 1
		}
		opts = loaded
	}

	// Flags given on the command line override the config file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			t, err := emitter.ParseTarget(*target)
			if err != nil {
				flagErr = err
				return
			}
			opts.Target = t
		case "package":
			opts.Package = *pkg
		case "namespace":
			opts.Namespace = *namespace
		case "include":
			opts.Include = *include
		case "data":
			opts.DataName = *data
		case "size":
			opts.SizeName = *size
		case "func":
			opts.FuncName = *fn
		case "width":
			if *width < 1 {
				flagErr = fmt.Errorf("%w: -width must be positive, got %d", emitter.ErrInvalidOptions, *width)
				return
			}
			opts.BytesPerLine = *width
		case "source-name":
			opts.SourceName = *sourceName
		}
	})
	if flagErr != nil {
		platform.PrintFail(stderr, fmt.Sprintf("%s: %v", pipeline.Kind(flagErr), flagErr))
		return 1
	}

	res, err := pipeline.Run(pipeline.Request{Input: input, Output: output, Options: opts}, stdout)
	if err != nil {
		platform.PrintFail(stderr, fmt.Sprintf("%s: %v", pipeline.Kind(err), err))
		log.Debug().Err(err).Msg("run failed")
		return 1
	}

	if *preview {
		showPreview(res, stdout, stderr)
	}
	return 0
}

// showPreview opens the viewer on the generated file. The artifact is already
// written, so preview problems are reported as warnings only.
func showPreview(res pipeline.Result, stdout, stderr io.Writer) {
	f, ok := stdout.(*os.File)
	if !ok || !platform.IsTerminal(f) {
		platform.PrintWarn(stderr, "-preview ignored: stdout is not a terminal")
		return
	}
	summary := fmt.Sprintf("%s target, %d characters, %d bytes", res.Target, res.Chars, res.Bytes)
	if err := tui.Preview(res.Output, summary); err != nil {
		platform.PrintWarn(stderr, err.Error())
	}
}
