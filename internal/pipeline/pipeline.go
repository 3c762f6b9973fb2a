// Package pipeline runs the loader and the emitter in sequence and reports
// progress. Every failure is returned as a *StageError naming the stage and
// path involved.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/lamchakchan/embedgen/internal/emitter"
	"github.com/lamchakchan/embedgen/internal/loader"
	"github.com/lamchakchan/embedgen/internal/platform"
	"github.com/rs/zerolog/log"
)

type Stage string

const (
	StageLoad Stage = "load"
	StageEmit Stage = "emit"
)

// StageError ties a failure to the stage and file that caused it.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Request describes one run: one input file, one output file.
type Request struct {
	Input   string
	Output  string
	Options emitter.Options
}

// Result summarizes a successful run.
type Result struct {
	Output string
	Target emitter.Target
	Chars  int
	Bytes  int
}

// ResolveOptions fills the options that depend on the request paths: the
// target from the output extension, the Go package from the output
// directory, and the source name from the input file name.
func ResolveOptions(req Request) emitter.Options {
	opts := req.Options
	if opts.Target == "" {
		if target, ok := emitter.TargetForPath(req.Output); ok {
			opts.Target = target
		} else {
			opts.Target = emitter.TargetGo
		}
	}
	if opts.Target == emitter.TargetGo && opts.Package == "" {
		opts.Package = emitter.PackageForPath(req.Output)
	}
	if opts.SourceName == "" {
		opts.SourceName = filepath.Base(req.Input)
	}
	return opts.WithDefaults()
}

// Run loads req.Input and writes the generated source to req.Output.
// Progress lines are written to w.
func Run(req Request, w io.Writer) (Result, error) {
	opts := ResolveOptions(req)
	if err := opts.Validate(); err != nil {
		return Result{}, &StageError{Stage: StageEmit, Path: req.Output, Err: err}
	}

	if !platform.FileExists(req.Input) {
		return Result{}, &StageError{
			Stage: StageLoad,
			Path:  req.Input,
			Err:   fmt.Errorf("%w: %s", loader.ErrInputNotFound, req.Input),
		}
	}

	platform.PrintInfo(w, "Reading dictionary from: "+req.Input)
	text, err := loader.Load(req.Input)
	if err != nil {
		return Result{}, &StageError{Stage: StageLoad, Path: req.Input, Err: err}
	}
	chars := utf8.RuneCountInString(text)
	platform.PrintInfo(w, fmt.Sprintf("Dictionary size: %d characters (%d bytes)", chars, len(text)))
	log.Debug().Str("input", req.Input).Int("chars", chars).Int("bytes", len(text)).Msg("loaded source")

	platform.PrintInfo(w, "Generating byte array in: "+req.Output)
	p, err := emitter.Emit(text, req.Output, opts)
	if err != nil {
		return Result{}, &StageError{Stage: StageEmit, Path: req.Output, Err: err}
	}
	log.Debug().
		Str("output", req.Output).
		Str("target", string(opts.Target)).
		Int("len", p.Len).
		Int("bytes_per_line", opts.BytesPerLine).
		Msg("wrote artifact")

	platform.PrintOK(w, "Done!")
	return Result{Output: req.Output, Target: opts.Target, Chars: chars, Bytes: p.Len}, nil
}

// Kind names the failure class of err for operator-facing messages.
func Kind(err error) string {
	switch {
	case errors.Is(err, loader.ErrInputNotFound):
		return "InputNotFound"
	case errors.Is(err, loader.ErrDecode):
		return "DecodeError"
	case errors.Is(err, emitter.ErrOutputWrite):
		return "OutputWriteError"
	case errors.Is(err, emitter.ErrInvalidOptions):
		return "InvalidOptions"
	case errors.Is(err, loader.ErrNotRegular):
		return "InputNotRegular"
	default:
		return "IOError"
	}
}
