// Package emitter turns dictionary text into a source file that embeds the
// text as a fixed byte array plus an explicit length constant, and an
// accessor function that rebuilds the text at runtime.
//
// The array is never read up to a terminator: the payload may legitimately
// contain a zero byte, so the accessor always slices by the declared length.
package emitter

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrOutputWrite    = errors.New("emitter: cannot write output")
	ErrInvalidOptions = errors.New("emitter: invalid options")
)

// Payload is the UTF-8 encoding of the source text paired with its exact
// byte count. The two always travel together.
type Payload struct {
	Data []byte
	Len  int
}

// Encode returns the UTF-8 bytes of text. Go strings already hold UTF-8, so
// this is a copy; the loader guarantees validity.
func Encode(text string) Payload {
	data := []byte(text)
	return Payload{Data: data, Len: len(data)}
}

// Text rebuilds the source text from the first Len bytes of Data.
func (p Payload) Text() string {
	return string(p.Data[:p.Len])
}

// Render produces the complete generated file in memory.
func Render(p Payload, opts Options) ([]byte, error) {
	if p.Len != len(p.Data) {
		return nil, fmt.Errorf("%w: payload length %d does not match %d data bytes", ErrInvalidOptions, p.Len, len(p.Data))
	}
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Target {
	case TargetGo:
		return renderGo(p, opts)
	case TargetCPP:
		return renderCPP(p, opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown target %q", ErrInvalidOptions, opts.Target)
	}
}

// Emit encodes text, renders it, and writes the result to path, replacing
// any previous content. Nothing is written when rendering fails.
func Emit(text, path string, opts Options) (Payload, error) {
	p := Encode(text)
	out, err := Render(p, opts)
	if err != nil {
		return Payload{}, err
	}
	if err := writeFile(path, out); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// writeFile truncates or creates path and writes data. A failure after the
// file was opened may leave it partially written.
func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return nil
}
