// Package config loads generation options from a TOML file.
//
// Example embedgen.toml:
//
//	target = "cpp"
//	source_name = "FIX44.xml"
//	namespace = "duckdb"
//	include = "dictionary/embedded_fix44_dictionary.hpp"
//	data = "embedded_fix44_dict_data"
//	size = "embedded_fix44_dict_size"
//	func = "GetEmbeddedFix44Dictionary"
//	bytes_per_line = 12
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lamchakchan/embedgen/internal/emitter"
)

var ErrConfig = errors.New("config: invalid configuration")

// fileConfig maps embedgen.toml keys to emitter options.
type fileConfig struct {
	Target       string `toml:"target"`
	SourceName   string `toml:"source_name"`
	Package      string `toml:"package"`
	Namespace    string `toml:"namespace"`
	Include      string `toml:"include"`
	Data         string `toml:"data"`
	Size         string `toml:"size"`
	Func         string `toml:"func"`
	BytesPerLine int    `toml:"bytes_per_line"`
}

// Load reads path and overlays the keys it defines onto base.
// Keys absent from the file leave base untouched; unknown keys are rejected.
func Load(path string, base emitter.Options) (emitter.Options, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return emitter.Options{}, fmt.Errorf("%w: load %s: %w", ErrConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return emitter.Options{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrConfig, path, strings.Join(keys, ", "))
	}

	opts := base
	if meta.IsDefined("target") {
		target, err := emitter.ParseTarget(raw.Target)
		if err != nil {
			return emitter.Options{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
		}
		opts.Target = target
	}
	if meta.IsDefined("source_name") {
		opts.SourceName = strings.TrimSpace(raw.SourceName)
	}
	if meta.IsDefined("package") {
		opts.Package = strings.TrimSpace(raw.Package)
	}
	if meta.IsDefined("namespace") {
		opts.Namespace = strings.TrimSpace(raw.Namespace)
	}
	if meta.IsDefined("include") {
		opts.Include = strings.TrimSpace(raw.Include)
	}
	if meta.IsDefined("data") {
		opts.DataName = strings.TrimSpace(raw.Data)
	}
	if meta.IsDefined("size") {
		opts.SizeName = strings.TrimSpace(raw.Size)
	}
	if meta.IsDefined("func") {
		opts.FuncName = strings.TrimSpace(raw.Func)
	}
	if meta.IsDefined("bytes_per_line") {
		if raw.BytesPerLine < 1 {
			return emitter.Options{}, fmt.Errorf("%w: %s: bytes_per_line must be positive, got %d: %w", ErrConfig, path, raw.BytesPerLine, emitter.ErrInvalidOptions)
		}
		opts.BytesPerLine = raw.BytesPerLine
	}
	return opts, nil
}
