package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// Policies for a belt listed twice between the same two junctions.
const (
	ParallelKeep   = "keep"
	ParallelReject = "reject"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved application configuration.
type Config struct {
	Input         string
	ClaimJunction string
	ArrivalTag    string
	SectionMarker string
	ParallelLinks string
	Workers       int
	CacheSize     int

	LogLevel  string
	LogFormat string

	// Listen is the HTTP listen address; empty disables the server.
	Listen string
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		ClaimJunction: "BaggageClaim",
		ArrivalTag:    "ARRIVAL",
		SectionMarker: "#",
		ParallelLinks: ParallelKeep,
		Workers:       1,
		CacheSize:     256,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}
	if c.ParallelLinks != ParallelKeep && c.ParallelLinks != ParallelReject {
		return fmt.Errorf("%w: parallel_links %q: must be %q or %q",
			ErrInvalid, c.ParallelLinks, ParallelKeep, ParallelReject)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d: must be at least 1", ErrInvalid, c.Workers)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache_size %d: must be at least 1", ErrInvalid, c.CacheSize)
	}
	if strings.TrimSpace(c.SectionMarker) == "" || strings.ContainsAny(c.SectionMarker, " \t") {
		return fmt.Errorf("%w: section_marker %q: must be a single token", ErrInvalid, c.SectionMarker)
	}

	return nil
}

// fileRoot mirrors the HCL file layout.
type fileRoot struct {
	Input         *string      `hcl:"input,optional"`
	ClaimJunction *string      `hcl:"claim_junction,optional"`
	ArrivalTag    *string      `hcl:"arrival_tag,optional"`
	SectionMarker *string      `hcl:"section_marker,optional"`
	ParallelLinks *string      `hcl:"parallel_links,optional"`
	Workers       *int         `hcl:"workers,optional"`
	CacheSize     *int         `hcl:"cache_size,optional"`
	Log           *logBlock    `hcl:"log,block"`
	Server        *serverBlock `hcl:"server,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type serverBlock struct {
	Listen *string `hcl:"listen,optional"`
}

// Load reads and decodes the file at path on top of Default, with the
// process environment exposed as env.*.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	return Parse(src, path, Environ())
}

// Parse decodes HCL source on top of Default. filename is used in
// diagnostics only.
func Parse(src []byte, filename string, env map[string]string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &root)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := Default()
	root.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", filename)
	}

	return cfg, nil
}

func (r *fileRoot) apply(cfg *Config) {
	set(&cfg.Input, r.Input)
	set(&cfg.ClaimJunction, r.ClaimJunction)
	set(&cfg.ArrivalTag, r.ArrivalTag)
	set(&cfg.SectionMarker, r.SectionMarker)
	set(&cfg.ParallelLinks, r.ParallelLinks)
	if r.Workers != nil {
		cfg.Workers = *r.Workers
	}
	if r.CacheSize != nil {
		cfg.CacheSize = *r.CacheSize
	}
	if r.Log != nil {
		set(&cfg.LogLevel, r.Log.Level)
		set(&cfg.LogFormat, r.Log.Format)
	}
	if r.Server != nil {
		set(&cfg.Listen, r.Server.Listen)
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// evalContext exposes env as an object named "env".
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	out := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			out[pair[0]] = pair[1]
		}
	}

	return out
}
