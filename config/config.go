// Package config handles phpcore.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"

	"github.com/chazu/phpcore/convert"
	"github.com/chazu/phpcore/php"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "phpcore.toml"

// Config represents a phpcore.toml file.
type Config struct {
	Runtime Runtime `toml:"runtime"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
}

// Runtime mirrors the php.ini settings the value engine reads.
type Runtime struct {
	Precision          int    `toml:"precision"`
	SerializePrecision int    `toml:"serialize-precision"`
	Encoding           string `toml:"encoding"`
	Locale             string `toml:"locale"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Runtime: Runtime{
			Precision:          convert.DefaultPrecision,
			SerializePrecision: convert.ShortestPrecision,
			Encoding:           "utf-8",
			Locale:             "en-US",
		},
	}
}

// Parse decodes configuration text over the defaults.
func Parse(data string) (*Config, error) {
	c := Default()
	if _, err := toml.Decode(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load parses phpcore.toml from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(c.Dir, c.Log.File)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a phpcore.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// LookupEncoding resolves an encoding by WHATWG or IANA name. UTF-8
// resolves to nil: strings are already UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		e, err = ianaindex.IANA.Encoding(name)
		if err != nil || e == nil {
			return nil, fmt.Errorf("unknown encoding %q", name)
		}
	}
	if e == unicode.UTF8 {
		return nil, nil
	}
	return e, nil
}

// NewContext builds a php.Context from the runtime section. Reports go
// to commonlog.
func (c *Config) NewContext() (*php.Context, error) {
	ctx := php.NewContext()
	ctx.Precision = c.Runtime.Precision
	ctx.SerializePrecision = c.Runtime.SerializePrecision

	enc, err := LookupEncoding(c.Runtime.Encoding)
	if err != nil {
		return nil, fmt.Errorf("runtime.encoding: %w", err)
	}
	ctx.Encoding = enc

	if c.Runtime.Locale != "" {
		tag, err := language.Parse(c.Runtime.Locale)
		if err != nil {
			return nil, fmt.Errorf("runtime.locale: %w", err)
		}
		ctx.Locale = tag
	}
	return ctx, nil
}

// ConfigureLogging applies the log section to commonlog.
func (c *Config) ConfigureLogging() {
	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(c.Log.Verbosity, path)
}
