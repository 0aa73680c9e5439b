// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultPort         = 8080
	DefaultReadTimeout  = Duration(30 * time.Second)
	DefaultWriteTimeout = Duration(30 * time.Second)
)

// DuplicatePolicy decides what happens when a key is repeated within one
// version of a table.
type DuplicatePolicy string

func (s DuplicatePolicy) String() string {
	return string(s)
}

const (
	// DPLast maps a repeated key to the last row carrying it.
	DPLast DuplicatePolicy = "last"

	// DPFirst maps a repeated key to the first row carrying it.
	DPFirst DuplicatePolicy = "first"

	// DPError rejects inputs with repeated keys.
	DPError DuplicatePolicy = "error"
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(s)); p {
	case "":
		return DPLast, nil
	case DPLast, DPFirst, DPError:
		return p, nil
	default:
		return "", fmt.Errorf("invalid duplicate keys policy %q, valid values are %q, %q and %q", s, DPLast, DPFirst, DPError)
	}
}

type Colors struct {
	// Added is the background of cells that only exist in the current version.
	Added string `yaml:"added,omitempty" json:"added,omitempty"`

	// Changed is the background of cells whose text differs between versions.
	Changed string `yaml:"changed,omitempty" json:"changed,omitempty"`

	// Deleted is the background of cells that only exist in the previous version.
	Deleted string `yaml:"deleted,omitempty" json:"deleted,omitempty"`

	// Key is the foreground of key column headers.
	Key string `yaml:"key,omitempty" json:"key,omitempty"`
}

type Diff struct {
	// Separator is the default field separator, either "comma" or "tab".
	Separator string `yaml:"separator,omitempty" json:"separator,omitempty"`

	// Quote is the default quote character, either "double" or "single".
	Quote string `yaml:"quote,omitempty" json:"quote,omitempty"`

	// DuplicateKeys is one of "last", "first" or "error". See DuplicatePolicy.
	DuplicateKeys DuplicatePolicy `yaml:"duplicateKeys,omitempty" json:"duplicateKeys,omitempty"`

	Colors *Colors `yaml:"colors,omitempty" json:"colors,omitempty"`
}

type Server struct {
	// Port is the port `devtools serve` listens on.
	Port int `yaml:"port,omitempty" json:"port,omitempty"`

	ReadTimeout  *Duration `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty"`
	WriteTimeout *Duration `yaml:"writeTimeout,omitempty" json:"writeTimeout,omitempty"`

	// Gzip, when set to `false`, disables response compression.
	Gzip *bool `yaml:"gzip,omitempty" json:"gzip,omitempty"`
}

type Config struct {
	Diff   *Diff   `yaml:"diff,omitempty" json:"diff,omitempty"`
	Server *Server `yaml:"server,omitempty" json:"server,omitempty"`
}

func (c *Config) DiffSeparator() string {
	if c.Diff != nil && c.Diff.Separator != "" {
		return c.Diff.Separator
	}
	return "comma"
}

func (c *Config) DiffQuote() string {
	if c.Diff != nil && c.Diff.Quote != "" {
		return c.Diff.Quote
	}
	return "double"
}

func (c *Config) DuplicateKeys() DuplicatePolicy {
	if c.Diff != nil && c.Diff.DuplicateKeys != "" {
		return c.Diff.DuplicateKeys
	}
	return DPLast
}

// DiffColors returns the configured colors with defaults filled in.
func (c *Config) DiffColors() Colors {
	res := Colors{
		Added:   "lightgreen",
		Changed: "yellow",
		Deleted: "lightpink",
		Key:     "red",
	}
	if c.Diff == nil || c.Diff.Colors == nil {
		return res
	}
	if s := c.Diff.Colors.Added; s != "" {
		res.Added = s
	}
	if s := c.Diff.Colors.Changed; s != "" {
		res.Changed = s
	}
	if s := c.Diff.Colors.Deleted; s != "" {
		res.Deleted = s
	}
	if s := c.Diff.Colors.Key; s != "" {
		res.Key = s
	}
	return res
}

func (c *Config) ServerPort() int {
	if c.Server != nil && c.Server.Port != 0 {
		return c.Server.Port
	}
	return DefaultPort
}

func (c *Config) ServerReadTimeout() time.Duration {
	if c.Server != nil && c.Server.ReadTimeout != nil {
		return time.Duration(*c.Server.ReadTimeout)
	}
	return time.Duration(DefaultReadTimeout)
}

func (c *Config) ServerWriteTimeout() time.Duration {
	if c.Server != nil && c.Server.WriteTimeout != nil {
		return time.Duration(*c.Server.WriteTimeout)
	}
	return time.Duration(DefaultWriteTimeout)
}

func (c *Config) ServerGzip() bool {
	if c.Server != nil && c.Server.Gzip != nil {
		return *c.Server.Gzip
	}
	return true
}

// ParseColor accepts a tcell color name such as "lightpink" or a "#rrggbb"
// hex string.
func ParseColor(s string) (colorful.Color, error) {
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}
	tc, ok := tcell.ColorNames[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := tc.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// TcellColor converts a color string to a tcell color.
func TcellColor(s string) (tcell.Color, error) {
	c, err := ParseColor(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
