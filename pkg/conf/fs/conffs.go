// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package conffs locates, reads and merges devtools config files.
package conffs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/imdario/mergo"
	"github.com/wrgl/devtools/pkg/conf"
	"gopkg.in/yaml.v3"
)

const (
	SystemConfigDirEnv = "DEVTOOLS_SYSTEM_CONFIG_DIR"
	LocalConfigName    = ".devtools.yaml"
)

func SystemPath() string {
	if s := os.Getenv(SystemConfigDirEnv); s != "" {
		return filepath.Join(s, "config.yaml")
	}
	return "/usr/local/etc/devtools/config.yaml"
}

// LocalPath is the config file inside dir, usually the working directory.
func LocalPath(dir string) string {
	return filepath.Join(dir, LocalConfigName)
}

// Paths lists config files from lowest to highest precedence: system,
// global, local, then file if it is not empty.
func Paths(dir, file string) ([]string, error) {
	global, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	paths := []string{SystemPath(), global, LocalPath(dir)}
	if file != "" {
		paths = append(paths, file)
	}
	return paths, nil
}

// Read decodes a single config file. A missing file reads as an empty
// config while unknown fields are rejected.
func Read(fp string) (*conf.Config, error) {
	c := &conf.Config{}
	f, err := os.Open(fp)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error parsing config file %q: %v", fp, err)
	}
	return c, nil
}

// Write saves c to fp, creating parent directories as needed.
func Write(fp string, c *conf.Config) error {
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0644)
}

// scalarPtrOverride makes a non-nil pointer to a scalar, such as *bool set
// to false, replace the destination as a whole.
type scalarPtrOverride struct{}

func (scalarPtrOverride) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() == reflect.Struct {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// Load merges every file returned by Paths. Unlike the other files, file
// must exist when given.
func Load(dir, file string) (*conf.Config, error) {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, fmt.Errorf("can't read config file: %w", err)
		}
	}
	paths, err := Paths(dir, file)
	if err != nil {
		return nil, err
	}
	res := &conf.Config{}
	for _, p := range paths {
		c, err := Read(p)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(res, c, mergo.WithOverride, mergo.WithTransformers(scalarPtrOverride{})); err != nil {
			return nil, err
		}
	}
	return res, nil
}
