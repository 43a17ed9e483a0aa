package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bsxkit/pkg/bsx"
)

// config is the optional YAML file named by --config.
type config struct {
	LineEnding string `yaml:"line_ending"`
	TextSuffix string `yaml:"text_suffix"`
	RebuiltExt string `yaml:"rebuilt_ext"`
	// Overwrite allows replacing existing output files. Default: true.
	Overwrite *bool `yaml:"overwrite"`
}

func defaultConfig() config {
	return config{
		LineEnding: "lf",
		TextSuffix: bsx.DefaultTextSuffix,
		RebuiltExt: bsx.DefaultRebuiltExt,
	}
}

func (c config) overwrite() bool {
	return c.Overwrite == nil || *c.Overwrite
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.TextSuffix == "" {
		c.TextSuffix = bsx.DefaultTextSuffix
	}
	if c.RebuiltExt == "" {
		c.RebuiltExt = bsx.DefaultRebuiltExt
	}
	return c, nil
}
