// cmd/registry/config.go
// This file loads the optional YAML config file. Values given as flags on
// the command line always win over the file.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors registryConfig for the YAML config file. Pointer fields
// tell "absent" apart from a zero value.
type fileConfig struct {
	LogLevel          *string `yaml:"log_level"`
	LogFormat         *string `yaml:"log_format"`
	ReleaseDeletedIDs *bool   `yaml:"release_deleted_ids"`
}

// load applies the config file named by --config, if any, to every setting
// that was not set explicitly on the command line.
func (c *registryConfig) load(flags *pflag.FlagSet) error {
	if c.configFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.configFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	fc, err := parseFileConfig(raw)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", c.configFile, err)
	}

	if fc.LogLevel != nil && !flags.Changed("log-level") {
		c.logLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil && !flags.Changed("log-format") {
		c.logFormat = *fc.LogFormat
	}
	if fc.ReleaseDeletedIDs != nil && !flags.Changed("release-deleted-ids") {
		c.releaseDeletedIDs = *fc.ReleaseDeletedIDs
	}
	return nil
}

// parseFileConfig decodes raw, rejecting unknown keys. An empty file is valid.
func parseFileConfig(raw []byte) (fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, err
	}
	return fc, nil
}
