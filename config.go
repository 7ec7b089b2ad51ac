/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dhaiku

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dhaiku/catalog"
)

// ErrInvalidConfig is returned for configuration values that cannot be
// turned into printer options.
var ErrInvalidConfig = errors.New("dhaiku: invalid config")

// Config is the file form of the printer options.
//
//	output: stderr          # or stdout
//	system_message: true
//	log_level: debug        # empty disables logging
//	seed: {hi: 1, lo: 2}    # fixed selection sequence, for reproducible output
type Config struct {
	Output        string `yaml:"output"`
	SystemMessage bool   `yaml:"system_message"`
	LogLevel      string `yaml:"log_level"`
	Seed          *Seed  `yaml:"seed"`
}

// Seed is a PCG seed pair.
type Seed struct {
	Hi uint64 `yaml:"hi"`
	Lo uint64 `yaml:"lo"`
}

// ParseConfig decodes YAML. Unknown fields are rejected; empty input yields
// the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dhaiku: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dhaiku: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := c.writer(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// Options converts c into printer options.
func (c Config) Options() ([]Option, error) {
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	opts := []Option{WithWriter(w), WithSystemMessage(c.SystemMessage)}

	if lvl, err := c.level(); err != nil {
		return nil, err
	} else if lvl != nil {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: *lvl})
		opts = append(opts, WithLogger(slog.New(h)))
	}

	if c.Seed != nil {
		cat, err := catalog.New(catalog.Builtin(), catalog.GenericHaiku(),
			catalog.WithSource(rand.NewPCG(c.Seed.Hi, c.Seed.Lo)))
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCatalog(cat))
	}
	return opts, nil
}

// Printer builds a Printer from c.
func (c Config) Printer() (*Printer, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return NewPrinter(opts...), nil
}

// writer returns nil for stderr so the stream is resolved at write time.
func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case "", "stderr":
		return nil, nil
	case "stdout":
		return os.Stdout, nil
	}
	return nil, fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
}

func (c Config) level() (*slog.Level, error) {
	if c.LogLevel == "" {
		return nil, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return &lvl, nil
}
