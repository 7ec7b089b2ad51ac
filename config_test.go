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
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
output: stdout
system_message: true
log_level: debug
seed:
  hi: 1
  lo: 2
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Output != "stdout" || !cfg.SystemMessage || cfg.LogLevel != "debug" {
		t.Fatalf("ParseConfig = %+v", cfg)
	}
	if cfg.Seed == nil || cfg.Seed.Hi != 1 || cfg.Seed.Lo != 2 {
		t.Fatalf("seed = %+v", cfg.Seed)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil): %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("ParseConfig(nil) = %+v, want zero", cfg)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown field": "colour: red\n",
		"bad output":    "output: printer\n",
		"bad level":     "log_level: loud\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(in)); err == nil {
				t.Fatalf("ParseConfig(%q) expected error", in)
			}
		})
	}
	if _, err := ParseConfig([]byte("output: printer\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad output error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dhaiku.yaml")
	if err := os.WriteFile(path, []byte("system_message: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.SystemMessage {
		t.Fatalf("LoadConfig = %+v", cfg)
	}
	if _, err := cfg.Printer(); err != nil {
		t.Fatalf("Printer: %v", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig(missing) expected error")
	}
}

func TestConfig_SeedIsReproducible(t *testing.T) {
	cfg := Config{Seed: &Seed{Hi: 9, Lo: 9}}
	var a, b bytes.Buffer
	optsA, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	optsB, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	pa := NewPrinter(append(optsA, WithWriter(&a))...)
	pb := NewPrinter(append(optsB, WithWriter(&b))...)
	for i := 0; i < 20; i++ {
		if err := pa.Print("", syscall.ENOENT); err != nil {
			t.Fatalf("Print: %v", err)
		}
		if err := pb.Print("", syscall.ENOENT); err != nil {
			t.Fatalf("Print: %v", err)
		}
	}
	if a.String() != b.String() {
		t.Fatal("equal seeds must print equal sequences")
	}
}
