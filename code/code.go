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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated form of a theme code.
type Code string

const (
	// MinLength is the minimum length for a valid code.
	MinLength = 3

	// MaxLength is the maximum length for a valid code.
	MaxLength = 64
)

// codeFmt ties the quantifier {2,63} to MinLength and MaxLength.
// Keep them in sync.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as a
// theme code.
var ErrCodeInvalid = errors.New("dhaiku: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero code. It never identifies a catalog group.
var Empty Code = ""

// Parse normalizes and validates s.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims surrounding space, lowercases and turns '-' into '_'.
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports whether c is canonical. Empty is invalid.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is normalized
// before validation.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
