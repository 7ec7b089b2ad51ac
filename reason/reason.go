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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated form of a reason.
type Reason string

const (
	// MinLength is the minimum length for a non-empty reason.
	MinLength = 3

	// MaxLength is the maximum length for a valid reason.
	MaxLength = 128
)

// ErrnoPrefix is the first segment of every reason derived from an errno
// symbol.
const ErrnoPrefix = "errno"

// reasonFmt accepts 1 to 4 dot-separated segments of [a-z][a-z0-9_]*.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match the
	// dotted segment format.
	ErrReasonInvalidFormat = errors.New("dhaiku: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("dhaiku: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason".
var Empty Reason = ""

// Normalize trims space, lowercases, turns '/' into '.' and '-' into '_'.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string yields Empty and no
// error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on error. Unlike Parse it rejects the
// empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("dhaiku: empty reason in MustParse")
	}
	return r
}

// FromErrno builds the reason for an errno symbol such as "ENOENT".
func FromErrno(symbol string) (Reason, error) {
	if strings.TrimSpace(symbol) == "" {
		return Empty, ErrReasonInvalidFormat
	}
	return Parse(ErrnoPrefix + "." + symbol)
}

// MustFromErrno is like FromErrno but panics on error.
func MustFromErrno(symbol string) Reason {
	r, err := FromErrno(symbol)
	if err != nil {
		panic(err)
	}
	return r
}

// Symbol returns the upper-case errno symbol of an errno-derived reason and
// true, or "" and false for any other reason.
func (r Reason) Symbol() (string, bool) {
	rest, ok := strings.CutPrefix(string(r), ErrnoPrefix+".")
	if !ok || rest == "" || strings.Contains(rest, ".") {
		return "", false
	}
	return strings.ToUpper(rest), true
}

// Validate checks r. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the reason as a string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
