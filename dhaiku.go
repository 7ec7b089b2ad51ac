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

// Package dhaiku reports platform errors as haiku.
//
// Lookup and Generic return a three-line haiku for an errno. Emit and
// EmitError print one to standard error, optionally prefixing every line:
//
//	if _, err := os.Open(path); err != nil {
//	    dhaiku.EmitError("myapp", err)
//	}
//
// prints, for a missing file, something like
//
//	myapp: Spring will come again,
//	myapp: But it will not bring with it
//	myapp: Any of your files.
//
// Wrap turns any error into an *Error carrying the haiku, its theme code and
// the errno reason, which the grpcx and httpx adapters project onto
// transport statuses.
package dhaiku

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"dirpx.dev/dhaiku/catalog"
	"dirpx.dev/dhaiku/code"
	"dirpx.dev/dhaiku/reason"
)

// Lookup returns a haiku for errno and whether it came from the generic
// fallback list. It never fails.
func Lookup(errno syscall.Errno) (string, bool) {
	m := catalog.Default().Lookup(errno)
	return m.Haiku, m.Generic
}

// Generic returns one of the generic haiku.
func Generic() string {
	return catalog.Default().Generic()
}

// Error is an error explained by a haiku.
type Error struct {
	// Code is the theme of the catalog group, or code.Generic.
	Code code.Code

	// Reason names the errno symbol, e.g. "errno.enoent". Empty for
	// generic haiku.
	Reason reason.Reason

	// Errno is the platform error number found in the cause, or 0.
	Errno syscall.Errno

	// Message is the haiku, three newline-terminated lines.
	Message string

	// Generic reports whether Message came from the fallback list.
	Generic bool

	// Cause is the wrapped error.
	Cause error
}

// Wrap explains err with a haiku from the default catalog. It returns nil
// for a nil err.
func Wrap(err error) *Error {
	return wrap(catalog.Default(), err)
}

func wrap(c *catalog.Catalog, err error) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	errno, _ := ErrnoOf(err)
	m := c.Lookup(errno)
	return &Error{
		Code:    m.Code,
		Reason:  m.Reason,
		Errno:   m.Errno,
		Message: m.Haiku,
		Generic: m.Generic,
		Cause:   err,
	}
}

// ErrnoOf extracts the first syscall.Errno in err's chain.
func ErrnoOf(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}

// Error implements the error interface as
//
//	<code>: <first line>
//
// or, when Reason is present,
//
//	<code>:<reason>: <first line>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	first, _, _ := strings.Cut(e.Message, "\n")
	if e.Reason != reason.Empty {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, first)
	}
	return fmt.Sprintf("%s: %s", e.Code, first)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode returns the theme code as a string.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorReason returns the reason as a string.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// Lines returns the haiku lines without their newlines.
func (e *Error) Lines() []string {
	return strings.Split(strings.TrimSuffix(e.Message, "\n"), "\n")
}
