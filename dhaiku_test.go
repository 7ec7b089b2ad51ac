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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"testing"

	"dirpx.dev/dhaiku/catalog"
	"dirpx.dev/dhaiku/code"
)

func TestLookup(t *testing.T) {
	want := catalog.Default().Candidates(syscall.EACCES)
	h, generic := Lookup(syscall.EACCES)
	if generic {
		t.Fatalf("Lookup(EACCES) reported generic")
	}
	if !slices.Contains(want, h) {
		t.Fatalf("Lookup(EACCES) = %q, not a permission haiku", h)
	}

	h, generic = Lookup(syscall.Errno(0x7ffe))
	if !generic {
		t.Fatalf("Lookup(unknown) must be generic")
	}
	if !slices.Contains(catalog.GenericHaiku(), h) {
		t.Fatalf("Lookup(unknown) = %q, not a generic haiku", h)
	}
	if !slices.Contains(catalog.GenericHaiku(), Generic()) {
		t.Fatalf("Generic() returned a non-generic haiku")
	}
}

func TestWrap_PathError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "my-novel.txt"))
	if err == nil {
		t.Fatal("expected open error")
	}
	e := Wrap(err)
	if e.Code != code.NotFound || e.Generic {
		t.Fatalf("Wrap(ENOENT) = %q generic=%v", e.Code, e.Generic)
	}
	if e.Errno != syscall.ENOENT {
		t.Fatalf("Errno = %d, want ENOENT", e.Errno)
	}
	if !errors.Is(e, fs.ErrNotExist) {
		t.Fatal("errors.Is(fs.ErrNotExist) failed through Unwrap")
	}
	if len(e.Lines()) != 3 {
		t.Fatalf("Lines() = %q", e.Lines())
	}
	wantPrefix := "not_found:errno.enoent: " + e.Lines()[0]
	if e.Error() != wantPrefix {
		t.Fatalf("Error() = %q, want %q", e.Error(), wantPrefix)
	}
}

func TestWrap_Generic(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	e := Wrap(errors.New("boom"))
	if !e.Generic || e.Code != code.Generic || e.Reason != "" {
		t.Fatalf("Wrap(plain) = %+v", e)
	}
	if !strings.HasPrefix(e.Error(), "generic: ") {
		t.Fatalf("Error() = %q", e.Error())
	}
	again := Wrap(fmt.Errorf("ctx: %w", e))
	if again != e {
		t.Fatal("Wrap must reuse an *Error already in the chain")
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil *Error must print <nil>")
	}
}

func TestErrnoOf(t *testing.T) {
	errno, ok := ErrnoOf(fmt.Errorf("wrapped: %w", syscall.EPIPE))
	if !ok || errno != syscall.EPIPE {
		t.Fatalf("ErrnoOf = %d, %v", errno, ok)
	}
	if _, ok := ErrnoOf(errors.New("plain")); ok {
		t.Fatal("ErrnoOf(plain) must report false")
	}
}
