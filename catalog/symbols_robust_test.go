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

//go:build freebsd || openbsd

package catalog

import (
	"syscall"
	"testing"

	"dirpx.dev/dhaiku/code"
)

func TestLookup_RobustMutexCodes(t *testing.T) {
	c := Default()
	if m := c.Lookup(symbolsOrFail(t, "EOWNERDEAD")); m.Code != code.OwnerDead {
		t.Fatalf("EOWNERDEAD -> %s, want %s", m.Code, code.OwnerDead)
	}
	if m := c.Lookup(symbolsOrFail(t, "ENOTRECOVERABLE")); m.Code != code.Corrupted {
		t.Fatalf("ENOTRECOVERABLE -> %s, want %s", m.Code, code.Corrupted)
	}
}

func symbolsOrFail(t *testing.T, name string) syscall.Errno {
	t.Helper()
	e, ok := Symbols()[name]
	if !ok {
		t.Fatalf("platform symbols lack %s", name)
	}
	return e
}
