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

//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package catalog

import (
	"syscall"
	"testing"

	"dirpx.dev/dhaiku/code"
)

func TestLookup_UnixGroups(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  code.Code
	}{
		{syscall.ENETDOWN, code.NetworkDown},
		{syscall.EHOSTDOWN, code.HostDown},
		{syscall.EDEADLK, code.Deadlock},
		{syscall.EBADMSG, code.BadMessage},
		{syscall.EDQUOT, code.OutOfSpace},
		{syscall.ENOBUFS, code.OutOfSpace},
		{syscall.EMSGSIZE, code.MessageTooLarge},
		{syscall.EUSERS, code.ResourceExhausted},
	}
	c := Default()
	for _, tt := range tests {
		m := c.Lookup(tt.errno)
		if m.Generic || m.Code != tt.want {
			t.Fatalf("Lookup(%d) = %s (generic=%v), want %s", int(tt.errno), m.Code, m.Generic, tt.want)
		}
	}
}

func TestSymbols_UnixNetworkCodes(t *testing.T) {
	syms := Symbols()
	for name, want := range map[string]syscall.Errno{
		"ENETDOWN":  syscall.ENETDOWN,
		"EHOSTDOWN": syscall.EHOSTDOWN,
	} {
		if got, ok := syms[name]; !ok || got != want {
			t.Fatalf("Symbols()[%s] = %d, %v; want %d", name, got, ok, want)
		}
	}
}
