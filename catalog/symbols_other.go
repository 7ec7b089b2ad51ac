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

//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !plan9

package catalog

import "syscall"

// Only the POSIX core that every remaining syscall package defines.
func platformSymbols() map[string]syscall.Errno {
	return map[string]syscall.Errno{
		"EAGAIN": syscall.EAGAIN,
		"ENFILE": syscall.ENFILE,
		"EMFILE": syscall.EMFILE,
		"EMLINK": syscall.EMLINK,
		"ENOMEM": syscall.ENOMEM,
		"ENOSPC": syscall.ENOSPC,
		"ENOENT": syscall.ENOENT,
		"EFAULT": syscall.EFAULT,
		"EINVAL": syscall.EINVAL,
		"ELOOP":  syscall.ELOOP,
		"ECHILD": syscall.ECHILD,
		"EPIPE":  syscall.EPIPE,
		"EACCES": syscall.EACCES,
		"EINTR":  syscall.EINTR,
		"EPERM":  syscall.EPERM,
	}
}
