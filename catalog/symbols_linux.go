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

//go:build linux

package catalog

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func platformSymbols() map[string]syscall.Errno {
	return map[string]syscall.Errno{
		"ENETDOWN":        unix.ENETDOWN,
		"ERFKILL":         unix.ERFKILL,
		"EAGAIN":          unix.EAGAIN,
		"EWOULDBLOCK":     unix.EWOULDBLOCK,
		"ENFILE":          unix.ENFILE,
		"EMFILE":          unix.EMFILE,
		"EUSERS":          unix.EUSERS,
		"EMLINK":          unix.EMLINK,
		"ENOMEM":          unix.ENOMEM,
		"ENOSPC":          unix.ENOSPC,
		"ENOSR":           unix.ENOSR,
		"ENOBUFS":         unix.ENOBUFS,
		"EDQUOT":          unix.EDQUOT,
		"ENOANO":          unix.ENOANO,
		"ENOENT":          unix.ENOENT,
		"EOWNERDEAD":      unix.EOWNERDEAD,
		"EMSGSIZE":        unix.EMSGSIZE,
		"EHWPOISON":       unix.EHWPOISON,
		"EUCLEAN":         unix.EUCLEAN,
		"ENOTRECOVERABLE": unix.ENOTRECOVERABLE,
		"EHOSTDOWN":       unix.EHOSTDOWN,
		"EBFONT":          unix.EBFONT,
		"EFAULT":          unix.EFAULT,
		"EINVAL":          unix.EINVAL,
		"EDEADLK":         unix.EDEADLK,
		"EBADMSG":         unix.EBADMSG,
		"ELOOP":           unix.ELOOP,
		"ECHILD":          unix.ECHILD,
		"EPIPE":           unix.EPIPE,
		"EACCES":          unix.EACCES,
		"EINTR":           unix.EINTR,
		"EPERM":           unix.EPERM,
	}
}
