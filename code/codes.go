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

// Connectivity
const (
	// NetworkDown covers a local network that is down (ENETDOWN).
	NetworkDown Code = "network_down"

	// RadioKilled covers an interface disabled by an RF kill switch (ERFKILL).
	RadioKilled Code = "radio_killed"

	// HostDown covers a remote host that stopped answering (EHOSTDOWN).
	HostDown Code = "host_down"

	// BrokenPipe covers writes to a pipe or socket with no reader (EPIPE).
	BrokenPipe Code = "broken_pipe"
)

// Resources
const (
	// ResourceExhausted covers running out of handles, processes, users or
	// links (EAGAIN, ENFILE, EMFILE, EUSERS, EMLINK).
	ResourceExhausted Code = "resource_exhausted"

	// OutOfMemory covers heap exhaustion (ENOMEM).
	OutOfMemory Code = "out_of_memory"

	// OutOfSpace covers storage, stream, buffer and quota exhaustion
	// (ENOSPC, ENOSR, ENOBUFS, EDQUOT).
	OutOfSpace Code = "out_of_space"

	// MessageTooLarge covers oversized messages (EMSGSIZE).
	MessageTooLarge Code = "message_too_large"
)

// Lookup and state
const (
	// NotFound covers missing files and anodes (ENOENT, ENOANO).
	NotFound Code = "not_found"

	// OwnerDead covers a robust mutex whose owner died (EOWNERDEAD).
	OwnerDead Code = "owner_dead"

	// Corrupted covers unrecoverable state (EUCLEAN, ENOTRECOVERABLE).
	Corrupted Code = "corrupted"

	// HardwarePoisoned covers memory pages poisoned by hardware (EHWPOISON).
	HardwarePoisoned Code = "hardware_poisoned"

	// DeviceError covers bad font files and similar device faults (EBFONT).
	DeviceError Code = "device_error"

	// Fault covers bad addresses (EFAULT).
	Fault Code = "fault"

	// LinkLoop covers too many levels of symbolic links (ELOOP).
	LinkLoop Code = "link_loop"

	// NoChildren covers waiting with no child processes (ECHILD).
	NoChildren Code = "no_children"
)

// Caller errors
const (
	// Invalid covers invalid arguments (EINVAL).
	Invalid Code = "invalid"

	// Deadlock covers a resource deadlock that would occur (EDEADLK).
	Deadlock Code = "deadlock"

	// BadMessage covers malformed messages (EBADMSG).
	BadMessage Code = "bad_message"

	// Interrupted covers calls interrupted by a signal (EINTR).
	Interrupted Code = "interrupted"
)

// Access
const (
	// PermissionDenied covers file permission failures (EACCES).
	PermissionDenied Code = "permission_denied"

	// NotPermitted covers operations reserved for the superuser (EPERM).
	NotPermitted Code = "not_permitted"
)

// Generic is reported when no catalog group matches.
const Generic Code = "generic"
