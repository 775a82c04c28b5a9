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

// The canonical code set.
//
// The numeric values are fixed by the google canonical code space and must
// never be renumbered: they travel across process boundaries via gRPC and
// appear in persisted diagnostics.
const (
	// OK indicates the operation completed successfully. An OK status carries
	// no message and no payloads; it is the zero value of Code.
	OK Code = 0

	// Cancelled indicates the operation was cancelled, typically by the
	// caller or by propagation from a cancelled step.
	//
	// Aggregation treats CANCELLED as the least informative failure class:
	// when a group of failures contains any other root code, that code is
	// preferred as the summary code.
	Cancelled Code = 1

	// Unknown indicates an error of unknown provenance, e.g. a failure
	// converted from an error space this package knows nothing about.
	Unknown Code = 2

	// InvalidArgument indicates the caller specified an invalid argument.
	// Unlike FailedPrecondition, the argument is bad regardless of the state
	// of the system (e.g. a malformed name).
	InvalidArgument Code = 3

	// DeadlineExceeded indicates the operation's deadline expired before it
	// could complete. The operation may still have completed successfully on
	// the other side.
	DeadlineExceeded Code = 4

	// NotFound indicates a requested entity (file, resource, key) was not
	// found.
	NotFound Code = 5

	// AlreadyExists indicates an attempt to create an entity that already
	// exists.
	AlreadyExists Code = 6

	// PermissionDenied indicates the caller does not have permission to
	// execute the operation. Not to be confused with Unauthenticated, which
	// means the caller's identity could not be established at all.
	PermissionDenied Code = 7

	// ResourceExhausted indicates some resource has been exhausted: a quota,
	// disk space, or a bounded pool.
	ResourceExhausted Code = 8

	// FailedPrecondition indicates the system is not in a state required for
	// the operation, and the caller should not retry until that state is
	// fixed (e.g. rmdir on a non-empty directory).
	FailedPrecondition Code = 9

	// Aborted indicates the operation was aborted because of a concurrency
	// issue such as a sequencer check failure or transaction abort. Retrying
	// at a higher level may succeed.
	Aborted Code = 10

	// OutOfRange indicates the operation was attempted past the valid range,
	// e.g. reading past end of file. Unlike InvalidArgument, the same request
	// may become valid as the system state changes.
	OutOfRange Code = 11

	// Unimplemented indicates the operation is not implemented, or not
	// supported/enabled in this service.
	Unimplemented Code = 12

	// Internal indicates an invariant expected by the underlying system has
	// been broken. Reserved for serious errors.
	Internal Code = 13

	// Unavailable indicates the service is currently unavailable. This is
	// most likely a transient condition; callers may retry with backoff.
	Unavailable Code = 14

	// DataLoss indicates unrecoverable data loss or corruption.
	DataLoss Code = 15

	// Unauthenticated indicates the request does not have valid
	// authentication credentials for the operation.
	Unauthenticated Code = 16
)
