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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// Code is a canonical status code.
//
// It is defined as a separate numeric type (not codes.Code directly) so that
// other packages can explicitly declare which code space they operate in and
// so that the canonical uppercase rendering below stays under our control.
//
// The zero value is OK.
type Code int32

var (
	// ErrCodeInvalid is returned when a string cannot be parsed as a
	// canonical code name.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code format" vs "this is some other error".
	ErrCodeInvalid = errors.New("statusx: invalid code name")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// names maps every known code to its canonical uppercase identifier.
//
// The spellings are part of the external contract (they appear verbatim in
// Status.String output) and must not drift toward the grpc-go spellings,
// which differ for some values ("Canceled" vs "CANCELLED").
var names = map[Code]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA_LOSS",
	Unauthenticated:    "UNAUTHENTICATED",
}

// byName is the reverse of names, built once for Parse.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()

// Name returns the canonical uppercase identifier for c.
//
// Name is a pure, total function: a numeric value outside the known set is
// rendered as "UNKNOWN_CODE(<n>)" rather than rejected.
func Name(c Code) string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN_CODE(%d)", int32(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return Name(c)
}

// Valid reports whether c is one of the known canonical codes.
func Valid(c Code) bool {
	_, ok := names[c]
	return ok
}

// Parse takes a user-provided string, normalizes it and resolves it against
// the canonical name set. On success it returns the matching Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	c, ok := byName[s]
	if !ok {
		return Unknown, ErrCodeInvalid
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result resolves — callers should still call
// Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// GRPC converts c into the grpc-go code space.
//
// The numbering is shared, so the conversion is a cast; it is kept as a
// method so call sites document the space they are crossing into.
func (c Code) GRPC() codes.Code {
	return codes.Code(c)
}

// FromGRPC converts a grpc-go code into a Code. Out-of-set numeric values are
// carried through unchanged and render via the UNKNOWN_CODE fallback.
func FromGRPC(c codes.Code) Code {
	return Code(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical uppercase representation, including the
// UNKNOWN_CODE fallback for out-of-set values.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(Name(c)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
