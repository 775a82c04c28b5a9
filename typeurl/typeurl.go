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

package typeurl

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// URL is the canonical, validated representation of a payload type url.
//
// Type urls key the opaque payloads attached to failing statuses. They follow
// the protobuf Any convention: an optional authority prefix, a slash, and a
// fully-qualified type name.
//
// Example valid urls:
//
//   - "type.googleapis.com/google.rpc.RetryInfo"
//   - "type.dirpx.dev/worker.CoordinationError"
//   - "internal/replica_state"
//
// The intent is to make it easy to build such keys from known package and
// message names, and to let transport adapters pack the payload bytes into
// Any values without re-validating at every call site.
type URL string

// MinLength and MaxLength define the allowed length range for a canonical
// type url.
//
// We allow urls to be fairly long because they usually carry a full domain
// prefix plus a dotted message path.
const (
	// MinLength is the minimum length for a non-empty url.
	// The shortest meaningful form is a one-letter prefix, a slash, and a
	// one-letter name ("a/b" = 3). Remember: the empty string is still
	// allowed and means "no url provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid url.
	// 256 characters is enough for deep message paths under long domains
	// while still bounding key size in payload maps.
	MaxLength = 256
)

const (
	// urlFmt is the canonical regular expression used to validate type urls.
	//
	// We accept an authority/prefix part and a type-name part separated by a
	// single slash:
	//
	//   - the prefix starts with a lowercase letter and continues with
	//     lowercase letters, digits, dots or dashes (host-like);
	//   - the name starts with a letter and continues with letters, digits,
	//     dots or underscores (fully-qualified proto name like);
	//
	// Examples that match:
	//
	//	"type.googleapis.com/google.rpc.RetryInfo"
	//	"internal/replica_state"
	//
	// Examples that DO NOT match:
	//
	//	"no_slash_at_all"        (missing separator)
	//	"type..com//X"           (empty segment)
	//	"/google.rpc.RetryInfo"  (empty prefix)
	//
	// NOTE: empty string ("") is treated separately as "optional url" and
	// does not go through this regexp.
	urlFmt = `^[a-z][a-z0-9.\-]*/[A-Za-z][A-Za-z0-9._]*$`
)

var (
	// urlRe is the compiled regexp for the above pattern.
	urlRe = regexp.MustCompile(urlFmt)
)

var (
	// ErrURLInvalidFormat is returned when a type url does not conform to
	// the expected format.
	ErrURLInvalidFormat = errors.New("statusx: invalid type url format")
	// ErrURLInvalidLength is returned when a type url is too short or too long.
	ErrURLInvalidLength = errors.New("statusx: invalid type url length")
)

// Ensure URL implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*URL)(nil)
	_ encoding.TextUnmarshaler = (*URL)(nil)
)

// Empty is the zero-value url. It is considered "not provided" and is valid
// to store in structs. Callers that require a non-empty, canonical url should
// explicitly call Validate.
var Empty URL = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical url form.
//
// We do *very* conservative transformations:
//
//   - trim spaces;
//   - lower-case the authority prefix (the part before the first slash);
//
// The type-name part is left untouched because proto message names are case
// sensitive. Normalize does NOT guarantee validity — callers should still
// call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '/'); i > 0 {
		s = strings.ToLower(s[:i]) + s[i:]
	}
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical URL value.
//
// Parse also accepts the empty string and returns typeurl.Empty without
// error. This is what makes URL an "optional" value.
func Parse(s string) (URL, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return URL(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level url constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) URL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if u == Empty {
		panic("statusx: empty type url in MustParse")
	}
	return u
}

// Validate checks whether the provided URL is in canonical form.
//
// The empty url ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(u URL) error {
	if u == Empty {
		return nil
	}
	return validate(string(u))
}

// String returns the canonical string representation of the url.
func (u URL) String() string {
	return string(u)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty url as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (u URL) MarshalText() ([]byte, error) {
	if err := Validate(u); err != nil {
		return nil, err
	}
	if u == Empty {
		return []byte{}, nil
	}
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce typeurl.Empty.
func (u *URL) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrURLInvalidLength
	}
	if !urlRe.MatchString(s) {
		return ErrURLInvalidFormat
	}
	return nil
}
