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

// Package code defines the closed set of canonical status codes used by
// statusx.
//
// A "code" is the top-level, machine-readable classification of an operation
// outcome. The set is closed and numbered identically to the google canonical
// code space (the same numbering used by gRPC), so conversions to and from
// google.golang.org/grpc/codes are lossless.
//
// Codes render as stable uppercase identifiers such as "NOT_FOUND" or
// "DEADLINE_EXCEEDED". A numeric value outside the known set is not an error:
// it renders as "UNKNOWN_CODE(<n>)" and round-trips through conversions
// unchanged.
//
// This package defines the canonical representation and the functions that
// convert between names, numeric values and transport code spaces.
package code
