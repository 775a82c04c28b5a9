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

// Package typeurl provides parsing, normalization and validation for the
// type-url strings that key status payloads.
//
// Payloads attached to a failing status are opaque byte blobs keyed by a
// type url in the protobuf Any convention: "<authority>/<fully.Qualified.Name>".
// The Status payload API itself accepts plain strings (any unique key works
// at that layer); this package is for producers and transport adapters that
// want their keys validated once and then treated as canonical.
//
// The empty url is explicitly allowed and means "no url provided".
package typeurl
