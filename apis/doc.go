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

// Package apis holds the small capability interfaces that let foreign error
// types interoperate with statusx without importing it.
//
// A library that defines its own error type can implement Coded (and
// optionally Payloader / Traced) and statusx.FromError will preserve its
// classification instead of collapsing everything to UNKNOWN. The interfaces
// live in their own package so both sides can depend on them without a cycle.
package apis
