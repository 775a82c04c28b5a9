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

// Package loghistory collects recent warning and error log lines so status
// aggregation can attach them to failure summaries.
//
// The package keeps a small FIFO ring of formatted log lines behind a mutex.
// Lines reach the ring either directly via Sink.Observe, or through Handler,
// an slog.Handler tee that feeds the ring while passing every record through
// to an underlying handler unchanged.
//
// Most programs use the process-wide Default sink: Enable installs the tee
// around slog.Default exactly once, reading the retained-line count from the
// STATUSX_LOG_HISTORY_SIZE environment variable (default 5; a non-positive
// value disables collection entirely). Tests construct private sinks with New
// and wire them wherever they want.
package loghistory
