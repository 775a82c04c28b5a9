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

// Package statusx carries, extends and summarizes failure information across
// chains of operations that fail independently and concurrently.
//
// The two central types are Status — a cheap tagged success/failure value
// with a canonical code, a message, an optional stack trace and opaque typed
// payloads — and Group, which folds many child statuses into a single
// representative one, separating root causes from cancellation cascade noise
// and bounding the output size. Group can additionally attach the most
// recent warning and error log lines, collected process-wide by the
// loghistory package, to its summaries.
//
// Producers build statuses:
//
//	st := statusx.New(code.NotFound, "shard 3: key missing",
//	    statusx.WithCapturedStack())
//
// and coordinators aggregate them:
//
//	var g statusx.Group
//	for _, st := range results {
//	    g.Update(st)
//	}
//	g.AttachLogMessages()
//	final := g.SummaryStatus()
//
// The grpcx and httpx subpackages adapt statuses to gRPC errors and HTTP
// responses; the code, typeurl, stack and loghistory subpackages are the
// leaves they are all built from.
package statusx
