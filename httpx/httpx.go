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

// Package httpx adapts statusx statuses to HTTP responses.
//
// The response body is the google.rpc.Status wire form serialized with
// protojson, so clients of the gRPC surface and of the HTTP surface parse
// one shape. The HTTP status line comes from the fixed canonical mapping of
// the closed code set.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/statusx"
	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/grpcx"
)

// StatusCode maps a canonical code to its HTTP status. The mapping is total:
// out-of-set codes report 500 like INTERNAL does.
func StatusCode(c code.Code) int {
	switch c {
	case code.OK:
		return http.StatusOK
	case code.Cancelled:
		return 499 // client closed request
	case code.InvalidArgument, code.FailedPrecondition, code.OutOfRange:
		return http.StatusBadRequest
	case code.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case code.NotFound:
		return http.StatusNotFound
	case code.AlreadyExists, code.Aborted:
		return http.StatusConflict
	case code.PermissionDenied:
		return http.StatusForbidden
	case code.Unauthenticated:
		return http.StatusUnauthorized
	case code.ResourceExhausted:
		return http.StatusTooManyRequests
	case code.Unimplemented:
		return http.StatusNotImplemented
	case code.Unavailable:
		return http.StatusServiceUnavailable
	case code.Unknown, code.Internal, code.DataLoss:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Writer is a thin adapter that knows how to turn a failing Status into an
// HTTP response.
type Writer struct {
	// Marshal controls the JSON encoding of the body. The zero value is
	// suitable for production use.
	Marshal protojson.MarshalOptions
}

// Write serializes s as a google.rpc.Status JSON body and writes it with the
// mapped HTTP status. An OK status writes nothing and returns immediately;
// a success response is the handler's business, not an error writer's.
func (w Writer) Write(rw http.ResponseWriter, s statusx.Status) {
	if s.IsOK() {
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(StatusCode(s.Code()))

	// IMPORTANT: the body must go through protojson, not encoding/json, to
	// serialize the Any details and field names (json_name) correctly.
	p := grpcx.ToProto(s)
	b, err := w.Marshal.Marshal(p)
	if err != nil {
		// protojson can only render an Any detail whose type is linked into
		// this binary. Payloads are opaque, so that is not guaranteed; keep
		// the code and message rather than fail the whole response.
		p.Details = nil
		b, _ = w.Marshal.Marshal(p)
	}
	_, _ = rw.Write(b)
}
