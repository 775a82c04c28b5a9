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

// Package grpcx adapts statusx statuses to the gRPC error model.
//
// The wire form is google.rpc.Status: the canonical code number, the
// message, and one Any detail per payload with the payload's type url and
// raw bytes. Conversions in both directions are lossless for code, message
// and payloads; stack traces stay process-local.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/statusx"
	"dirpx.dev/statusx/apis"
	"dirpx.dev/statusx/code"

	rpcstatus "google.golang.org/genproto/googleapis/rpc/status"
)

// ToProto converts a Status into its google.rpc.Status wire form. An OK
// status converts to a proto with code 0 and no details.
func ToProto(s statusx.Status) *rpcstatus.Status {
	p := &rpcstatus.Status{
		Code:    int32(s.Code()),
		Message: s.Message(),
	}
	s.ForEachPayload(func(typeURL string, payload []byte) {
		p.Details = append(p.Details, &anypb.Any{TypeUrl: typeURL, Value: payload})
	})
	return p
}

// FromProto converts a google.rpc.Status back into a Status. A nil proto or
// a zero code yields OK; any message or details riding on a zero code are
// dropped, preserving the "OK carries nothing" invariant.
func FromProto(p *rpcstatus.Status) statusx.Status {
	if p == nil || code.Code(p.GetCode()) == code.OK {
		return statusx.OK()
	}
	st := statusx.New(code.Code(p.GetCode()), p.GetMessage())
	for _, d := range p.GetDetails() {
		st.SetPayload(d.GetTypeUrl(), d.GetValue())
	}
	return st
}

// ToError converts a Status into a gRPC error carrying the full wire form.
// An OK status converts to nil.
func ToError(s statusx.Status) error {
	if s.IsOK() {
		return nil
	}
	return gstatus.FromProto(ToProto(s)).Err()
}

// FromError converts an error received from a gRPC call back into a Status.
// Errors that did not originate from the gRPC status machinery fall through
// to statusx.FromError.
func FromError(err error) statusx.Status {
	if err == nil {
		return statusx.OK()
	}
	if gs, ok := gstatus.FromError(err); ok && gs != nil {
		return FromProto(gs.Proto())
	}
	return statusx.FromError(err)
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors carrying a status classification into rich gRPC errors,
// with one Any detail per payload.
//
// Errors that do not implement the apis capability interfaces are not ours
// and are returned as-is, so handlers already speaking gstatus keep their
// behavior.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var coded apis.Coded
		if !errors.As(err, &coded) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToError(statusx.FromError(err))
	}
}
