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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/enumresponse"
	"dirpx.dev/enumresponse/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

func call(t *testing.T, icpt grpc.UnaryServerInterceptor, herr error) error {
	t.Helper()
	resp, err := icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		if herr != nil {
			return nil, herr
		}
		return "ok", nil
	})
	if err == nil {
		assert.Equal(t, "ok", resp)
	}
	return err
}

func TestInterceptor_ConvertsResponder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	icpt := UnaryServerInterceptor(func(ctx context.Context, err error) Extras {
		return Extras{CorrelationID: "req-7", RetryAfter: 2 * time.Second, Metadata: map[string]string{"shard": "3"}}
	}, WithLogger(zap.New(core)))

	herr := fmt.Errorf("get user: %w", enumresponse.E(status.NotFound, "user 42 not found"))
	err := call(t, icpt, herr)
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, gcodes.NotFound, st.Code())
	assert.Equal(t, "user 42 not found", st.Message())

	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", ei.GetReason())
	assert.Equal(t, DefaultDomain, ei.GetDomain())
	assert.Equal(t, map[string]string{"http_status": "404", "reason": "Not Found", "shard": "3"}, ei.GetMetadata())

	var sawRequest, sawRetry bool
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.RequestInfo:
			sawRequest = d.GetRequestId() == "req-7"
		case *errdetails.RetryInfo:
			sawRetry = d.GetRetryDelay().AsDuration() == 2*time.Second
		}
	}
	assert.True(t, sawRequest, "request info")
	assert.True(t, sawRetry, "retry info")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, info.FullMethod, logs.All()[0].ContextMap()["method"])
}

func TestInterceptor_PassThrough(t *testing.T) {
	icpt := UnaryServerInterceptor(nil)

	assert.NoError(t, call(t, icpt, nil))

	plain := errors.New("boom")
	assert.Same(t, plain, call(t, icpt, plain))

	already := gstatus.Error(gcodes.Aborted, "aborted")
	got := call(t, icpt, already)
	assert.Equal(t, gcodes.Aborted, gstatus.Code(got))
	_, ok := ExtractInfo(got)
	assert.False(t, ok)
}

func TestConvert_ReasonAsMessage(t *testing.T) {
	err := Convert(enumresponse.E(status.TooManyRequests, "").WithReason("Quota Exceeded"), Extras{Domain: "users.example.com"})
	st, _ := gstatus.FromError(err)
	assert.Equal(t, gcodes.ResourceExhausted, st.Code())
	assert.Equal(t, "Quota Exceeded", st.Message())

	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "TOO_MANY_REQUESTS", ei.GetReason())
	assert.Equal(t, "users.example.com", ei.GetDomain())
}

func TestConvert_UnregisteredStatus(t *testing.T) {
	err := Convert(enumresponse.E(status.Code(499), "client went away"), Extras{})
	st, _ := gstatus.FromError(err)
	assert.Equal(t, gcodes.Unknown, st.Code())
	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "STATUS_499", ei.GetReason())
	assert.NotContains(t, ei.GetMetadata(), "reason")
}

func TestConvert_NonResponder(t *testing.T) {
	assert.NoError(t, Convert(nil, Extras{}))
	err := Convert(errors.New("secret"), Extras{})
	assert.Equal(t, gcodes.Internal, gstatus.Code(err))
	assert.NotContains(t, err.Error(), "secret")
}

func TestConstantCase(t *testing.T) {
	for in, want := range map[string]string{
		"OK":                      "OK",
		"NotFound":                "NOT_FOUND",
		"ImATeapot":               "IM_A_TEAPOT",
		"URITooLong":              "URI_TOO_LONG",
		"HTTPVersionNotSupported": "HTTP_VERSION_NOT_SUPPORTED",
	} {
		assert.Equal(t, want, constantCase(in), in)
	}
}
