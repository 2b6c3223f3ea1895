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
	"strconv"
	"strings"
	"time"
	"unicode"

	"dirpx.dev/enumresponse"
	"dirpx.dev/enumresponse/adapter"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// DefaultDomain is the ErrorInfo domain used when Extras.Domain is empty.
const DefaultDomain = "enumresponse.dirpx.dev"

// Extras holds optional metadata attached to converted errors. All fields
// are optional.
type Extras struct {
	// Domain is the ErrorInfo domain, see DefaultDomain.
	Domain string

	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key). It is sent as errdetails.RequestInfo.
	CorrelationID string

	// RetryAfter is sent as errdetails.RetryInfo when positive.
	RetryAfter time.Duration

	// Metadata is merged into ErrorInfo.Metadata.
	Metadata map[string]string
}

// MetaFn extracts Extras from context and the error being converted.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, err error) Extras

// Option configures the interceptor.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger logs every converted error at debug level. A nil logger is
// ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors carrying an apis.Responder into gRPC status errors.
//
// The gRPC code is the projection of the response status (status.Code.GRPC);
// the status message is the responder's message when it has one and its
// reason phrase otherwise. The status details carry an errdetails.ErrorInfo
// whose Reason is the status name in UPPER_SNAKE_CASE and whose metadata
// holds "http_status" and "reason", plus optional RequestInfo and RetryInfo
// from metaFn.
//
// Errors that are already gRPC statuses, and errors without a responder,
// are returned unchanged.
func UnaryServerInterceptor(metaFn MetaFn, opts ...Option) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, error) Extras { return Extras{} }
	}
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
			return nil, err
		}
		if _, ok := enumresponse.Find(err); !ok {
			// Not ours; return as-is.
			return nil, err
		}

		out := Convert(err, metaFn(ctx, err))
		cfg.logger.Debug("converted error response",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", gstatus.Code(out)),
			zap.Error(err),
		)
		return nil, out
	}
}

// Convert turns err into a gRPC status error as described on
// UnaryServerInterceptor. Errors without a responder are reported as
// codes.Internal without details.
func Convert(err error, ex Extras) error {
	if err == nil {
		return nil
	}
	rs, ok := enumresponse.Find(err)
	if !ok {
		return gstatus.Error(gcodes.Internal, "internal error")
	}
	d := adapter.ToDescriptor(rs)

	msg := d.Message
	if msg == "" {
		msg = d.Reason
	}
	base := gstatus.New(gcodes.Code(d.GRPCCode), msg)

	domain := ex.Domain
	if domain == "" {
		domain = DefaultDomain
	}
	md := make(map[string]string, len(ex.Metadata)+2)
	for k, v := range ex.Metadata {
		md[k] = v
	}
	md["http_status"] = strconv.Itoa(d.HTTPStatus)
	if d.Reason != "" {
		md["reason"] = d.Reason
	}
	name := d.Name
	if name == "" {
		name = "STATUS_" + strconv.Itoa(d.HTTPStatus)
	} else {
		name = constantCase(name)
	}

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{Reason: name, Domain: domain, Metadata: md},
	}
	if ex.CorrelationID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.CorrelationID})
	}
	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}

	// Try to attach details. If it fails, return base.
	if with, werr := base.WithDetails(details...); werr == nil {
		return with.Err()
	}
	return base.Err()
}

// ExtractInfo pulls the errdetails.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// constantCase turns "TooManyRequests" into "TOO_MANY_REQUESTS" and
// "URITooLong" into "URI_TOO_LONG".
func constantCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
