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

package httpx

import (
	"net/http"
	"strconv"

	"dirpx.dev/enumresponse/adapter"
	"dirpx.dev/enumresponse/apis"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error. All fields are optional and typically come from request context,
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer turns errors into HTTP error responses.
//
// The status comes from the first apis.Responder in the error chain, see
// adapter.ToView.
type Writer struct {
	// Logger receives one entry per written response. Nil disables logging.
	Logger *zap.Logger
}

// Write writes err as a JSON error response. A nil err writes nothing.
//
// No redaction is performed beyond what adapter.ToView does: messages and
// details of responders are exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}

	view := adapter.ToView(err)
	body, merr := Body(view, meta)
	if merr != nil {
		log.Error("encode error response", zap.Error(merr), zap.Int("status", view.Status))
		body = nil
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(view.Status)
	if body != nil {
		_, _ = rw.Write(body)
	}

	fields := []zap.Field{
		zap.Int("status", view.Status),
		zap.String("reason", view.Reason),
		zap.Error(err),
	}
	if meta.Correlation != "" {
		fields = append(fields, zap.String("correlation", meta.Correlation))
	}
	if view.Status >= http.StatusInternalServerError {
		log.Warn("error response", fields...)
		return
	}
	log.Debug("error response", fields...)
}

// Body encodes view and meta as the JSON body of an error response.
//
// The body is built as a google.protobuf.Struct and marshaled through
// protojson, so that field names and number formatting match what gRPC
// gateways emit.
func Body(view apis.ErrorView, meta Meta) ([]byte, error) {
	m := map[string]any{
		"status": view.Status,
	}
	if view.Name != "" {
		m["name"] = view.Name
	}
	if view.Reason != "" {
		m["reason"] = view.Reason
	}
	if view.Message != "" {
		m["message"] = view.Message
	}
	if meta.Correlation != "" {
		m["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		m["trace_id"] = meta.TraceID
	}
	if meta.SpanID != "" {
		m["span_id"] = meta.SpanID
	}
	if meta.RetryAfterSeconds > 0 {
		m["retry_after_seconds"] = meta.RetryAfterSeconds
	}
	if len(view.Details) > 0 {
		ds := make([]any, 0, len(view.Details))
		for _, d := range view.Details {
			dm := map[string]any{}
			if d.Type != "" {
				dm["type"] = d.Type
			}
			if d.Field != "" {
				dm["field"] = d.Field
			}
			if d.Reason != "" {
				dm["reason"] = d.Reason
			}
			if len(d.Info) > 0 {
				info := make(map[string]any, len(d.Info))
				for k, v := range d.Info {
					info[k] = v
				}
				dm["info"] = info
			}
			ds = append(ds, dm)
		}
		m["details"] = ds
	}

	pb, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(pb)
}
