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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/enumresponse"
	"dirpx.dev/enumresponse/apis"
	"dirpx.dev/enumresponse/status"
)

type body struct {
	Status            int           `json:"status"`
	Name              string        `json:"name"`
	Reason            string        `json:"reason"`
	Message           string        `json:"message"`
	Correlation       string        `json:"correlation"`
	TraceID           string        `json:"trace_id"`
	RetryAfterSeconds int           `json:"retry_after_seconds"`
	Details           []apis.Detail `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), rec.Body.String())
	return b
}

func TestWriter_Responder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	w := Writer{Logger: zap.New(core)}

	err := enumresponse.E(status.TooManyRequests, "slow down",
		enumresponse.WithDetailOption(apis.Detail{Type: "quota", Info: map[string]string{"limit": "10"}}))
	rec := httptest.NewRecorder()
	w.Write(rec, fmt.Errorf("handler: %w", err), Meta{Correlation: "req-1", RetryAfterSeconds: 30})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	b := decode(t, rec)
	assert.Equal(t, 429, b.Status)
	assert.Equal(t, "TooManyRequests", b.Name)
	assert.Equal(t, "Too Many Requests", b.Reason)
	assert.Equal(t, "slow down", b.Message)
	assert.Equal(t, "req-1", b.Correlation)
	assert.Equal(t, 30, b.RetryAfterSeconds)
	require.Len(t, b.Details, 1)
	assert.Equal(t, "10", b.Details[0].Info["limit"])

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.DebugLevel, entry.Level)
	assert.Equal(t, int64(429), entry.ContextMap()["status"])
}

func TestWriter_ReasonOverride(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, enumresponse.E(status.NotFound, "").WithReason("No Such User"), Meta{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Retry-After"))
	b := decode(t, rec)
	assert.Equal(t, "No Such User", b.Reason)
	assert.Empty(t, b.Message)
}

// Errors without a responder become a bare 500 and their text stays private.
func TestWriter_PlainError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := httptest.NewRecorder()
	Writer{Logger: zap.New(core)}.Write(rec, errors.New("pq: password authentication failed"), Meta{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, "InternalServerError", b.Name)
	assert.Equal(t, "Internal Server Error", b.Reason)
	assert.Empty(t, b.Message)
	assert.NotContains(t, rec.Body.String(), "password")

	require.Equal(t, 1, logs.FilterMessage("error response").Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
}

type fieldStatus struct {
	F0 status.Code
	F1 string
}

func (f fieldStatus) Error() string          { return "upstream" }
func (f fieldStatus) Status() status.Code    { return f.F0 }
func (f fieldStatus) Reason() (string, bool) { return f.F1, true }

// A status taken from a field may be anything; net/http panics on codes it
// cannot write.
func TestWriter_InvalidStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		Writer{}.Write(rec, fieldStatus{F0: 42, F1: "weird"}, Meta{})
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, 500, b.Status)
	assert.Equal(t, "Internal Server Error", b.Reason)
}

func TestWriter_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil, Meta{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestBody_OmitsEmptyFields(t *testing.T) {
	raw, err := Body(apis.ErrorView{Status: 418}, Meta{})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, map[string]any{"status": float64(418)}, m)
}
