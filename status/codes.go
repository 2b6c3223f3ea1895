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

package status

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Informational (1xx).
const (
	Continue           Code = http.StatusContinue
	SwitchingProtocols Code = http.StatusSwitchingProtocols
	Processing         Code = http.StatusProcessing
	EarlyHints         Code = http.StatusEarlyHints
)

// Success (2xx).
const (
	OK                          Code = http.StatusOK
	Created                     Code = http.StatusCreated
	Accepted                    Code = http.StatusAccepted
	NonAuthoritativeInformation Code = http.StatusNonAuthoritativeInfo
	NoContent                   Code = http.StatusNoContent
	ResetContent                Code = http.StatusResetContent
	PartialContent              Code = http.StatusPartialContent
	MultiStatus                 Code = http.StatusMultiStatus
	AlreadyReported             Code = http.StatusAlreadyReported
	IMUsed                      Code = http.StatusIMUsed
)

// Redirection (3xx).
const (
	MultipleChoices   Code = http.StatusMultipleChoices
	MovedPermanently  Code = http.StatusMovedPermanently
	Found             Code = http.StatusFound
	SeeOther          Code = http.StatusSeeOther
	NotModified       Code = http.StatusNotModified
	UseProxy          Code = http.StatusUseProxy
	TemporaryRedirect Code = http.StatusTemporaryRedirect
	PermanentRedirect Code = http.StatusPermanentRedirect
)

// Client errors (4xx).
const (
	BadRequest                  Code = http.StatusBadRequest
	Unauthorized                Code = http.StatusUnauthorized
	PaymentRequired             Code = http.StatusPaymentRequired
	Forbidden                   Code = http.StatusForbidden
	NotFound                    Code = http.StatusNotFound
	MethodNotAllowed            Code = http.StatusMethodNotAllowed
	NotAcceptable               Code = http.StatusNotAcceptable
	ProxyAuthenticationRequired Code = http.StatusProxyAuthRequired
	RequestTimeout              Code = http.StatusRequestTimeout
	Conflict                    Code = http.StatusConflict
	Gone                        Code = http.StatusGone
	LengthRequired              Code = http.StatusLengthRequired
	PreconditionFailed          Code = http.StatusPreconditionFailed
	PayloadTooLarge             Code = http.StatusRequestEntityTooLarge
	URITooLong                  Code = http.StatusRequestURITooLong
	UnsupportedMediaType        Code = http.StatusUnsupportedMediaType
	RangeNotSatisfiable         Code = http.StatusRequestedRangeNotSatisfiable
	ExpectationFailed           Code = http.StatusExpectationFailed
	ImATeapot                   Code = http.StatusTeapot
	MisdirectedRequest          Code = http.StatusMisdirectedRequest
	UnprocessableEntity         Code = http.StatusUnprocessableEntity
	Locked                      Code = http.StatusLocked
	FailedDependency            Code = http.StatusFailedDependency
	TooEarly                    Code = http.StatusTooEarly
	UpgradeRequired             Code = http.StatusUpgradeRequired
	PreconditionRequired        Code = http.StatusPreconditionRequired
	TooManyRequests             Code = http.StatusTooManyRequests
	RequestHeaderFieldsTooLarge Code = http.StatusRequestHeaderFieldsTooLarge
	UnavailableForLegalReasons  Code = http.StatusUnavailableForLegalReasons
)

// Server errors (5xx).
const (
	InternalServerError           Code = http.StatusInternalServerError
	NotImplemented                Code = http.StatusNotImplemented
	BadGateway                    Code = http.StatusBadGateway
	ServiceUnavailable            Code = http.StatusServiceUnavailable
	GatewayTimeout                Code = http.StatusGatewayTimeout
	HTTPVersionNotSupported       Code = http.StatusHTTPVersionNotSupported
	VariantAlsoNegotiates         Code = http.StatusVariantAlsoNegotiates
	InsufficientStorage           Code = http.StatusInsufficientStorage
	LoopDetected                  Code = http.StatusLoopDetected
	NotExtended                   Code = http.StatusNotExtended
	NetworkAuthenticationRequired Code = http.StatusNetworkAuthenticationRequired
)

// canonical is the built-in registry table, ascending by code.
//
// Names match the exported constants above one to one; the engine relies on
// that when it emits status.<Name> identifiers into generated code.
// Reason phrases follow the IANA HTTP Status Code Registry.
var canonical = []Entry{
	{Continue, "Continue", "Continue", codes.Unknown},
	{SwitchingProtocols, "SwitchingProtocols", "Switching Protocols", codes.Unknown},
	{Processing, "Processing", "Processing", codes.Unknown},
	{EarlyHints, "EarlyHints", "Early Hints", codes.Unknown},

	{OK, "OK", "OK", codes.OK},
	{Created, "Created", "Created", codes.OK},
	{Accepted, "Accepted", "Accepted", codes.OK},
	{NonAuthoritativeInformation, "NonAuthoritativeInformation", "Non-Authoritative Information", codes.OK},
	{NoContent, "NoContent", "No Content", codes.OK},
	{ResetContent, "ResetContent", "Reset Content", codes.OK},
	{PartialContent, "PartialContent", "Partial Content", codes.OK},
	{MultiStatus, "MultiStatus", "Multi-Status", codes.OK},
	{AlreadyReported, "AlreadyReported", "Already Reported", codes.OK},
	{IMUsed, "IMUsed", "IM Used", codes.OK},

	{MultipleChoices, "MultipleChoices", "Multiple Choices", codes.Unknown},
	{MovedPermanently, "MovedPermanently", "Moved Permanently", codes.Unknown},
	{Found, "Found", "Found", codes.Unknown},
	{SeeOther, "SeeOther", "See Other", codes.Unknown},
	{NotModified, "NotModified", "Not Modified", codes.Unknown},
	{UseProxy, "UseProxy", "Use Proxy", codes.Unknown},
	{TemporaryRedirect, "TemporaryRedirect", "Temporary Redirect", codes.Unknown},
	{PermanentRedirect, "PermanentRedirect", "Permanent Redirect", codes.Unknown},

	{BadRequest, "BadRequest", "Bad Request", codes.InvalidArgument},
	{Unauthorized, "Unauthorized", "Unauthorized", codes.Unauthenticated},
	{PaymentRequired, "PaymentRequired", "Payment Required", codes.FailedPrecondition},
	{Forbidden, "Forbidden", "Forbidden", codes.PermissionDenied},
	{NotFound, "NotFound", "Not Found", codes.NotFound},
	{MethodNotAllowed, "MethodNotAllowed", "Method Not Allowed", codes.Unimplemented},
	{NotAcceptable, "NotAcceptable", "Not Acceptable", codes.InvalidArgument},
	{ProxyAuthenticationRequired, "ProxyAuthenticationRequired", "Proxy Authentication Required", codes.Unauthenticated},
	{RequestTimeout, "RequestTimeout", "Request Timeout", codes.DeadlineExceeded},
	{Conflict, "Conflict", "Conflict", codes.Aborted},
	{Gone, "Gone", "Gone", codes.NotFound}, // gRPC has no 410.
	{LengthRequired, "LengthRequired", "Length Required", codes.InvalidArgument},
	{PreconditionFailed, "PreconditionFailed", "Precondition Failed", codes.FailedPrecondition},
	{PayloadTooLarge, "PayloadTooLarge", "Payload Too Large", codes.ResourceExhausted},
	{URITooLong, "URITooLong", "URI Too Long", codes.InvalidArgument},
	{UnsupportedMediaType, "UnsupportedMediaType", "Unsupported Media Type", codes.InvalidArgument},
	{RangeNotSatisfiable, "RangeNotSatisfiable", "Range Not Satisfiable", codes.OutOfRange},
	{ExpectationFailed, "ExpectationFailed", "Expectation Failed", codes.FailedPrecondition},
	{ImATeapot, "ImATeapot", "I'm a teapot", codes.Unknown},
	{MisdirectedRequest, "MisdirectedRequest", "Misdirected Request", codes.Unavailable},
	{UnprocessableEntity, "UnprocessableEntity", "Unprocessable Entity", codes.InvalidArgument},
	{Locked, "Locked", "Locked", codes.Aborted},
	{FailedDependency, "FailedDependency", "Failed Dependency", codes.FailedPrecondition},
	{TooEarly, "TooEarly", "Too Early", codes.FailedPrecondition},
	{UpgradeRequired, "UpgradeRequired", "Upgrade Required", codes.FailedPrecondition},
	{PreconditionRequired, "PreconditionRequired", "Precondition Required", codes.FailedPrecondition},
	{TooManyRequests, "TooManyRequests", "Too Many Requests", codes.ResourceExhausted},
	{RequestHeaderFieldsTooLarge, "RequestHeaderFieldsTooLarge", "Request Header Fields Too Large", codes.InvalidArgument},
	{UnavailableForLegalReasons, "UnavailableForLegalReasons", "Unavailable For Legal Reasons", codes.PermissionDenied},

	{InternalServerError, "InternalServerError", "Internal Server Error", codes.Internal},
	{NotImplemented, "NotImplemented", "Not Implemented", codes.Unimplemented},
	{BadGateway, "BadGateway", "Bad Gateway", codes.Unavailable},
	{ServiceUnavailable, "ServiceUnavailable", "Service Unavailable", codes.Unavailable},
	{GatewayTimeout, "GatewayTimeout", "Gateway Timeout", codes.DeadlineExceeded},
	{HTTPVersionNotSupported, "HTTPVersionNotSupported", "HTTP Version Not Supported", codes.Unimplemented},
	{VariantAlsoNegotiates, "VariantAlsoNegotiates", "Variant Also Negotiates", codes.Internal},
	{InsufficientStorage, "InsufficientStorage", "Insufficient Storage", codes.ResourceExhausted},
	{LoopDetected, "LoopDetected", "Loop Detected", codes.Internal},
	{NotExtended, "NotExtended", "Not Extended", codes.Internal},
	{NetworkAuthenticationRequired, "NetworkAuthenticationRequired", "Network Authentication Required", codes.Unauthenticated},
}
