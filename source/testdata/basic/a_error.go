package basic

import "dirpx.dev/enumresponse/status"

// Error is the error returned by the service.
//
//enumresponse:derive
type Error interface {
	error
	isError()
}

// NotFound is returned for missing users.
//
//response(status = 404, reason = "no such user")
type NotFound struct{}

//response(status_field = 0)
//response(reason_field = "1")
type Upstream struct {
	F0 status.Code
	F1 string
}

func (NotFound) isError()  {}
func (*Upstream) isError() {}

func (NotFound) Error() string  { return "not found" }
func (*Upstream) Error() string { return "upstream" }
