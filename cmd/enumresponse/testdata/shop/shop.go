package shop

import "dirpx.dev/enumresponse/status"

//enumresponse:derive
type Failure interface {
	isFailure()
}

//response(status = 404, reason = "no such item")
type Missing struct{}

//response(status_field = 0, reason_field = 1)
type Remote struct {
	F0 status.Code
	F1 string
}

type Broken struct{}

func (Missing) isFailure() {}
func (Remote) isFailure()  {}
func (Broken) isFailure()  {}
