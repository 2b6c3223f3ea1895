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

package adapter

import (
	"dirpx.dev/enumresponse"
	"dirpx.dev/enumresponse/apis"
	"dirpx.dev/enumresponse/status"
)

// ToDescriptor flattens a responder into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. A nil responder yields the zero Descriptor.
func ToDescriptor(rs apis.Responder) apis.Descriptor {
	if rs == nil {
		return apis.Descriptor{}
	}
	c := rs.Status()
	d := apis.Descriptor{
		HTTPStatus: int(c),
		Name:       c.Name(),
		Reason:     enumresponse.ReasonOf(rs),
		GRPCCode:   int(c.GRPC()),
	}
	if me, ok := rs.(apis.MessageError); ok {
		d.Message = me.ErrorMessage()
	}
	return d
}

// ToView converts an error into the body of an error response.
//
// The first apis.Responder in err's chain decides status and reason; errors
// without one become a bare InternalServerError so that nothing about them
// leaks to the client. Messages and details are taken from the responder
// only.
//
// A status outside 100..999, which net/http refuses to write, is replaced by
// InternalServerError together with its canonical name and reason.
func ToView(err error) apis.ErrorView {
	rs, ok := enumresponse.Find(err)
	if !ok {
		return internalView()
	}
	d := ToDescriptor(rs)
	v := apis.ErrorView{
		Status:  d.HTTPStatus,
		Name:    d.Name,
		Reason:  d.Reason,
		Message: d.Message,
	}
	if !validHTTPStatus(d.HTTPStatus) {
		iv := internalView()
		v.Status, v.Name, v.Reason = iv.Status, iv.Name, iv.Reason
	}
	if de, ok := rs.(apis.DetailedError); ok {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

func internalView() apis.ErrorView {
	c := status.InternalServerError
	r, _ := c.CanonicalReason()
	return apis.ErrorView{Status: int(c), Name: c.Name(), Reason: r}
}

func validHTTPStatus(code int) bool { return code >= 100 && code <= 999 }
