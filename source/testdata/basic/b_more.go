package basic

type (
	// Conflict carries a named payload.
	//
	//response(status = "Conflict", reason_field = "Message")
	Conflict struct {
		Resource, Message string
	}

	Internal struct{}
)

// Declared before its type on purpose: order follows type declarations.
func (Internal) isError() {}
func (Conflict) isError() {}

func (Conflict) Error() string { return "conflict" }
func (Internal) Error() string { return "internal" }

// Result is generic.
//
//enumresponse:derive
type Result[T any] interface {
	isResult()
}

//response(status = 200)
type Ok[T any] struct {
	F0 T
}

func (Ok[T]) isResult() {}

// Plain is ignored: no marker.
type Plain interface {
	isPlain()
}
