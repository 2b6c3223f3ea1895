package notsum

// Config is a struct.
//
//enumresponse:derive
type Config struct {
	Name string
}

//enumresponse:derive
type Level int
