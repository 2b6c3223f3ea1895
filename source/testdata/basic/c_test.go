package basic

// Excluded unless tests are requested.
//
//enumresponse:derive
type TestOnly interface {
	isTestOnly()
}
