package api

import "fmt"

// NetworkError is a transport failure: the server was unreachable or its
// response could not be read or decoded.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ApplicationError is a response that arrived but reported failure, either
// through an HTTP error status or a false success flag.
type ApplicationError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
}
