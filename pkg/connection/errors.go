package connection

import (
	"errors"
	"fmt"

	"github.com/sei-ia/sei.go/pkg/soap"
)

var (
	// ErrUnexpectedResponse is wrapped when the response body names a different operation.
	ErrUnexpectedResponse = errors.New("unexpected response element")
	ErrUnexpectedStatus   = errors.New("unexpected http status")
)

// RemoteServiceError is a failure to obtain a result from the remote service: the request
// could not be sent, the endpoint answered with something that is not a SOAP response,
// or the service returned a fault. StatusCode is zero when no response arrived.
type RemoteServiceError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("sei %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("sei %s: status %d: %v", e.Operation, e.StatusCode, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// Fault returns the SOAP fault sent by the service, if that is what failed.
func (e *RemoteServiceError) Fault() (*soap.Fault, bool) {
	var f *soap.Fault
	if errors.As(e.Err, &f) {
		return f, true
	}
	return nil, false
}
