package connection

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/sei-ia/sei.go/internal/codec"
	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/soap"
)

// Connection invokes remote procedures of one SOAP namespace.
type Connection interface {
	// Connect checks that the endpoint answers. It is never required before Call.
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	// Call sends one rpc request with the parts in order and returns the first part of the
	// response as a generic value tree. Transport failures and SOAP faults come back as
	// *RemoteServiceError.
	Call(ctx context.Context, operation string, parts ...soap.Part) (any, error)
}

type BaseConnection struct {
	url         string
	wsdlURL     string
	namespace   string
	soapAction  string
	marshaler   codec.Marshaler
	unmarshaler codec.Unmarshaler
	logger      zerolog.Logger
}

func newBaseConnection(conf *Config) BaseConnection {
	endpoint, wsdl := serviceURLs(conf.URL)
	return BaseConnection{
		url:         endpoint,
		wsdlURL:     wsdl,
		namespace:   conf.Namespace,
		soapAction:  conf.SOAPAction,
		marshaler:   conf.Marshaler,
		unmarshaler: conf.Unmarshaler,
		logger:      conf.Logger,
	}
}

func (bc *BaseConnection) preConnectionChecks() error {
	if bc.url == "" {
		return constants.ErrNoEndpoint
	}

	if bc.marshaler == nil {
		return constants.ErrNoMarshaler
	}

	if bc.unmarshaler == nil {
		return constants.ErrNoUnmarshaler
	}

	return nil
}

// serviceURLs derives the SOAP endpoint and the WSDL address from u, which may be
// either of them. Other query parameters are kept on both.
func serviceURLs(u url.URL) (endpoint, wsdl string) {
	if u.String() == "" {
		return "", ""
	}

	q := u.Query()
	q.Del(wsdlQuery)
	u.RawQuery = q.Encode()
	endpoint = u.String()

	if u.RawQuery == "" {
		u.RawQuery = wsdlQuery
	} else {
		u.RawQuery += "&" + wsdlQuery
	}
	return endpoint, u.String()
}
