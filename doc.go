// Package sei is a typed client for SEI's SeiWS.php SOAP service.
//
// # Client
//
// A [Client] holds one [connection.Connection] and the caller identity SEI expects on every
// call: the system code (SiglaSistema) and the service credential (IdentificacaoServico).
// Each method performs exactly one remote call and blocks until the response or fault arrives.
//
// Use [FromEndpointURLString] for the usual HTTP transport, or [FromConnection] to plug in
// any [connection.Connection] implementation.
//
// # Data Models
//
// Responses are decoded into the types of the [github.com/sei-ia/sei.go/pkg/models] package.
// SEI encodes booleans as "S"/"N"; decoded flags are the tri-state [sin.Flag], since the
// service often leaves them null. Optional sections SEI fills with an all-null record come
// back as nil pointers.
//
// # Errors
//
// Transport failures and SOAP faults are returned as [*RemoteServiceError]. Responses that do
// not match the expected shape are returned as [*DecodeError], which wraps one of
// [ErrMissingField], [ErrMalformedRecord], [ErrInvalidSentinel] or [ErrInvalidEnumCode].
//
// # Examples and Experimental Packages
//
// The [github.com/sei-ia/sei.go/contrib] directory contains tools that are not covered by the
// package's backward compatibility guarantee: seitools, the tool boundary used by the chat
// agent, and the seictl command line client.
package sei
