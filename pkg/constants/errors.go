package constants

import "errors"

// Decode errors. Every failure while turning a raw record into an entity wraps one of these.
var (
	ErrInvalidSentinel = errors.New("invalid S/N sentinel")
	ErrInvalidEnumCode = errors.New("invalid enumeration code")
	ErrMissingField    = errors.New("missing field")
	ErrMalformedRecord = errors.New("malformed record")
)

var (
	ErrNoEndpoint    = errors.New("endpoint url not set")
	ErrNoMarshaler   = errors.New("marshaler is not set")
	ErrNoUnmarshaler = errors.New("unmarshaler is not set")
	ErrNoIdentity    = errors.New("sigla sistema or identificacao servico or both are not set")
)
