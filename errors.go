package sei

import (
	"github.com/sei-ia/sei.go/pkg/connection"
	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/models"
)

type (
	RemoteServiceError = connection.RemoteServiceError
	DecodeError        = models.DecodeError
)

var (
	ErrInvalidSentinel = constants.ErrInvalidSentinel
	ErrInvalidEnumCode = constants.ErrInvalidEnumCode
	ErrMissingField    = constants.ErrMissingField
	ErrMalformedRecord = constants.ErrMalformedRecord
	ErrNoIdentity      = constants.ErrNoIdentity
)
