package constants

import "time"

const (
	// DefaultNamespace is the target namespace of SEI's SeiWS.php service.
	DefaultNamespace  = "Sei"
	DefaultSOAPAction = "SeiAction"

	DefaultHTTPTimeout = 30 * time.Second
	RequestIDLength    = 12
)

var (
	HTTPScheme       = "http"
	HTTPSecureScheme = "https"
)
