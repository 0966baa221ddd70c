package connection

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/sei-ia/sei.go/internal/codec"
	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/soap"
)

// Config holds everything a connection needs to reach SeiWS.php.
type Config struct {
	URL         url.URL
	Namespace   string
	SOAPAction  string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      zerolog.Logger

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewConfig creates a new Config for the SeiWS.php endpoint specified by the URL, such as
// "https://sei.example.gov.br/sei/ws/SeiWS.php".
// It is not absolutely necessary to create a Config using this function,
// but it is recommended to use this function to ensure that everything needed for the connection is set up correctly.
func NewConfig(u *url.URL) *Config {
	c := soap.New()
	return &Config{
		URL:         *u,
		Namespace:   constants.DefaultNamespace,
		SOAPAction:  constants.DefaultSOAPAction,
		Marshaler:   c,
		Unmarshaler: c,
		Logger:      zerolog.Nop(),
		Timeout:     constants.DefaultHTTPTimeout,
	}
}
