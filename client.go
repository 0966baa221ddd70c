package sei

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sei-ia/sei.go/pkg/connection"
	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/soap"
)

// Client calls the SeiWS.php operations on behalf of one registered system.
// It is safe for concurrent use when its connection is; the HTTP connection is.
type Client struct {
	con                  connection.Connection
	siglaSistema         string
	identificacaoServico string
}

// FromEndpointURLString creates a Client over HTTP for the given SeiWS.php URL.
func FromEndpointURLString(endpoint, siglaSistema, identificacaoServico string) (*Client, error) {
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme != constants.HTTPScheme && u.Scheme != constants.HTTPSecureScheme {
		return nil, fmt.Errorf("invalid endpoint url scheme %q", u.Scheme)
	}

	return FromConfig(connection.NewConfig(u), siglaSistema, identificacaoServico)
}

// FromConfig creates a Client over HTTP using a customized transport config.
func FromConfig(conf *connection.Config, siglaSistema, identificacaoServico string) (*Client, error) {
	return FromConnection(connection.NewHTTPConnection(conf), siglaSistema, identificacaoServico)
}

// FromConnection creates a Client over any connection.Connection implementation.
// No request is made; use Ping to check the endpoint.
func FromConnection(con connection.Connection, siglaSistema, identificacaoServico string) (*Client, error) {
	if siglaSistema == "" || identificacaoServico == "" {
		return nil, constants.ErrNoIdentity
	}
	return &Client{
		con:                  con,
		siglaSistema:         siglaSistema,
		identificacaoServico: identificacaoServico,
	}, nil
}

// Ping checks that the endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.con.Connect(ctx)
}

// Close releases the connection.
func (c *Client) Close(ctx context.Context) error {
	return c.con.Close(ctx)
}

// Connection returns the underlying connection.
func (c *Client) Connection() connection.Connection {
	return c.con
}

// call prepends the identity pair to parts and returns the raw result.
func (c *Client) call(ctx context.Context, operation string, parts ...soap.Part) (any, error) {
	all := make([]soap.Part, 0, len(parts)+2)
	all = append(all,
		soap.Part{Name: "SiglaSistema", Value: c.siglaSistema},
		soap.Part{Name: "IdentificacaoServico", Value: c.identificacaoServico},
	)
	all = append(all, parts...)
	return c.con.Call(ctx, operation, all...)
}
