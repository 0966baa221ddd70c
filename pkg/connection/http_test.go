package connection

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/soap"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

func xmlResponse(status int, m *soap.Message) *http.Response {
	body, err := soap.Marshal(m)
	if err != nil {
		panic(err)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
		// Must be set to non-nil value or it panics
		Header: make(http.Header),
	}
}

type HTTPTestSuite struct {
	suite.Suite
	name string
	url  *url.URL
	logs *bytes.Buffer
}

func TestHttpTestSuite(t *testing.T) {
	ts := new(HTTPTestSuite)
	ts.name = "HTTP Test Suite"

	suite.Run(t, ts)
}

// SetupSuite is called before the s starts running
func (s *HTTPTestSuite) SetupSuite() {
	u, err := url.Parse("http://sei.test/sei/ws/SeiWS.php")
	s.Require().NoError(err)
	s.url = u
}

func (s *HTTPTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
}

func (s *HTTPTestSuite) connection(fn RoundTripFunc) *HTTPConnection {
	conf := NewConfig(s.url)
	conf.Logger = zerolog.New(s.logs).Level(zerolog.DebugLevel)
	conf.HTTPClient = NewTestClient(fn)
	return NewHTTPConnection(conf)
}

func (s *HTTPTestSuite) TestCall() {
	con := s.connection(func(req *http.Request) *http.Response {
		s.Equal(http.MethodPost, req.Method)
		s.Equal("http://sei.test/sei/ws/SeiWS.php", req.URL.String())
		s.Equal(`"SeiAction"`, req.Header.Get("SOAPAction"))
		s.True(strings.HasPrefix(req.Header.Get("Content-Type"), "text/xml"))

		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		in, err := soap.Unmarshal(body)
		s.Require().NoError(err)
		s.Equal("Sei", in.Namespace)
		s.Equal("listarMarcadoresUnidade", in.Name)
		s.Equal([]soap.Part{{Name: "IdUnidade", Value: "110047993"}}, in.Parts)

		return xmlResponse(http.StatusOK, &soap.Message{
			Namespace: "Sei",
			Name:      "listarMarcadoresUnidadeResponse",
			Parts: []soap.Part{{Name: "parametros", Value: []any{
				soap.Struct{{Name: "IdMarcador", Value: "1"}},
			}}},
		})
	})

	res, err := con.Call(context.Background(), "listarMarcadoresUnidade", soap.Part{Name: "IdUnidade", Value: "110047993"})
	s.Require().NoError(err)
	s.Equal([]any{map[string]any{"IdMarcador": "1"}}, res)

	s.Contains(s.logs.String(), `"operation":"listarMarcadoresUnidade"`)
	s.Contains(s.logs.String(), `"request_id"`)
	s.Contains(s.logs.String(), `"status":200`)
}

func (s *HTTPTestSuite) TestCallFault() {
	con := s.connection(func(req *http.Request) *http.Response {
		return xmlResponse(http.StatusInternalServerError, &soap.Message{
			Fault: &soap.Fault{Code: "SOAP-ENV:Server", String: "Processo não encontrado."},
		})
	})

	_, err := con.Call(context.Background(), "consultarProcedimento")
	s.Require().Error(err)

	var rse *RemoteServiceError
	s.Require().ErrorAs(err, &rse)
	s.Equal("consultarProcedimento", rse.Operation)
	s.Equal(http.StatusInternalServerError, rse.StatusCode)

	fault, ok := rse.Fault()
	s.Require().True(ok)
	s.Equal("Processo não encontrado.", fault.String)
	s.Contains(err.Error(), "Processo não encontrado.")
}

func (s *HTTPTestSuite) TestCallNotSOAP() {
	con := s.connection(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
			Header:     make(http.Header),
		}
	})

	_, err := con.Call(context.Background(), "listarUnidades")
	var rse *RemoteServiceError
	s.Require().ErrorAs(err, &rse)
	s.Equal(http.StatusBadGateway, rse.StatusCode)
	s.ErrorIs(err, ErrUnexpectedStatus)
	_, ok := rse.Fault()
	s.False(ok)
}

func (s *HTTPTestSuite) TestCallWrongResponse() {
	con := s.connection(func(req *http.Request) *http.Response {
		return xmlResponse(http.StatusOK, &soap.Message{Namespace: "Sei", Name: "listarSeriesResponse"})
	})

	_, err := con.Call(context.Background(), "listarUnidades")
	s.ErrorIs(err, ErrUnexpectedResponse)
}

func (s *HTTPTestSuite) TestCallTransportError() {
	conf := NewConfig(s.url)
	conf.HTTPClient = &http.Client{Transport: failingTransport{}}
	con := NewHTTPConnection(conf)

	_, err := con.Call(context.Background(), "listarUsuarios")
	var rse *RemoteServiceError
	s.Require().ErrorAs(err, &rse)
	s.Zero(rse.StatusCode)
	s.ErrorIs(err, errConnectionRefused)
}

func (s *HTTPTestSuite) TestPreConnectionChecks() {
	con := NewHTTPConnection(&Config{})
	_, err := con.Call(context.Background(), "listarUnidades")
	s.ErrorIs(err, constants.ErrNoEndpoint)

	conf := NewConfig(s.url)
	conf.Unmarshaler = nil
	s.ErrorIs(NewHTTPConnection(conf).Connect(context.Background()), constants.ErrNoUnmarshaler)
}

func (s *HTTPTestSuite) TestConnect() {
	con := s.connection(func(req *http.Request) *http.Response {
		s.Equal(http.MethodGet, req.Method)
		s.Equal("wsdl", req.URL.RawQuery)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<definitions/>")),
			Header:     make(http.Header),
		}
	})
	s.Require().NoError(con.Connect(context.Background()))
	s.Require().NoError(con.Close(context.Background()))

	down := s.connection(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
		}
	})
	err := down.Connect(context.Background())
	var rse *RemoteServiceError
	s.Require().ErrorAs(err, &rse)
	s.Equal(http.StatusNotFound, rse.StatusCode)
}

func (s *HTTPTestSuite) TestWSDLAddressAsEndpoint() {
	u, err := url.Parse("http://sei.test/sei/ws/SeiWS.php?wsdl")
	s.Require().NoError(err)

	var seen []string
	conf := NewConfig(u)
	conf.HTTPClient = NewTestClient(func(req *http.Request) *http.Response {
		seen = append(seen, req.Method+" "+req.URL.String())
		if req.Method == http.MethodGet {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("<definitions/>")),
				Header:     make(http.Header),
			}
		}
		return xmlResponse(http.StatusOK, &soap.Message{
			Namespace: "Sei",
			Name:      "listarSeriesResponse",
			Parts:     []soap.Part{{Name: "parametros", Value: []any{}}},
		})
	})
	con := NewHTTPConnection(conf)

	s.Require().NoError(con.Connect(context.Background()))
	_, err = con.Call(context.Background(), "listarSeries")
	s.Require().NoError(err)

	s.Equal([]string{
		"GET http://sei.test/sei/ws/SeiWS.php?wsdl",
		"POST http://sei.test/sei/ws/SeiWS.php",
	}, seen)
}

func TestServiceURLs(t *testing.T) {
	tests := []struct {
		raw      string
		endpoint string
		wsdl     string
	}{
		{"http://sei.test/sei/ws/SeiWS.php", "http://sei.test/sei/ws/SeiWS.php", "http://sei.test/sei/ws/SeiWS.php?wsdl"},
		{"http://sei.test/sei/ws/SeiWS.php?wsdl", "http://sei.test/sei/ws/SeiWS.php", "http://sei.test/sei/ws/SeiWS.php?wsdl"},
		{"https://sei.test/ws.php?wsdl=&versao=4", "https://sei.test/ws.php?versao=4", "https://sei.test/ws.php?versao=4&wsdl"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)
			endpoint, wsdl := serviceURLs(*u)
			assert.Equal(t, tt.endpoint, endpoint)
			assert.Equal(t, tt.wsdl, wsdl)
		})
	}

	endpoint, wsdl := serviceURLs(url.URL{})
	assert.Empty(t, endpoint)
	assert.Empty(t, wsdl)
}

var errConnectionRefused = errors.New("connection refused")

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errConnectionRefused
}
