package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sei-ia/sei.go/internal/rand"
	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/soap"
)

const (
	contentType = "text/xml; charset=utf-8"
	wsdlQuery   = "wsdl"
)

// HTTPConnection posts SOAP envelopes to the endpoint URL. It keeps no state between
// calls and is safe for concurrent use when its http.Client is.
type HTTPConnection struct {
	BaseConnection

	httpClient *http.Client
}

func NewHTTPConnection(conf *Config) *HTTPConnection {
	con := HTTPConnection{
		BaseConnection: newBaseConnection(conf),
		httpClient:     conf.HTTPClient,
	}

	if con.httpClient == nil {
		timeout := conf.Timeout
		if timeout == 0 {
			timeout = constants.DefaultHTTPTimeout
		}
		con.httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &con
}

func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.httpClient.Timeout = timeout
	return h
}

func (h *HTTPConnection) SetHTTPClient(client *http.Client) *HTTPConnection {
	h.httpClient = client
	return h
}

// Connect fetches the service WSDL.
func (h *HTTPConnection) Connect(ctx context.Context) error {
	if err := h.preConnectionChecks(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.wsdlURL, http.NoBody)
	if err != nil {
		return err
	}

	status, _, err := h.MakeRequest(req)
	if err != nil {
		return &RemoteServiceError{Operation: wsdlQuery, StatusCode: status, Err: err}
	}
	if status < 200 || status >= 300 {
		return &RemoteServiceError{Operation: wsdlQuery, StatusCode: status, Err: statusError(status)}
	}
	return nil
}

func (h *HTTPConnection) Close(ctx context.Context) error {
	h.httpClient.CloseIdleConnections()
	return nil
}

func (h *HTTPConnection) Call(ctx context.Context, operation string, parts ...soap.Part) (any, error) {
	if err := h.preConnectionChecks(); err != nil {
		return nil, err
	}

	id := rand.NewRequestID(constants.RequestIDLength)
	log := h.logger.With().Str("request_id", id).Str("operation", operation).Logger()
	start := time.Now()

	reqBody, err := h.marshaler.Marshal(&soap.Message{
		Namespace: h.namespace,
		Name:      operation,
		Parts:     parts,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("SOAPAction", `"`+h.soapAction+`"`)

	log.Debug().Int("parts", len(parts)).Msg("sending soap request")

	status, respData, err := h.MakeRequest(req)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("soap request failed")
		return nil, &RemoteServiceError{Operation: operation, StatusCode: status, Err: err}
	}

	result, err := h.handleResponse(operation, status, respData)
	log.Debug().Err(err).Int("status", status).Dur("elapsed", time.Since(start)).Msg("soap response")
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MakeRequest performs req and returns the status code and the full body.
func (h *HTTPConnection) MakeRequest(req *http.Request) (int, []byte, error) {
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBytes, nil
}

// handleResponse accepts a fault with any status, since SOAP 1.1 services answer faults
// with 500, and a regular response only with a 2xx status.
func (h *HTTPConnection) handleResponse(operation string, status int, data []byte) (any, error) {
	var msg soap.Message
	if err := h.unmarshaler.Unmarshal(data, &msg); err != nil {
		if status < 200 || status >= 300 {
			err = statusError(status)
		}
		return nil, &RemoteServiceError{Operation: operation, StatusCode: status, Err: err}
	}

	if msg.Fault != nil {
		return nil, &RemoteServiceError{Operation: operation, StatusCode: status, Err: msg.Fault}
	}

	if status < 200 || status >= 300 {
		return nil, &RemoteServiceError{Operation: operation, StatusCode: status, Err: statusError(status)}
	}

	if msg.Operation() != operation {
		return nil, &RemoteServiceError{
			Operation:  operation,
			StatusCode: status,
			Err:        fmt.Errorf("%w: %q", ErrUnexpectedResponse, msg.Name),
		}
	}

	return msg.Result(), nil
}

func statusError(status int) error {
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, status, http.StatusText(status))
}
