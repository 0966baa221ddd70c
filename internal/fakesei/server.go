// Package fakesei provides a fake SEI SOAP endpoint for testing purposes.
// It speaks the SeiWS.php rpc/encoded dialect over HTTP using the same codec as the client,
// and includes failure injection capabilities.
//
// We don't currently have an executable binary for this package,
// but it can be used as a library to create a fake SEI server
// for integration tests, either listening on a port (Start) or mounted
// on an httptest.Server (Handler).
//
// Routing is implemented with gorilla/mux.
//
// To flexibly inject failures, you can configure stub responses
// that match specific operations and parameters, along with failure configurations
// that specify how it fails (e.g., delays, invalid responses, dropped connections).
package fakesei

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/sei-ia/sei.go/pkg/soap"
)

// DefaultPath is where SEI publishes the service.
const DefaultPath = "/sei/ws/SeiWS.php"

// ResultPart is the name SEI gives the single part of every response.
const ResultPart = "parametros"

// FailureType represents the type of failure to inject during request processing
type FailureType string

const (
	// FailureNone indicates no failure injection
	FailureNone FailureType = "none"
	// FailureRequestDelay delays before processing the request
	FailureRequestDelay FailureType = "request_delay"
	// FailureInvalidResponse sends random bytes with a 200 status instead of an envelope
	FailureInvalidResponse FailureType = "invalid_response"
	// FailureHTTPStatus answers with StatusCode and an HTML body, like a proxy in front of SEI
	FailureHTTPStatus FailureType = "http_status"
	// FailureDropConnection closes the underlying network connection without answering
	FailureDropConnection FailureType = "drop_connection"
	// FailurePartialMessage sends only half of the response envelope
	FailurePartialMessage FailureType = "partial_message"
)

// RequestMatcher defines criteria for matching incoming SOAP calls.
// It can match by operation name and optionally by part values.
type RequestMatcher struct {
	// Operation is the remote procedure name to match
	Operation string
	// Matcher is an optional function to match based on the request parts.
	// If nil, only the operation name is used for matching.
	Matcher func(parts []soap.Part) bool
}

// StubResponse defines a pre-configured response for matching calls.
// It returns either a result or a fault, and optionally injects failures.
type StubResponse struct {
	// Matcher determines which requests this stub should handle
	Matcher RequestMatcher
	// Result is the value tree sent back as the response part (mutually exclusive with Fault)
	Result any
	// Fault is sent back with status 500 (mutually exclusive with Result)
	Fault *soap.Fault
	// Failures defines failure injection configurations for this response
	Failures []FailureConfig
}

// FailureConfig defines how and when to inject a specific failure type
type FailureConfig struct {
	// Type specifies the type of failure to inject
	Type FailureType
	// Probability of triggering this failure (0.0 to 1.0)
	Probability float64
	// MinDelay is the minimum delay for FailureRequestDelay
	MinDelay time.Duration
	// MaxDelay is the maximum delay for FailureRequestDelay
	MaxDelay time.Duration
	// StatusCode is the HTTP status for FailureHTTPStatus
	StatusCode int
}

// Request is one call received by the server.
type Request struct {
	Operation  string
	SOAPAction string
	Parts      []soap.Part
}

// Part returns the value of the named part.
func (r Request) Part(name string) (any, bool) {
	m := soap.Message{Parts: r.Parts}
	return m.Part(name)
}

// Server is a fake SEI SOAP server with support for stub responses and failure injection.
type Server struct {
	addr     string
	path     string
	listener net.Listener
	server   *http.Server
	router   *mux.Router

	mu             sync.RWMutex
	stubResponses  []StubResponse
	globalFailures []FailureConfig
	requests       []Request

	// SiglaSistema and IdentificacaoServico, when set, are required on every call.
	// Calls with another identity get the fault SEI sends for an unknown system.
	SiglaSistema         string
	IdentificacaoServico string
}

// NewServer creates a new fake SEI server.
// Use "127.0.0.1:0" to bind to a random available port.
func NewServer(addr string) *Server {
	s := &Server{
		addr: addr,
		path: DefaultPath,
	}

	s.router = mux.NewRouter()
	s.router.HandleFunc(s.path, s.handleWSDL).Methods(http.MethodGet).Queries("wsdl", "")
	s.router.HandleFunc(s.path, s.handleCall).Methods(http.MethodPost)

	return s
}

// Handler exposes the router, for use with httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.router
}

// AddStubResponse adds a stub response configuration to the server.
// Stub responses are matched in the order they were added.
func (s *Server) AddStubResponse(stub StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubResponses = append(s.stubResponses, stub)
}

// SetGlobalFailures sets failure configurations that apply to all requests.
// These are checked before stub-specific failures.
func (s *Server) SetGlobalFailures(failures []FailureConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.globalFailures = failures
}

// Requests returns every call received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Start starts the server and begins accepting HTTP connections.
// Returns an error if the server cannot bind to the specified address.
func (s *Server) Start() error {
	var lc net.ListenConfig
	listener, err := lc.Listen(context.Background(), "tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop shuts down the server and closes all connections
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// Address returns the actual address the server is listening on.
// This is useful when using "127.0.0.1:0" to get the assigned port.
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// URL is the endpoint URL a client should be configured with.
func (s *Server) URL() string {
	return "http://" + s.Address() + s.path
}

func (s *Server) handleWSDL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" name="SeiWS" targetNamespace="Sei">
  <service name="SeiService"><port name="SeiPortService" binding="SeiBinding"/></service>
</definitions>`)
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	globalFailures := s.globalFailures
	s.mu.RUnlock()

	for _, failure := range globalFailures {
		if shouldTriggerFailure(failure.Probability) {
			if err := s.applyFailure(w, failure, nil); err != nil {
				return
			}
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.sendFault(w, "", &soap.Fault{Code: "SOAP-ENV:Client", String: "Bad Request"})
		return
	}
	req, err := soap.Unmarshal(body)
	if err != nil || req.Fault != nil {
		s.sendFault(w, "", &soap.Fault{Code: "SOAP-ENV:Client", String: "Bad Request"})
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Operation:  req.Name,
		SOAPAction: r.Header.Get("SOAPAction"),
		Parts:      req.Parts,
	})
	s.mu.Unlock()

	if fault := s.checkIdentity(req); fault != nil {
		s.sendFault(w, req.Namespace, fault)
		return
	}

	s.mu.RLock()
	var matchedStub *StubResponse
	for i := range s.stubResponses {
		stub := s.stubResponses[i]
		if stub.Matcher.Operation == req.Name {
			if stub.Matcher.Matcher == nil || stub.Matcher.Matcher(req.Parts) {
				matchedStub = &stub
				break
			}
		}
	}
	s.mu.RUnlock()

	if matchedStub == nil {
		s.sendFault(w, req.Namespace, &soap.Fault{
			Code:   "SOAP-ENV:Server",
			String: fmt.Sprintf("Operação [%s] não configurada.", req.Name),
		})
		return
	}

	resp := &soap.Message{
		Namespace: req.Namespace,
		Name:      req.Name + soap.ResponseSuffix,
		Parts:     []soap.Part{{Name: ResultPart, Value: matchedStub.Result}},
	}

	for _, failure := range matchedStub.Failures {
		if shouldTriggerFailure(failure.Probability) {
			if err := s.applyFailure(w, failure, resp); err != nil {
				return
			}
		}
	}

	if matchedStub.Fault != nil {
		s.sendFault(w, req.Namespace, matchedStub.Fault)
		return
	}
	s.sendResponse(w, resp)
}

func (s *Server) checkIdentity(req *soap.Message) *soap.Fault {
	if s.SiglaSistema == "" && s.IdentificacaoServico == "" {
		return nil
	}
	sigla, _ := req.Part("SiglaSistema")
	chave, _ := req.Part("IdentificacaoServico")
	if sigla != s.SiglaSistema {
		return &soap.Fault{Code: "SOAP-ENV:Server", String: fmt.Sprintf("Sistema [%v] não encontrado.", sigla)}
	}
	if chave != s.IdentificacaoServico {
		return &soap.Fault{Code: "SOAP-ENV:Server", String: fmt.Sprintf("Serviço do sistema [%v] não encontrado.", sigla)}
	}
	return nil
}

// applyFailure returns an error when the response has already been written or abandoned.
func (s *Server) applyFailure(w http.ResponseWriter, failure FailureConfig, resp *soap.Message) error {
	switch failure.Type {
	case FailureRequestDelay:
		time.Sleep(randomDuration(failure.MinDelay, failure.MaxDelay))

	case FailureInvalidResponse:
		data := make([]byte, 100)
		if _, err := rand.Read(data); err != nil {
			log.Printf("Error generating invalid response: %v", err)
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		if _, err := w.Write(data); err != nil {
			log.Printf("Error writing invalid response: %v", err)
		}
		return fmt.Errorf("invalid response sent")

	case FailureHTTPStatus:
		code := failure.StatusCode
		if code == 0 {
			code = http.StatusBadGateway
		}
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(code)
		fmt.Fprintf(w, "<html><body>%d %s</body></html>", code, http.StatusText(code))
		return fmt.Errorf("http status %d sent", code)

	case FailureDropConnection:
		hj, ok := w.(http.Hijacker)
		if !ok {
			return fmt.Errorf("connection cannot be hijacked")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			return err
		}
		conn.Close()
		return fmt.Errorf("connection dropped")

	case FailurePartialMessage:
		if resp != nil {
			data, err := soap.Marshal(resp)
			if err != nil {
				return fmt.Errorf("failed to send partial message: %w", err)
			}
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			if _, err := w.Write(data[:len(data)/2]); err != nil {
				log.Printf("Error writing partial message: %v", err)
			}
			return fmt.Errorf("partial message sent")
		}
	}

	return nil
}

func (s *Server) sendResponse(w http.ResponseWriter, resp *soap.Message) {
	data, err := soap.Marshal(resp)
	if err != nil {
		s.sendFault(w, resp.Namespace, &soap.Fault{Code: "SOAP-ENV:Server", String: fmt.Sprintf("sendResponse: %v", err)})
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (s *Server) sendFault(w http.ResponseWriter, namespace string, fault *soap.Fault) {
	data, err := soap.Marshal(&soap.Message{Namespace: namespace, Fault: fault})
	if err != nil {
		log.Printf("Failed to marshal fault: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing fault: %v", err)
	}
}

// cryptoRandInt64 generates a cryptographically secure random int64 in [0, max)
func cryptoRandInt64(rMax int64) int64 {
	if rMax <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(rMax))
	return n.Int64()
}

func shouldTriggerFailure(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return float64(cryptoRandInt64(1<<53))/float64(1<<53) < probability
}

func randomDuration(dMin, dMax time.Duration) time.Duration {
	if dMin >= dMax {
		return dMin
	}
	return dMin + time.Duration(cryptoRandInt64(int64(dMax-dMin)))
}

// MatchOperation creates a RequestMatcher that matches only by operation name
func MatchOperation(operation string) RequestMatcher {
	return RequestMatcher{
		Operation: operation,
	}
}

// MatchOperationWithParts creates a RequestMatcher that matches by operation name
// and part values using a custom matcher function
func MatchOperationWithParts(operation string, matcher func(parts []soap.Part) bool) RequestMatcher {
	return RequestMatcher{
		Operation: operation,
		Matcher:   matcher,
	}
}

// SimpleStubResponse creates a basic stub response for an operation without failure injection
func SimpleStubResponse(operation string, result any) StubResponse {
	return StubResponse{
		Matcher: MatchOperation(operation),
		Result:  result,
	}
}

// FaultStubResponse creates a stub response that returns a SOAP fault
func FaultStubResponse(operation, code, message string) StubResponse {
	return StubResponse{
		Matcher: MatchOperation(operation),
		Fault: &soap.Fault{
			Code:   code,
			String: message,
		},
	}
}
