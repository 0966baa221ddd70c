package fakesei

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sei-ia/sei.go/pkg/connection"
	"github.com/sei-ia/sei.go/pkg/soap"
)

func newConnection(t *testing.T, rawURL string) *connection.HTTPConnection {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	conf := connection.NewConfig(u)
	conf.Timeout = 2 * time.Second
	return connection.NewHTTPConnection(conf)
}

func TestServer(t *testing.T) {
	server := NewServer("127.0.0.1:0")

	server.AddStubResponse(SimpleStubResponse("listarUnidades", []any{
		map[string]any{"IdUnidade": "1", "Sigla": "GAB"},
	}))

	require.NoError(t, server.Start())
	assert.NotEmpty(t, server.Address())
	defer func() {
		require.NoError(t, server.Stop())
	}()

	con := newConnection(t, server.URL())
	require.NoError(t, con.Connect(context.Background()))

	res, err := con.Call(context.Background(), "listarUnidades",
		soap.Part{Name: "SiglaSistema", Value: "SEIIA"},
		soap.Part{Name: "IdTipoProcedimento", Value: ""},
	)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"IdUnidade": "1", "Sigla": "GAB"}}, res)

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "listarUnidades", reqs[0].Operation)
	assert.Equal(t, `"SeiAction"`, reqs[0].SOAPAction)
	v, ok := reqs[0].Part("IdTipoProcedimento")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestServerFaults(t *testing.T) {
	server := NewServer("")
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	server.SiglaSistema = "SEIIA"
	server.IdentificacaoServico = "chave"
	server.AddStubResponse(FaultStubResponse("consultarDocumento", "SOAP-ENV:Server", "Documento não encontrado."))

	con := newConnection(t, ts.URL+DefaultPath)
	ctx := context.Background()

	_, err := con.Call(ctx, "consultarDocumento",
		soap.Part{Name: "SiglaSistema", Value: "OUTRO"},
		soap.Part{Name: "IdentificacaoServico", Value: "chave"},
	)
	var rse *connection.RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.Contains(t, err.Error(), "Sistema [OUTRO] não encontrado.")

	_, err = con.Call(ctx, "consultarDocumento",
		soap.Part{Name: "SiglaSistema", Value: "SEIIA"},
		soap.Part{Name: "IdentificacaoServico", Value: "chave"},
	)
	require.ErrorAs(t, err, &rse)
	fault, ok := rse.Fault()
	require.True(t, ok)
	assert.Equal(t, "Documento não encontrado.", fault.String)

	_, err = con.Call(ctx, "listarSeries",
		soap.Part{Name: "SiglaSistema", Value: "SEIIA"},
		soap.Part{Name: "IdentificacaoServico", Value: "chave"},
	)
	assert.ErrorContains(t, err, "não configurada")
	assert.Len(t, server.Requests(), 3)
}

func TestServerMatcherAndFailures(t *testing.T) {
	server := NewServer("")
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	server.AddStubResponse(StubResponse{
		Matcher: MatchOperationWithParts("listarUsuarios", func(parts []soap.Part) bool {
			m := soap.Message{Parts: parts}
			id, _ := m.Part("IdUnidade")
			return id == "quebrada"
		}),
		Failures: []FailureConfig{{Type: FailureHTTPStatus, Probability: 1, StatusCode: 503}},
	})
	server.AddStubResponse(StubResponse{
		Matcher:  MatchOperationWithParts("listarUsuarios", func(parts []soap.Part) bool { return len(parts) == 2 }),
		Result:   []any{},
		Failures: []FailureConfig{{Type: FailurePartialMessage, Probability: 1}},
	})
	server.AddStubResponse(SimpleStubResponse("listarUsuarios", nil))

	con := newConnection(t, ts.URL+DefaultPath)
	ctx := context.Background()

	_, err := con.Call(ctx, "listarUsuarios", soap.Part{Name: "IdUnidade", Value: "quebrada"})
	var rse *connection.RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, 503, rse.StatusCode)

	_, err = con.Call(ctx, "listarUsuarios", soap.Part{Name: "IdUnidade", Value: "1"}, soap.Part{Name: "IdUsuario", Value: nil})
	require.ErrorAs(t, err, &rse)

	res, err := con.Call(ctx, "listarUsuarios", soap.Part{Name: "IdUnidade", Value: "1"})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestServerDelay(t *testing.T) {
	server := NewServer("")
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	server.SetGlobalFailures([]FailureConfig{{
		Type:        FailureRequestDelay,
		Probability: 1,
		MinDelay:    300 * time.Millisecond,
		MaxDelay:    400 * time.Millisecond,
	}})
	server.AddStubResponse(SimpleStubResponse("listarMarcadoresUnidade", []any{}))

	con := newConnection(t, ts.URL+DefaultPath)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := con.Call(ctx, "listarMarcadoresUnidade")
	var rse *connection.RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	res, err := con.Call(context.Background(), "listarMarcadoresUnidade")
	require.NoError(t, err)
	assert.Equal(t, []any{}, res)
}
