package seictl

import (
	"bytes"
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sei "github.com/sei-ia/sei.go"
	"github.com/sei-ia/sei.go/internal/fakesei"
	"github.com/sei-ia/sei.go/pkg/connection"
)

func newClient(t *testing.T) (*fakesei.Server, *sei.Client) {
	t.Helper()

	server := fakesei.NewServer("")
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL + fakesei.DefaultPath)
	require.NoError(t, err)
	client, err := sei.FromConfig(connection.NewConfig(u), "SEIIA", "chave")
	require.NoError(t, err)
	return server, client
}

func TestDoListarUnidades(t *testing.T) {
	server, client := newClient(t)
	server.AddStubResponse(fakesei.SimpleStubResponse("listarUnidades", []any{map[string]any{
		"IdUnidade":       "110047993",
		"Sigla":           "ORACLE",
		"Descricao":       "Unidade Teste",
		"SinProtocolo":    "S",
		"SinArquivamento": "N",
		"SinOuvidoria":    nil,
	}}))

	var out bytes.Buffer
	err := Do(context.Background(), client, &Config{Operation: "listarUnidades"}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id_unidade": "110047993",
		"sigla": "ORACLE",
		"descricao": "Unidade Teste",
		"protocolo": true,
		"arquivamento": false,
		"ouvidoria": null
	}]`, out.String())
}

func TestDoDefinirControlePrazo(t *testing.T) {
	server, client := newClient(t)
	server.AddStubResponse(fakesei.SimpleStubResponse("definirControlePrazo", "1"))

	var out bytes.Buffer
	err := Do(context.Background(), client, &Config{
		Operation: "definirControlePrazo",
		IDUnidade: "110047993",
		Protocolo: "00001.000001/2024-01",
		Dias:      "10",
		DiasUteis: "S",
	}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, out.String())

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	v, ok := reqs[0].Part("Definicoes")
	require.True(t, ok)
	assert.NotNil(t, v)
}

func TestDoFilterNotSentWhenNil(t *testing.T) {
	server, client := newClient(t)
	server.AddStubResponse(fakesei.SimpleStubResponse("listarAndamentosMarcadores", []any{}))

	var out bytes.Buffer
	err := Do(context.Background(), client, &Config{
		Operation: "listarAndamentosMarcadores",
		IDUnidade: "1",
		Protocolo: "2",
	}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out.String())

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	_, ok := reqs[0].Part("Marcadores")
	assert.False(t, ok)
}

func TestDoReportsFault(t *testing.T) {
	server, client := newClient(t)
	server.AddStubResponse(fakesei.FaultStubResponse("listarSeries", "SOAP-ENV:Server", "Unidade não encontrada."))

	var out bytes.Buffer
	err := Do(context.Background(), client, &Config{Operation: "listarSeries", IDUnidade: "9"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listarSeries")
	assert.Contains(t, err.Error(), "Unidade não encontrada.")

	var remote *sei.RemoteServiceError
	assert.ErrorAs(t, err, &remote)
	assert.Empty(t, out.String())
}

func TestDoValidates(t *testing.T) {
	_, client := newClient(t)
	err := Do(context.Background(), client, &Config{Operation: "listarUsuarios"}, &bytes.Buffer{})
	assert.EqualError(t, err, "listarUsuarios requires --unidade")
}
