package testenv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sei "github.com/sei-ia/sei.go"
)

func TestLiveListarUnidades(t *testing.T) {
	env := Require(t)

	unidades, err := env.Client.ListarUnidades(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, unidades)
	for _, u := range unidades {
		assert.NotEmpty(t, u.IDUnidade)
	}
}

func TestLiveListarUsuarios(t *testing.T) {
	env := Require(t)
	if env.Config.IDUnidade == "" {
		t.Skip("skipping: SEI_ID_UNIDADE is not set")
	}

	_, err := env.Client.ListarUsuarios(context.Background(), env.Config.IDUnidade, env.Config.IDUsuario)
	require.NoError(t, err)
}

func TestLiveConsultarProcedimento(t *testing.T) {
	env := Require(t)
	protocolo := Lookup(t, EnvProtocoloProcesso)

	p, err := env.Client.ConsultarProcedimento(context.Background(), env.Config.IDUnidade, protocolo,
		sei.ConsultarProcedimentoOpcoes{RetornarUltimoAndamento: true, RetornarAssuntos: true})
	require.NoError(t, err)
	assert.NotEmpty(t, p.LinkAcesso)
}

func TestLiveConsultarDocumento(t *testing.T) {
	env := Require(t)
	protocolo := Lookup(t, EnvProtocoloDocumento)

	d, err := env.Client.ConsultarDocumento(context.Background(), env.Config.IDUnidade, protocolo,
		sei.ConsultarDocumentoOpcoes{RetornarCampos: true})
	require.NoError(t, err)
	assert.NotEmpty(t, d.LinkAcesso)
}

func TestNewWithoutSettings(t *testing.T) {
	t.Setenv(EnvURL, "")

	_, err := New()
	assert.ErrorIs(t, err, ErrNotConfigured)
}
