package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seiVars = []string{
	"SEI_URL",
	"SEI_SIGLA_SISTEMA",
	"SEI_IDENTIFICACAO_SERVICO",
	"SEI_NAMESPACE",
	"SEI_SOAP_ACTION",
	"SEI_TIMEOUT",
	"SEI_LOG_LEVEL",
	"SEI_ID_UNIDADE",
	"SEI_ID_USUARIO",
}

// clearEnv unsets every SEI_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range seiVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEI_URL", "https://sei.example.gov.br/sei/ws/SeiWS.php")
	t.Setenv("SEI_SIGLA_SISTEMA", "SEIIA")
	t.Setenv("SEI_IDENTIFICACAO_SERVICO", "chave")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)
	assert.Equal(t, "Sei", cfg.Namespace)
	assert.Equal(t, "SeiAction", cfg.SOAPAction)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.IDUnidade)

	conf, err := cfg.Connection()
	require.NoError(t, err)
	assert.Equal(t, "sei.example.gov.br", conf.URL.Host)
	assert.Equal(t, 30*time.Second, conf.Timeout)
	assert.NotNil(t, conf.Marshaler)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEI_TIMEOUT", "5s")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`SEI_URL=http://localhost:8080/sei/ws/SeiWS.php
SEI_SIGLA_SISTEMA=SEIIA
SEI_IDENTIFICACAO_SERVICO="chave secreta"
SEI_TIMEOUT=1m
SEI_LOG_LEVEL=DEBUG
SEI_ID_UNIDADE=110047993
SEI_ID_USUARIO=100001
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chave secreta", cfg.IdentificacaoServico)
	// Variables already in the environment win over the file.
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "110047993", cfg.IDUnidade)
	assert.Equal(t, "100001", cfg.IDUsuario)
}

func TestLoadErrors(t *testing.T) {
	testcases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing url",
			env:  map[string]string{},
			want: "SEI_URL obrigatório",
		},
		{
			name: "bad url",
			env:  map[string]string{"SEI_URL": "ftp://sei"},
			want: "SEI_URL inválida",
		},
		{
			name: "missing identity",
			env:  map[string]string{"SEI_URL": "http://sei", "SEI_SIGLA_SISTEMA": "SEIIA"},
			want: "SEI_IDENTIFICACAO_SERVICO obrigatório",
		},
		{
			name: "bad timeout",
			env: map[string]string{
				"SEI_URL":                   "http://sei",
				"SEI_SIGLA_SISTEMA":         "SEIIA",
				"SEI_IDENTIFICACAO_SERVICO": "chave",
				"SEI_TIMEOUT":               "soon",
			},
			want: "SEI_TIMEOUT inválido",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(noDotenv(t))
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}
