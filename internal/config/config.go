// Package config loads client settings from the environment, reading a .env file first when present.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sei-ia/sei.go/pkg/connection"
	"github.com/sei-ia/sei.go/pkg/constants"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	URL                  string
	SiglaSistema         string
	IdentificacaoServico string
	Namespace            string
	SOAPAction           string
	Timeout              time.Duration
	LogLevel             string

	// IDUnidade and IDUsuario are defaults for callers acting on behalf of a fixed
	// unit and user. The client itself never reads them.
	IDUnidade string
	IDUsuario string
}

// Load reads the given dotenv files (".env" when none) without overriding variables
// already set, then builds the Config. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{}

	cfg.URL = strings.TrimSpace(getEnv("SEI_URL", ""))
	if cfg.URL == "" {
		return nil, errors.New("SEI_URL obrigatório")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != constants.HTTPScheme && u.Scheme != constants.HTTPSecureScheme) || u.Host == "" {
		return nil, errors.New("SEI_URL inválida")
	}

	cfg.SiglaSistema = strings.TrimSpace(getEnv("SEI_SIGLA_SISTEMA", ""))
	if cfg.SiglaSistema == "" {
		return nil, errors.New("SEI_SIGLA_SISTEMA obrigatório")
	}
	cfg.IdentificacaoServico = strings.TrimSpace(getEnv("SEI_IDENTIFICACAO_SERVICO", ""))
	if cfg.IdentificacaoServico == "" {
		return nil, errors.New("SEI_IDENTIFICACAO_SERVICO obrigatório")
	}

	cfg.Namespace = strings.TrimSpace(getEnv("SEI_NAMESPACE", constants.DefaultNamespace))
	if cfg.Namespace == "" {
		cfg.Namespace = constants.DefaultNamespace
	}
	cfg.SOAPAction = strings.TrimSpace(getEnv("SEI_SOAP_ACTION", constants.DefaultSOAPAction))
	if cfg.SOAPAction == "" {
		cfg.SOAPAction = constants.DefaultSOAPAction
	}

	cfg.Timeout, err = parseDurationEnv("SEI_TIMEOUT", constants.DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("SEI_LOG_LEVEL", "info")))
	cfg.IDUnidade = strings.TrimSpace(getEnv("SEI_ID_UNIDADE", ""))
	cfg.IDUsuario = strings.TrimSpace(getEnv("SEI_ID_USUARIO", ""))

	return cfg, nil
}

// Connection builds the transport config; the logger and codec keep their defaults.
func (c *Config) Connection() (*connection.Config, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("SEI_URL inválida: %w", err)
	}
	conf := connection.NewConfig(u)
	conf.Namespace = c.Namespace
	conf.SOAPAction = c.SOAPAction
	conf.Timeout = c.Timeout
	return conf, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil || dur <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
