// Package testenv provides utilities for testing the SEI Go client against a
// live SEI instance.
//
// The connection information comes from the SEI_* environment variables, or
// from a .env file in the working directory. Tests that need a live instance
// call Require, which skips them when SEI_URL is not set.
package testenv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/rs/zerolog"

	sei "github.com/sei-ia/sei.go"
	"github.com/sei-ia/sei.go/internal/config"
)

const (
	// EnvURL is the environment variable that specifies the SEI endpoint.
	EnvURL = "SEI_URL"

	// EnvProtocoloProcesso names a procedure that exists in the default unit.
	// Live tests that consult a procedure are skipped when it is not set.
	EnvProtocoloProcesso = "SEI_TEST_PROTOCOLO_PROCESSO"

	// EnvProtocoloDocumento names a document that exists in the default unit.
	EnvProtocoloDocumento = "SEI_TEST_PROTOCOLO_DOCUMENTO"
)

var ErrNotConfigured = errors.New(EnvURL + " is not set")

// Env is a connected client plus the settings it was built from.
type Env struct {
	Client *sei.Client
	Config *config.Config
}

func MustNew() *Env {
	env, err := New()
	if err != nil {
		panic(fmt.Sprintf("Failed to create SEI client: %v", err))
	}
	return env
}

// New loads the settings, builds a client and checks that the endpoint answers.
func New() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		if os.Getenv(EnvURL) == "" {
			return nil, ErrNotConfigured
		}
		return nil, err
	}
	return connect(cfg, zerolog.Nop())
}

func connect(cfg *config.Config, logger zerolog.Logger) (*Env, error) {
	conf, err := cfg.Connection()
	if err != nil {
		return nil, err
	}
	conf.Logger = logger

	client, err := sei.FromConfig(conf, cfg.SiglaSistema, cfg.IdentificacaoServico)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to reach SEI: %w", err)
	}
	return &Env{Client: client, Config: cfg}, nil
}

// Require returns a live environment or skips the test. Client logs go to t.Log.
func Require(t testing.TB) *Env {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		if os.Getenv(EnvURL) == "" {
			t.Skipf("skipping live test: %v", ErrNotConfigured)
		}
		t.Fatalf("invalid SEI settings: %v", err)
	}

	env, err := connect(cfg, zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
	if err != nil {
		t.Fatalf("%v", err)
	}
	t.Cleanup(func() {
		_ = env.Client.Close(context.Background())
	})
	return env
}

// Lookup returns the value of key or skips the test when it is unset.
func Lookup(t testing.TB, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("skipping: %s is not set", key)
	}
	return v
}
