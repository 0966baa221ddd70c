package seictl

import (
	"fmt"
	"io"
	"sort"

	"github.com/sei-ia/sei.go/pkg/logger"
)

// Config holds the options of a single seictl invocation.
type Config struct {
	// Operation to run, e.g. "listarUnidades"
	Operation string

	IDUnidade          string
	IDUsuario          string
	IDTipoProcedimento string
	IDSerie            string
	// Protocolo of the procedure or document, depending on the operation
	Protocolo string

	// Ask for every optional section of consultarProcedimento and consultarDocumento
	Completo bool
	// Ask for the attributes of each step in listarAndamentos
	Atributos bool

	// Filters; nil means the filter is not sent
	Andamentos     []string
	Tarefas        []string
	TarefasModulos []string
	Marcadores     []string

	// Deadline for definirControlePrazo
	DataPrazo string
	Dias      string
	DiasUteis string

	// Indent the JSON output
	Pretty bool

	// Append logs to this file instead of writing them to stderr
	LogFile string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{Pretty: true}
}

type requirement struct {
	unidade   bool
	protocolo bool
}

var operations = map[string]requirement{
	"listarUnidades":             {},
	"listarUsuarios":             {unidade: true},
	"consultarProcedimento":      {unidade: true, protocolo: true},
	"definirControlePrazo":       {unidade: true, protocolo: true},
	"listarMarcadoresUnidade":    {unidade: true},
	"listarSeries":               {},
	"consultarDocumento":         {unidade: true, protocolo: true},
	"listarAndamentos":           {unidade: true, protocolo: true},
	"listarAndamentosMarcadores": {unidade: true, protocolo: true},
}

// Operations lists the supported operation names.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Operation == "" {
		return fmt.Errorf("operation is required")
	}
	req, ok := operations[c.Operation]
	if !ok {
		return fmt.Errorf("unknown operation %q", c.Operation)
	}
	if req.unidade && c.IDUnidade == "" {
		return fmt.Errorf("%s requires --unidade", c.Operation)
	}
	if req.protocolo && c.Protocolo == "" {
		return fmt.Errorf("%s requires --protocolo", c.Operation)
	}
	if c.Operation == "definirControlePrazo" {
		if (c.DataPrazo == "") == (c.Dias == "") {
			return fmt.Errorf("definirControlePrazo requires exactly one of --data-prazo and --dias")
		}
		switch c.DiasUteis {
		case "", "S", "N":
		default:
			return fmt.Errorf("--dias-uteis must be S or N")
		}
	}
	return nil
}

// NewLogger builds the command logger at level. Logs go to LogFile when set and to w otherwise.
// The caller closes the returned LogData.
func (c *Config) NewLogger(level string, w io.Writer) (*logger.LogData, error) {
	build := logger.New().FromBuffer(w).WithLevel(level)
	if c.LogFile != "" {
		build = build.FromPath(c.LogFile)
	}
	return build.Make()
}
