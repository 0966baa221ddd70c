// Package seitools exposes a handful of read-only SEI lookups as named tools that take
// JSON arguments and return JSON results, the shape an LLM agent runtime expects.
package seitools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	sei "github.com/sei-ia/sei.go"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Defaults fill in arguments the caller leaves empty.
type Defaults struct {
	IDUnidade string
	IDUsuario string
}

// Parameter describes one JSON argument of a tool.
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Description is what an agent runtime needs to advertise a tool.
type Description struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Arguments is the union of every tool's arguments. Unused fields are ignored.
type Arguments struct {
	IDUnidade          string `json:"id_unidade"`
	IDUsuario          string `json:"id_usuario"`
	ProtocoloProcesso  string `json:"protocolo_processo"`
	ProtocoloDocumento string `json:"protocolo_documento"`
}

type tool struct {
	desc Description
	run  func(ctx context.Context, args Arguments) (any, error)
}

type Toolbox struct {
	client   *sei.Client
	defaults Defaults
	logger   zerolog.Logger
	tools    map[string]tool
}

// New builds the toolbox around client. The logger may be the zero value.
func New(client *sei.Client, defaults Defaults, logger zerolog.Logger) *Toolbox {
	t := &Toolbox{
		client:   client,
		defaults: defaults,
		logger:   logger,
		tools:    map[string]tool{},
	}

	unidade := Parameter{Name: "id_unidade", Description: "Id da unidade; usa a unidade padrão quando vazio"}

	t.register(Description{
		Name:        "get_usuario",
		Description: "Consulta os dados de um usuário do SEI na unidade",
		Parameters: []Parameter{
			unidade,
			{Name: "id_usuario", Description: "Id do usuário; usa o usuário padrão quando vazio"},
		},
	}, t.getUsuario)

	t.register(Description{
		Name:        "get_processo",
		Description: "Consulta um processo do SEI com todas as seções opcionais",
		Parameters: []Parameter{
			unidade,
			{Name: "protocolo_processo", Description: "Número do processo", Required: true},
		},
	}, t.getProcesso)

	t.register(Description{
		Name:        "get_documento",
		Description: "Consulta um documento do SEI com andamento de geração, assinaturas e campos",
		Parameters: []Parameter{
			unidade,
			{Name: "protocolo_documento", Description: "Número do documento", Required: true},
		},
	}, t.getDocumento)

	t.register(Description{
		Name:        "link_documento",
		Description: "Retorna o link de acesso ao conteúdo de um documento do SEI",
		Parameters: []Parameter{
			unidade,
			{Name: "protocolo_documento", Description: "Número do documento", Required: true},
		},
	}, t.linkDocumento)

	return t
}

func (t *Toolbox) register(desc Description, run func(context.Context, Arguments) (any, error)) {
	t.tools[desc.Name] = tool{desc: desc, run: run}
}

// Describe lists the tools sorted by name.
func (t *Toolbox) Describe() []Description {
	out := make([]Description, 0, len(t.tools))
	for _, tl := range t.tools {
		out = append(out, tl.desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke runs the named tool with JSON-encoded arguments and returns the JSON-encoded result.
// Empty arguments are treated as {}.
func (t *Toolbox) Invoke(ctx context.Context, name string, rawArgs []byte) ([]byte, error) {
	tl, ok := t.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	var args Arguments
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, name, err)
		}
	}
	if args.IDUnidade == "" {
		args.IDUnidade = t.defaults.IDUnidade
	}
	for _, p := range tl.desc.Parameters {
		if p.Required && args.value(p.Name) == "" {
			return nil, fmt.Errorf("%w: %s requires %s", ErrInvalidArguments, name, p.Name)
		}
	}

	t.logger.Debug().Str("tool", name).Str("id_unidade", args.IDUnidade).Msg("invoking tool")

	res, err := tl.run(ctx, args)
	if err != nil {
		t.logger.Error().Err(err).Str("tool", name).Msg("tool failed")
		return nil, err
	}
	return json.Marshal(res)
}

// InvokeCall runs a tool call payload of the form {"name": ..., "arguments": ...}.
// arguments may be an object, a JSON-encoded string holding one, null or absent.
func (t *Toolbox) InvokeCall(ctx context.Context, payload []byte) ([]byte, error) {
	name, err := jsonparser.GetString(payload, "name")
	if err != nil {
		return nil, fmt.Errorf("%w: name: %v", ErrInvalidArguments, err)
	}

	args, dataType, _, err := jsonparser.Get(payload, "arguments")
	if err != nil && dataType != jsonparser.NotExist {
		return nil, fmt.Errorf("%w: arguments: %v", ErrInvalidArguments, err)
	}
	switch dataType {
	case jsonparser.Object:
	case jsonparser.NotExist, jsonparser.Null:
		args = nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(args)
		if err != nil {
			return nil, fmt.Errorf("%w: arguments: %v", ErrInvalidArguments, err)
		}
		args = []byte(s)
	default:
		return nil, fmt.Errorf("%w: arguments must be an object, got %s", ErrInvalidArguments, dataType)
	}
	return t.Invoke(ctx, name, args)
}

func (a Arguments) value(name string) string {
	switch name {
	case "id_unidade":
		return a.IDUnidade
	case "id_usuario":
		return a.IDUsuario
	case "protocolo_processo":
		return a.ProtocoloProcesso
	case "protocolo_documento":
		return a.ProtocoloDocumento
	}
	return ""
}

func (t *Toolbox) getUsuario(ctx context.Context, args Arguments) (any, error) {
	if args.IDUsuario == "" {
		args.IDUsuario = t.defaults.IDUsuario
	}
	return t.client.ListarUsuarios(ctx, args.IDUnidade, args.IDUsuario)
}

func (t *Toolbox) getProcesso(ctx context.Context, args Arguments) (any, error) {
	return t.client.ConsultarProcedimento(ctx, args.IDUnidade, args.ProtocoloProcesso, sei.ConsultarProcedimentoOpcoes{
		RetornarAssuntos:                   true,
		RetornarInteressados:               true,
		RetornarObservacoes:                true,
		RetornarAndamentoGeracao:           true,
		RetornarAndamentoConclusao:         true,
		RetornarUltimoAndamento:            true,
		RetornarUnidadesProcedimentoAberto: true,
		RetornarProcedimentosRelacionados:  true,
		RetornarProcedimentosAnexados:      true,
	})
}

func (t *Toolbox) getDocumento(ctx context.Context, args Arguments) (any, error) {
	return t.client.ConsultarDocumento(ctx, args.IDUnidade, args.ProtocoloDocumento, sei.ConsultarDocumentoOpcoes{
		RetornarAndamentoGeracao: true,
		RetornarAssinaturas:      true,
		RetornarCampos:           true,
	})
}

type link struct {
	DocumentoFormatado string `json:"documento_formatado"`
	LinkAcesso         string `json:"link_acesso"`
}

func (t *Toolbox) linkDocumento(ctx context.Context, args Arguments) (any, error) {
	doc, err := t.client.ConsultarDocumento(ctx, args.IDUnidade, args.ProtocoloDocumento, sei.ConsultarDocumentoOpcoes{})
	if err != nil {
		return nil, err
	}
	return link{DocumentoFormatado: doc.DocumentoFormatado, LinkAcesso: doc.LinkAcesso}, nil
}
