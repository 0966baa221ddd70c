// Package seictl runs a single SEI operation and prints the decoded result as JSON.
package seictl

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	sei "github.com/sei-ia/sei.go"
	"github.com/sei-ia/sei.go/pkg/models"
	"github.com/sei-ia/sei.go/pkg/sin"
)

// Do runs the configured operation against client and writes the result to w.
// definirControlePrazo has no result and writes {"ok":true}.
func Do(ctx context.Context, client *sei.Client, config *Config, w io.Writer) error {
	if err := config.Validate(); err != nil {
		return err
	}

	res, err := run(ctx, client, config)
	if err != nil {
		return fmt.Errorf("%s: %w", config.Operation, err)
	}

	enc := json.NewEncoder(w)
	if config.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func run(ctx context.Context, client *sei.Client, c *Config) (any, error) {
	switch c.Operation {
	case "listarUnidades":
		return client.ListarUnidades(ctx, c.IDTipoProcedimento, c.IDSerie)
	case "listarUsuarios":
		return client.ListarUsuarios(ctx, c.IDUnidade, c.IDUsuario)
	case "consultarProcedimento":
		return client.ConsultarProcedimento(ctx, c.IDUnidade, c.Protocolo, sei.ConsultarProcedimentoOpcoes{
			RetornarAssuntos:                   c.Completo,
			RetornarInteressados:               c.Completo,
			RetornarObservacoes:                c.Completo,
			RetornarAndamentoGeracao:           c.Completo,
			RetornarAndamentoConclusao:         c.Completo,
			RetornarUltimoAndamento:            c.Completo,
			RetornarUnidadesProcedimentoAberto: c.Completo,
			RetornarProcedimentosRelacionados:  c.Completo,
			RetornarProcedimentosAnexados:      c.Completo,
		})
	case "definirControlePrazo":
		var diasUteis sin.Flag
		if c.DiasUteis != "" {
			f, err := sin.Decode(&c.DiasUteis)
			if err != nil {
				return nil, err
			}
			diasUteis = f
		}
		err := client.DefinirControlePrazo(ctx, c.IDUnidade, []models.DefinicaoControlePrazo{{
			ProtocoloProcedimento: c.Protocolo,
			DataPrazo:             c.DataPrazo,
			Dias:                  c.Dias,
			DiasUteis:             diasUteis,
		}})
		if err != nil {
			return nil, err
		}
		return map[string]bool{"ok": true}, nil
	case "listarMarcadoresUnidade":
		return client.ListarMarcadoresUnidade(ctx, c.IDUnidade)
	case "listarSeries":
		return client.ListarSeries(ctx, c.IDUnidade, c.IDTipoProcedimento)
	case "consultarDocumento":
		return client.ConsultarDocumento(ctx, c.IDUnidade, c.Protocolo, sei.ConsultarDocumentoOpcoes{
			RetornarAndamentoGeracao: c.Completo,
			RetornarAssinaturas:      c.Completo,
			RetornarPublicacao:       c.Completo,
			RetornarCampos:           c.Completo,
		})
	case "listarAndamentos":
		return client.ListarAndamentos(ctx, c.IDUnidade, c.Protocolo, sei.ListarAndamentosOpcoes{
			RetornarAtributos: c.Atributos,
			Andamentos:        c.Andamentos,
			Tarefas:           c.Tarefas,
			TarefasModulos:    c.TarefasModulos,
		})
	case "listarAndamentosMarcadores":
		return client.ListarAndamentosMarcadores(ctx, c.IDUnidade, c.Protocolo, c.Marcadores)
	}
	return nil, fmt.Errorf("unknown operation %q", c.Operation)
}
