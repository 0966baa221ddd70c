package sei

import (
	"context"

	"github.com/sei-ia/sei.go/pkg/models"
	"github.com/sei-ia/sei.go/pkg/sin"
	"github.com/sei-ia/sei.go/pkg/soap"
)

// ConsultarProcedimentoOpcoes selects the optional sections of consultarProcedimento.
// The zero value sends every switch as "N".
type ConsultarProcedimentoOpcoes struct {
	RetornarAssuntos                   bool
	RetornarInteressados               bool
	RetornarObservacoes                bool
	RetornarAndamentoGeracao           bool
	RetornarAndamentoConclusao         bool
	RetornarUltimoAndamento            bool
	RetornarUnidadesProcedimentoAberto bool
	RetornarProcedimentosRelacionados  bool
	RetornarProcedimentosAnexados      bool
}

// ConsultarDocumentoOpcoes selects the optional sections of consultarDocumento.
type ConsultarDocumentoOpcoes struct {
	RetornarAndamentoGeracao bool
	RetornarAssinaturas      bool
	RetornarPublicacao       bool
	RetornarCampos           bool
}

// ListarAndamentosOpcoes controls listarAndamentos. A nil filter is not sent at all;
// a non-nil empty filter is sent as an empty array.
type ListarAndamentosOpcoes struct {
	RetornarAtributos bool
	Andamentos        []string
	Tarefas           []string
	TarefasModulos    []string
}

func param(name string, value any) soap.Part {
	return soap.Part{Name: name, Value: value}
}

func flag(name string, value bool) soap.Part {
	return soap.Part{Name: name, Value: sin.EncodeBool(value)}
}

func appendFilter(parts []soap.Part, name string, values []string) []soap.Part {
	if values == nil {
		return parts
	}
	return append(parts, param(name, values))
}

// ListarUnidades lists the units, optionally restricted to those that can use a
// procedure type or a document type. Empty ids mean no restriction.
func (c *Client) ListarUnidades(ctx context.Context, idTipoProcedimento, idSerie string) ([]models.Unidade, error) {
	res, err := c.call(ctx, "listarUnidades",
		param("IdTipoProcedimento", idTipoProcedimento),
		param("IdSerie", idSerie),
	)
	if err != nil {
		return nil, err
	}
	return models.DecodeList("Unidade", res, models.DecodeUnidade)
}

// ListarUsuarios lists the users of a unit. An empty idUsuario lists all of them.
func (c *Client) ListarUsuarios(ctx context.Context, idUnidade, idUsuario string) ([]models.Usuario, error) {
	res, err := c.call(ctx, "listarUsuarios",
		param("IdUnidade", idUnidade),
		param("IdUsuario", idUsuario),
	)
	if err != nil {
		return nil, err
	}
	return models.DecodeList("Usuario", res, models.DecodeUsuario)
}

func (c *Client) ConsultarProcedimento(
	ctx context.Context,
	idUnidade, protocoloProcedimento string,
	opcoes ConsultarProcedimentoOpcoes,
) (*models.RetornoConsultaProcedimento, error) {
	res, err := c.call(ctx, "consultarProcedimento",
		param("IdUnidade", idUnidade),
		param("ProtocoloProcedimento", protocoloProcedimento),
		flag("SinRetornarAssuntos", opcoes.RetornarAssuntos),
		flag("SinRetornarInteressados", opcoes.RetornarInteressados),
		flag("SinRetornarObservacoes", opcoes.RetornarObservacoes),
		flag("SinRetornarAndamentoGeracao", opcoes.RetornarAndamentoGeracao),
		flag("SinRetornarAndamentoConclusao", opcoes.RetornarAndamentoConclusao),
		flag("SinRetornarUltimoAndamento", opcoes.RetornarUltimoAndamento),
		flag("SinRetornarUnidadesProcedimentoAberto", opcoes.RetornarUnidadesProcedimentoAberto),
		flag("SinRetornarProcedimentosRelacionados", opcoes.RetornarProcedimentosRelacionados),
		flag("SinRetornarProcedimentosAnexados", opcoes.RetornarProcedimentosAnexados),
	)
	if err != nil {
		return nil, err
	}

	rec, err := models.AsRecord("RetornoConsultaProcedimento", res)
	if err != nil {
		return nil, err
	}
	p, err := models.DecodeRetornoConsultaProcedimento(rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DefinirControlePrazo sets or changes deadline control entries of procedures in a unit.
func (c *Client) DefinirControlePrazo(ctx context.Context, idUnidade string, definicoes []models.DefinicaoControlePrazo) error {
	items := make([]any, len(definicoes))
	for i, d := range definicoes {
		items[i] = d.Struct()
	}

	_, err := c.call(ctx, "definirControlePrazo",
		param("IdUnidade", idUnidade),
		param("Definicoes", soap.Array{ItemType: soap.TypeName("DefinicaoControlePrazo"), Items: items}),
	)
	return err
}

// ListarMarcadoresUnidade lists the tags of a unit.
func (c *Client) ListarMarcadoresUnidade(ctx context.Context, idUnidade string) ([]models.Marcador, error) {
	res, err := c.call(ctx, "listarMarcadoresUnidade",
		param("IdUnidade", idUnidade),
	)
	if err != nil {
		return nil, err
	}
	return models.DecodeList("Marcador", res, models.DecodeMarcador)
}

// ListarSeries lists the document types, such as Memorando or Despacho, optionally
// restricted to a unit and a procedure type.
func (c *Client) ListarSeries(ctx context.Context, idUnidade, idTipoProcedimento string) ([]models.Serie, error) {
	res, err := c.call(ctx, "listarSeries",
		param("IdUnidade", idUnidade),
		param("IdTipoProcedimento", idTipoProcedimento),
	)
	if err != nil {
		return nil, err
	}
	return models.DecodeList("Serie", res, models.DecodeSerie)
}

func (c *Client) ConsultarDocumento(
	ctx context.Context,
	idUnidade, protocoloDocumento string,
	opcoes ConsultarDocumentoOpcoes,
) (*models.RetornoConsultaDocumento, error) {
	res, err := c.call(ctx, "consultarDocumento",
		param("IdUnidade", idUnidade),
		param("ProtocoloDocumento", protocoloDocumento),
		flag("SinRetornarAndamentoGeracao", opcoes.RetornarAndamentoGeracao),
		flag("SinRetornarAssinaturas", opcoes.RetornarAssinaturas),
		flag("SinRetornarPublicacao", opcoes.RetornarPublicacao),
		flag("SinRetornarCampos", opcoes.RetornarCampos),
	)
	if err != nil {
		return nil, err
	}

	rec, err := models.AsRecord("RetornoConsultaDocumento", res)
	if err != nil {
		return nil, err
	}
	d, err := models.DecodeRetornoConsultaDocumento(rec)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListarAndamentos lists the workflow steps of a procedure. Blank steps are dropped.
func (c *Client) ListarAndamentos(
	ctx context.Context,
	idUnidade, protocoloProcedimento string,
	opcoes ListarAndamentosOpcoes,
) ([]models.Andamento, error) {
	parts := []soap.Part{
		param("IdUnidade", idUnidade),
		param("ProtocoloProcedimento", protocoloProcedimento),
		flag("SinRetornarAtributos", opcoes.RetornarAtributos),
	}
	parts = appendFilter(parts, "Andamentos", opcoes.Andamentos)
	parts = appendFilter(parts, "Tarefas", opcoes.Tarefas)
	parts = appendFilter(parts, "TarefasModulos", opcoes.TarefasModulos)

	res, err := c.call(ctx, "listarAndamentos", parts...)
	if err != nil {
		return nil, err
	}
	return models.DecodeAndamentos(res)
}

// ListarAndamentosMarcadores lists the tag history of a procedure, optionally only for
// the given tag ids. A nil marcadores is not sent.
func (c *Client) ListarAndamentosMarcadores(
	ctx context.Context,
	idUnidade, protocoloProcedimento string,
	marcadores []string,
) ([]models.ArquivoExtensao, error) {
	parts := []soap.Part{
		param("IdUnidade", idUnidade),
		param("ProtocoloProcedimento", protocoloProcedimento),
	}
	parts = appendFilter(parts, "Marcadores", marcadores)

	res, err := c.call(ctx, "listarAndamentosMarcadores", parts...)
	if err != nil {
		return nil, err
	}
	return models.DecodeList("ArquivoExtensao", res, models.DecodeArquivoExtensao)
}
