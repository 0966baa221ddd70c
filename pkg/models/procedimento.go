package models

import (
	"github.com/sei-ia/sei.go/pkg/sin"
	"github.com/sei-ia/sei.go/pkg/soap"
)

// TipoProcedimento is a procedure type such as Licitação.
type TipoProcedimento struct {
	IDTipoProcedimento string `json:"id_tipo_procedimento"`
	Nome               string `json:"nome"`
}

// DecodeTipoProcedimento decodes a TipoProcedimento record.
func DecodeTipoProcedimento(rec Record) (TipoProcedimento, error) {
	r := newReader("TipoProcedimento", rec)
	var (
		t   TipoProcedimento
		err error
	)
	if t.IDTipoProcedimento, err = r.string("IdTipoProcedimento"); err != nil {
		return TipoProcedimento{}, err
	}
	if t.Nome, err = r.string("Nome"); err != nil {
		return TipoProcedimento{}, err
	}
	return t, nil
}

// ProcedimentoResumido references a related or attached procedure.
type ProcedimentoResumido struct {
	IDTipoProcedimento    string `json:"id_tipo_procedimento"`
	ProcedimentoFormatado string `json:"procedimento_formatado"`
	TipoProcedimento      string `json:"tipo_procedimento"`
}

// DecodeProcedimentoResumido decodes a related or attached procedure record.
func DecodeProcedimentoResumido(rec Record) (ProcedimentoResumido, error) {
	r := newReader("ProcedimentoResumido", rec)
	var (
		p   ProcedimentoResumido
		err error
	)
	if p.IDTipoProcedimento, err = r.string("IdTipoProcedimento"); err != nil {
		return ProcedimentoResumido{}, err
	}
	if p.ProcedimentoFormatado, err = r.string("ProcedimentoFormatado"); err != nil {
		return ProcedimentoResumido{}, err
	}
	if p.TipoProcedimento, err = r.string("TipoProcedimento"); err != nil {
		return ProcedimentoResumido{}, err
	}
	return p, nil
}

// Assunto is a subject classification of a procedure. Both fields may be null.
type Assunto struct {
	CodigoEstruturado *string `json:"codigo_estruturado"`
	Descricao         *string `json:"descricao"`
}

// DecodeAssunto decodes an Assunto record.
func DecodeAssunto(rec Record) (Assunto, error) {
	r := newReader("Assunto", rec)
	var (
		a   Assunto
		err error
	)
	if a.CodigoEstruturado, err = r.optString("CodigoEstruturado"); err != nil {
		return Assunto{}, err
	}
	if a.Descricao, err = r.optString("Descricao"); err != nil {
		return Assunto{}, err
	}
	return a, nil
}

// Interessado is a person or organization with an interest in a procedure. SEI leaves
// Sigla null for interested parties registered without one.
type Interessado struct {
	Sigla *string `json:"sigla"`
	Nome  *string `json:"nome"`
}

// DecodeInteressado decodes an Interessado record.
func DecodeInteressado(rec Record) (Interessado, error) {
	r := newReader("Interessado", rec)
	var (
		i   Interessado
		err error
	)
	if i.Sigla, err = r.optString("Sigla"); err != nil {
		return Interessado{}, err
	}
	if i.Nome, err = r.optString("Nome"); err != nil {
		return Interessado{}, err
	}
	return i, nil
}

// Observacao is a note a unit left on a procedure.
type Observacao struct {
	Descricao *string `json:"descricao"`
	Unidade   Unidade `json:"unidade"`
}

// DecodeObservacao decodes an Observacao and its nested Unidade, which must not be null.
func DecodeObservacao(rec Record) (Observacao, error) {
	r := newReader("Observacao", rec)
	var (
		o   Observacao
		err error
	)
	if o.Descricao, err = r.optString("Descricao"); err != nil {
		return Observacao{}, err
	}
	unidade, err := r.record("Unidade")
	if err != nil {
		return Observacao{}, err
	}
	if o.Unidade, err = DecodeUnidade(unidade); err != nil {
		return Observacao{}, err
	}
	return o, nil
}

// RetornoConsultaProcedimento is the result of consultarProcedimento.
// The optional sections are only filled when the matching switch was sent as "S";
// the lists are empty, never nil, otherwise.
type RetornoConsultaProcedimento struct {
	IDProcedimento             string                      `json:"id_procedimento"`
	ProcedimentoFormatado      string                      `json:"procedimento_formatado"`
	Especificacao              *string                     `json:"especificacao"`
	DataAutuacao               string                      `json:"data_autuacao"`
	LinkAcesso                 string                      `json:"link_acesso"`
	NivelAcessoLocal           NivelAcesso                 `json:"nivel_acesso_local"`
	NivelAcessoGlobal          NivelAcesso                 `json:"nivel_acesso_global"`
	TipoProcedimento           TipoProcedimento            `json:"tipo_procedimento"`
	AndamentoGeracao           *Andamento                  `json:"andamento_geracao"`
	AndamentoConclusao         *Andamento                  `json:"andamento_conclusao"`
	UltimoAndamento            *Andamento                  `json:"ultimo_andamento"`
	UnidadesProcedimentoAberto []UnidadeProcedimentoAberto `json:"unidades_procedimento_aberto"`
	Assuntos                   []Assunto                   `json:"assuntos"`
	Observacoes                []Observacao                `json:"observacoes"`
	Interessados               []Interessado               `json:"interessados"`
	ProcedimentosRelacionados  []ProcedimentoResumido      `json:"procedimentos_relacionados"`
	ProcedimentosAnexados      []ProcedimentoResumido      `json:"procedimentos_anexados"`
}

// DecodeRetornoConsultaProcedimento decodes the consultarProcedimento result. Blank
// Andamento records become nil and null lists become empty.
func DecodeRetornoConsultaProcedimento(rec Record) (RetornoConsultaProcedimento, error) {
	r := newReader("RetornoConsultaProcedimento", rec)
	var (
		p   RetornoConsultaProcedimento
		err error
	)
	if p.IDProcedimento, err = r.string("IdProcedimento"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.ProcedimentoFormatado, err = r.string("ProcedimentoFormatado"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.Especificacao, err = r.optString("Especificacao"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.DataAutuacao, err = r.string("DataAutuacao"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.LinkAcesso, err = r.string("LinkAcesso"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.NivelAcessoLocal, err = r.nivelAcesso("NivelAcessoLocal"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.NivelAcessoGlobal, err = r.nivelAcesso("NivelAcessoGlobal"); err != nil {
		return RetornoConsultaProcedimento{}, err
	}

	tipo, err := r.record("TipoProcedimento")
	if err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.TipoProcedimento, err = DecodeTipoProcedimento(tipo); err != nil {
		return RetornoConsultaProcedimento{}, err
	}

	if p.AndamentoGeracao, err = readOptional(r, "AndamentoGeracao", DecodeAndamento); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.AndamentoConclusao, err = readOptional(r, "AndamentoConclusao", DecodeAndamento); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.UltimoAndamento, err = readOptional(r, "UltimoAndamento", DecodeAndamento); err != nil {
		return RetornoConsultaProcedimento{}, err
	}

	if p.UnidadesProcedimentoAberto, err = readList(r, "UnidadesProcedimentoAberto", "UnidadeProcedimentoAberto", DecodeUnidadeProcedimentoAberto); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.Assuntos, err = readList(r, "Assuntos", "Assunto", DecodeAssunto); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.Observacoes, err = readList(r, "Observacoes", "Observacao", DecodeObservacao); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.Interessados, err = readList(r, "Interessados", "Interessado", DecodeInteressado); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.ProcedimentosRelacionados, err = readList(r, "ProcedimentosRelacionados", "ProcedimentoResumido", DecodeProcedimentoResumido); err != nil {
		return RetornoConsultaProcedimento{}, err
	}
	if p.ProcedimentosAnexados, err = readList(r, "ProcedimentosAnexados", "ProcedimentoResumido", DecodeProcedimentoResumido); err != nil {
		return RetornoConsultaProcedimento{}, err
	}

	return p, nil
}

// DefinicaoControlePrazo is one deadline entry sent with definirControlePrazo.
// DataPrazo and Dias are alternatives; SEI expects dates as dd/mm/yyyy.
type DefinicaoControlePrazo struct {
	ProtocoloProcedimento string
	DataPrazo             string
	Dias                  string
	DiasUteis             sin.Flag
}

// Struct renders the entry in the order the service declares its fields.
func (d DefinicaoControlePrazo) Struct() soap.Struct {
	return soap.Struct{
		{Name: "ProtocoloProcedimento", Value: d.ProtocoloProcedimento},
		{Name: "DataPrazo", Value: d.DataPrazo},
		{Name: "Dias", Value: d.Dias},
		{Name: "SinDiasUteis", Value: sin.Encode(d.DiasUteis)},
	}
}
