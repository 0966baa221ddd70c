package models

// Serie is a document type such as Memorando or Despacho.
type Serie struct {
	IDSerie        string          `json:"id_serie"`
	Nome           string          `json:"nome"`
	Aplicabilidade *Aplicabilidade `json:"aplicabilidade"`
}

// DecodeSerie decodes a Serie. A null Aplicabilidade leaves the field nil.
func DecodeSerie(rec Record) (Serie, error) {
	r := newReader("Serie", rec)
	var (
		s   Serie
		err error
	)
	if s.IDSerie, err = r.string("IdSerie"); err != nil {
		return Serie{}, err
	}
	if s.Nome, err = r.string("Nome"); err != nil {
		return Serie{}, err
	}
	code, err := r.optString("Aplicabilidade")
	if err != nil {
		return Serie{}, err
	}
	if code != nil {
		a, err := ParseAplicabilidade(*code)
		if err != nil {
			return Serie{}, r.fail("Aplicabilidade", err)
		}
		s.Aplicabilidade = &a
	}
	return s, nil
}

// Assinatura is a signature on a document. CargoFuncao is null for signers registered
// without a role.
type Assinatura struct {
	Nome        string  `json:"nome"`
	CargoFuncao *string `json:"cargo_funcao"`
	DataHora    string  `json:"data_hora"`
	IDUsuario   string  `json:"id_usuario"`
	IDOrigem    *string `json:"id_origem"`
	IDOrgao     *string `json:"id_orgao"`
	Sigla       string  `json:"sigla"`
}

// DecodeAssinatura decodes an Assinatura record.
func DecodeAssinatura(rec Record) (Assinatura, error) {
	r := newReader("Assinatura", rec)
	var (
		a   Assinatura
		err error
	)
	if a.Nome, err = r.string("Nome"); err != nil {
		return Assinatura{}, err
	}
	if a.CargoFuncao, err = r.optString("CargoFuncao"); err != nil {
		return Assinatura{}, err
	}
	if a.DataHora, err = r.string("DataHora"); err != nil {
		return Assinatura{}, err
	}
	if a.IDUsuario, err = r.string("IdUsuario"); err != nil {
		return Assinatura{}, err
	}
	if a.IDOrigem, err = r.optString("IdOrigem"); err != nil {
		return Assinatura{}, err
	}
	if a.IDOrgao, err = r.optString("IdOrgao"); err != nil {
		return Assinatura{}, err
	}
	if a.Sigla, err = r.string("Sigla"); err != nil {
		return Assinatura{}, err
	}
	return a, nil
}

// Campo is a form field of a document.
type Campo struct {
	Nome  string  `json:"nome"`
	Valor *string `json:"valor"`
}

// DecodeCampo decodes a Campo. Valor is null for fields left blank.
func DecodeCampo(rec Record) (Campo, error) {
	r := newReader("Campo", rec)
	var (
		c   Campo
		err error
	)
	if c.Nome, err = r.string("Nome"); err != nil {
		return Campo{}, err
	}
	if c.Valor, err = r.optString("Valor"); err != nil {
		return Campo{}, err
	}
	return c, nil
}

// Publicacao describes the publication of a document in an official gazette.
type Publicacao struct {
	IDPublicacao         *string `json:"id_publicacao"`
	IDDocumento          *string `json:"id_documento"`
	StaMotivo            *string `json:"sta_motivo"`
	Resumo               *string `json:"resumo"`
	IDVeiculoPublicacao  *string `json:"id_veiculo_publicacao"`
	NomeVeiculo          *string `json:"nome_veiculo"`
	StaTipoVeiculo       *string `json:"sta_tipo_veiculo"`
	Numero               *string `json:"numero"`
	DataDisponibilizacao *string `json:"data_disponibilizacao"`
	DataPublicacao       *string `json:"data_publicacao"`
	Estado               *string `json:"estado"`
	ImprensaNacional     *string `json:"imprensa_nacional"`
}

var publicacaoKeys = []string{
	"IdPublicacao",
	"IdDocumento",
	"StaMotivo",
	"Resumo",
	"IdVeiculoPublicacao",
	"NomeVeiculo",
	"StaTipoVeiculo",
	"Numero",
	"DataDisponibilizacao",
	"DataPublicacao",
	"Estado",
	"ImprensaNacional",
}

// IsBlankPublicacao reports whether rec is exactly the all-null Publicacao record.
func IsBlankPublicacao(rec Record) bool {
	return isBlank(rec, publicacaoKeys)
}

// DecodePublicacao returns nil, nil for the blank record.
func DecodePublicacao(rec Record) (*Publicacao, error) {
	if IsBlankPublicacao(rec) {
		return nil, nil
	}

	r := newReader("Publicacao", rec)
	var p Publicacao
	fields := []struct {
		key string
		dst **string
	}{
		{"IdPublicacao", &p.IDPublicacao},
		{"IdDocumento", &p.IDDocumento},
		{"StaMotivo", &p.StaMotivo},
		{"Resumo", &p.Resumo},
		{"IdVeiculoPublicacao", &p.IDVeiculoPublicacao},
		{"NomeVeiculo", &p.NomeVeiculo},
		{"StaTipoVeiculo", &p.StaTipoVeiculo},
		{"Numero", &p.Numero},
		{"DataDisponibilizacao", &p.DataDisponibilizacao},
		{"DataPublicacao", &p.DataPublicacao},
		{"Estado", &p.Estado},
		{"ImprensaNacional", &p.ImprensaNacional},
	}
	for _, f := range fields {
		v, err := r.optString(f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return &p, nil
}

// RetornoConsultaDocumento is the result of consultarDocumento. LinkAcesso is the URL
// collaborators use to fetch the document content; this package never fetches it.
type RetornoConsultaDocumento struct {
	IDProcedimento        string       `json:"id_procedimento"`
	ProcedimentoFormatado string       `json:"procedimento_formatado"`
	IDDocumento           string       `json:"id_documento"`
	DocumentoFormatado    string       `json:"documento_formatado"`
	NivelAcessoLocal      NivelAcesso  `json:"nivel_acesso_local"`
	NivelAcessoGlobal     NivelAcesso  `json:"nivel_acesso_global"`
	LinkAcesso            string       `json:"link_acesso"`
	Serie                 Serie        `json:"serie"`
	Numero                *string      `json:"numero"`
	NomeArvore            *string      `json:"nome_arvore"`
	Descricao             *string      `json:"descricao"`
	Data                  string       `json:"data"`
	UnidadeElaboradora    Unidade      `json:"unidade_elaboradora"`
	AndamentoGeracao      *Andamento   `json:"andamento_geracao"`
	Assinaturas           []Assinatura `json:"assinaturas"`
	Publicacao            *Publicacao  `json:"publicacao"`
	Campos                []Campo      `json:"campos"`
}

// DecodeRetornoConsultaDocumento decodes the consultarDocumento result.
func DecodeRetornoConsultaDocumento(rec Record) (RetornoConsultaDocumento, error) {
	r := newReader("RetornoConsultaDocumento", rec)
	var (
		d   RetornoConsultaDocumento
		err error
	)
	if d.IDProcedimento, err = r.string("IdProcedimento"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.ProcedimentoFormatado, err = r.string("ProcedimentoFormatado"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.IDDocumento, err = r.string("IdDocumento"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.DocumentoFormatado, err = r.string("DocumentoFormatado"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.LinkAcesso, err = r.string("LinkAcesso"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.NivelAcessoLocal, err = r.nivelAcesso("NivelAcessoLocal"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.NivelAcessoGlobal, err = r.nivelAcesso("NivelAcessoGlobal"); err != nil {
		return RetornoConsultaDocumento{}, err
	}

	serie, err := r.record("Serie")
	if err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Serie, err = DecodeSerie(serie); err != nil {
		return RetornoConsultaDocumento{}, err
	}

	if d.Numero, err = r.optString("Numero"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.NomeArvore, err = r.optString("NomeArvore"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Descricao, err = r.optString("Descricao"); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Data, err = r.string("Data"); err != nil {
		return RetornoConsultaDocumento{}, err
	}

	unidade, err := r.record("UnidadeElaboradora")
	if err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.UnidadeElaboradora, err = DecodeUnidade(unidade); err != nil {
		return RetornoConsultaDocumento{}, err
	}

	if d.AndamentoGeracao, err = readOptional(r, "AndamentoGeracao", DecodeAndamento); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Assinaturas, err = readList(r, "Assinaturas", "Assinatura", DecodeAssinatura); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Publicacao, err = readOptional(r, "Publicacao", DecodePublicacao); err != nil {
		return RetornoConsultaDocumento{}, err
	}
	if d.Campos, err = readList(r, "Campos", "Campo", DecodeCampo); err != nil {
		return RetornoConsultaDocumento{}, err
	}

	return d, nil
}
