package models

// AtributoAndamento is a name/value detail attached to a workflow step.
type AtributoAndamento struct {
	Nome     string  `json:"nome"`
	Valor    *string `json:"valor"`
	IDOrigem *string `json:"id_origem"`
}

// DecodeAtributoAndamento decodes an AtributoAndamento record.
func DecodeAtributoAndamento(rec Record) (AtributoAndamento, error) {
	r := newReader("AtributoAndamento", rec)
	var (
		a   AtributoAndamento
		err error
	)
	if a.Nome, err = r.string("Nome"); err != nil {
		return AtributoAndamento{}, err
	}
	if a.Valor, err = r.optString("Valor"); err != nil {
		return AtributoAndamento{}, err
	}
	if a.IDOrigem, err = r.optString("IdOrigem"); err != nil {
		return AtributoAndamento{}, err
	}
	return a, nil
}

// Andamento is one workflow step recorded against a procedure.
//
// Atributos is nil when the server did not return attributes and empty when it returned none.
type Andamento struct {
	IDAndamento    *string             `json:"id_andamento"`
	IDTarefa       *string             `json:"id_tarefa"`
	IDTarefaModulo *string             `json:"id_tarefa_modulo"`
	Descricao      *string             `json:"descricao"`
	DataHora       *string             `json:"data_hora"`
	Unidade        *Unidade            `json:"unidade"`
	Usuario        *Usuario            `json:"usuario"`
	Atributos      []AtributoAndamento `json:"atributos"`
}

// andamentoKeys is the record SEI sends instead of omitting a step that does not exist.
var andamentoKeys = []string{
	"IdAndamento",
	"IdTarefa",
	"IdTarefaModulo",
	"Descricao",
	"DataHora",
	"Unidade",
	"Usuario",
	"Atributos",
}

// IsBlankAndamento reports whether rec is exactly the all-null Andamento record.
func IsBlankAndamento(rec Record) bool {
	return isBlank(rec, andamentoKeys)
}

// DecodeAndamento returns nil, nil for the blank record.
func DecodeAndamento(rec Record) (*Andamento, error) {
	if IsBlankAndamento(rec) {
		return nil, nil
	}

	r := newReader("Andamento", rec)
	var (
		a   Andamento
		err error
	)
	if a.IDAndamento, err = r.optString("IdAndamento"); err != nil {
		return nil, err
	}
	if a.IDTarefa, err = r.optString("IdTarefa"); err != nil {
		return nil, err
	}
	if a.IDTarefaModulo, err = r.optString("IdTarefaModulo"); err != nil {
		return nil, err
	}
	if a.Descricao, err = r.optString("Descricao"); err != nil {
		return nil, err
	}
	if a.DataHora, err = r.optString("DataHora"); err != nil {
		return nil, err
	}

	if a.Unidade, err = readOptional(r, "Unidade", optional(DecodeUnidade)); err != nil {
		return nil, err
	}
	if a.Usuario, err = readOptional(r, "Usuario", optional(DecodeUsuario)); err != nil {
		return nil, err
	}

	atributos, err := r.list("Atributos")
	if err != nil {
		return nil, err
	}
	if atributos != nil {
		if a.Atributos, err = DecodeList("AtributoAndamento", atributos, DecodeAtributoAndamento); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

// DecodeAndamentos decodes a list of steps, dropping blank records.
func DecodeAndamentos(v any) ([]Andamento, error) {
	steps, err := DecodeList("Andamento", v, DecodeAndamento)
	if err != nil {
		return nil, err
	}
	out := make([]Andamento, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

// ArquivoExtensao is a tag history entry returned by listarAndamentosMarcadores.
type ArquivoExtensao struct {
	IDAndamentoMarcador string  `json:"id_andamento_marcador"`
	Texto               *string `json:"texto"`
	DataHora            string  `json:"data_hora"`
	Usuario             Usuario `json:"usuario"`
}

// DecodeArquivoExtensao decodes a tag history entry. Texto is null when the tag was set
// without a note.
func DecodeArquivoExtensao(rec Record) (ArquivoExtensao, error) {
	r := newReader("ArquivoExtensao", rec)
	var (
		e   ArquivoExtensao
		err error
	)
	if e.IDAndamentoMarcador, err = r.string("IdAndamentoMarcador"); err != nil {
		return ArquivoExtensao{}, err
	}
	if e.Texto, err = r.optString("Texto"); err != nil {
		return ArquivoExtensao{}, err
	}
	if e.DataHora, err = r.string("DataHora"); err != nil {
		return ArquivoExtensao{}, err
	}
	usuario, err := r.record("Usuario")
	if err != nil {
		return ArquivoExtensao{}, err
	}
	if e.Usuario, err = DecodeUsuario(usuario); err != nil {
		return ArquivoExtensao{}, err
	}
	return e, nil
}
