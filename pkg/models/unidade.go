package models

import "github.com/sei-ia/sei.go/pkg/sin"

// Unidade is an organizational unit. The three capability flags are tri-state: SEI
// leaves them null when the unit was listed without them.
type Unidade struct {
	IDUnidade    string   `json:"id_unidade"`
	Sigla        string   `json:"sigla"`
	Descricao    string   `json:"descricao"`
	Protocolo    sin.Flag `json:"protocolo"`
	Arquivamento sin.Flag `json:"arquivamento"`
	Ouvidoria    sin.Flag `json:"ouvidoria"`
}

// DecodeUnidade decodes a Unidade. Null capability flags decode to sin.Unknown.
func DecodeUnidade(rec Record) (Unidade, error) {
	r := newReader("Unidade", rec)
	var (
		u   Unidade
		err error
	)
	if u.IDUnidade, err = r.string("IdUnidade"); err != nil {
		return Unidade{}, err
	}
	if u.Sigla, err = r.string("Sigla"); err != nil {
		return Unidade{}, err
	}
	if u.Descricao, err = r.string("Descricao"); err != nil {
		return Unidade{}, err
	}
	if u.Protocolo, err = r.flag("SinProtocolo"); err != nil {
		return Unidade{}, err
	}
	if u.Arquivamento, err = r.flag("SinArquivamento"); err != nil {
		return Unidade{}, err
	}
	if u.Ouvidoria, err = r.flag("SinOuvidoria"); err != nil {
		return Unidade{}, err
	}
	return u, nil
}

// Usuario is a SEI user.
type Usuario struct {
	IDUsuario string `json:"id_usuario"`
	Sigla     string `json:"sigla"`
	Nome      string `json:"nome"`
}

// DecodeUsuario decodes a Usuario record.
func DecodeUsuario(rec Record) (Usuario, error) {
	r := newReader("Usuario", rec)
	var (
		u   Usuario
		err error
	)
	if u.IDUsuario, err = r.string("IdUsuario"); err != nil {
		return Usuario{}, err
	}
	if u.Sigla, err = r.string("Sigla"); err != nil {
		return Usuario{}, err
	}
	if u.Nome, err = r.string("Nome"); err != nil {
		return Usuario{}, err
	}
	return u, nil
}

// UnidadeProcedimentoAberto is a unit where a procedure is open and who it is assigned to there.
type UnidadeProcedimentoAberto struct {
	Unidade           Unidade `json:"unidade"`
	UsuarioAtribuicao Usuario `json:"usuario_atribuicao"`
}

// DecodeUnidadeProcedimentoAberto decodes the entry; both nested records are required.
func DecodeUnidadeProcedimentoAberto(rec Record) (UnidadeProcedimentoAberto, error) {
	r := newReader("UnidadeProcedimentoAberto", rec)
	unidade, err := r.record("Unidade")
	if err != nil {
		return UnidadeProcedimentoAberto{}, err
	}
	usuario, err := r.record("UsuarioAtribuicao")
	if err != nil {
		return UnidadeProcedimentoAberto{}, err
	}

	var out UnidadeProcedimentoAberto
	if out.Unidade, err = DecodeUnidade(unidade); err != nil {
		return UnidadeProcedimentoAberto{}, err
	}
	if out.UsuarioAtribuicao, err = DecodeUsuario(usuario); err != nil {
		return UnidadeProcedimentoAberto{}, err
	}
	return out, nil
}

// Marcador is a tag a unit can attach to procedures.
type Marcador struct {
	IDMarcador string   `json:"id_marcador"`
	Nome       string   `json:"nome"`
	Icone      string   `json:"icone"`
	Ativo      sin.Flag `json:"ativo"`
}

// DecodeMarcador decodes a Marcador record.
func DecodeMarcador(rec Record) (Marcador, error) {
	r := newReader("Marcador", rec)
	var (
		m   Marcador
		err error
	)
	if m.IDMarcador, err = r.string("IdMarcador"); err != nil {
		return Marcador{}, err
	}
	if m.Nome, err = r.string("Nome"); err != nil {
		return Marcador{}, err
	}
	if m.Icone, err = r.string("Icone"); err != nil {
		return Marcador{}, err
	}
	if m.Ativo, err = r.flag("SinAtivo"); err != nil {
		return Marcador{}, err
	}
	return m, nil
}
