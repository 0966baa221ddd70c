package models

import (
	"fmt"

	"github.com/sei-ia/sei.go/pkg/constants"
)

// NivelAcesso is the access level of a procedure or document.
type NivelAcesso int

const (
	NivelAcessoPublico NivelAcesso = iota
	NivelAcessoRestrito
	NivelAcessoSigiloso
)

// ParseNivelAcesso maps the wire codes "0", "1" and "2". Any other code is ErrInvalidEnumCode.
func ParseNivelAcesso(code string) (NivelAcesso, error) {
	switch code {
	case "0":
		return NivelAcessoPublico, nil
	case "1":
		return NivelAcessoRestrito, nil
	case "2":
		return NivelAcessoSigiloso, nil
	default:
		return 0, fmt.Errorf("%w: NivelAcesso %q", constants.ErrInvalidEnumCode, code)
	}
}

// Code is the inverse of ParseNivelAcesso.
func (n NivelAcesso) Code() (string, error) {
	switch n {
	case NivelAcessoPublico:
		return "0", nil
	case NivelAcessoRestrito:
		return "1", nil
	case NivelAcessoSigiloso:
		return "2", nil
	default:
		return "", fmt.Errorf("%w: NivelAcesso(%d)", constants.ErrInvalidEnumCode, int(n))
	}
}

func (n NivelAcesso) String() string {
	switch n {
	case NivelAcessoPublico:
		return "publico"
	case NivelAcessoRestrito:
		return "restrito"
	case NivelAcessoSigiloso:
		return "sigiloso"
	default:
		return fmt.Sprintf("NivelAcesso(%d)", int(n))
	}
}

// MarshalText renders the name returned by String. Values outside the enum fail.
func (n NivelAcesso) MarshalText() ([]byte, error) {
	if _, err := n.Code(); err != nil {
		return nil, err
	}
	return []byte(n.String()), nil
}

// Aplicabilidade tells which kind of document a Serie can be used for.
type Aplicabilidade int

const (
	AplicabilidadeInternosExternos Aplicabilidade = iota
	AplicabilidadeInternos
	AplicabilidadeExternos
	AplicabilidadeFormularios
)

// ParseAplicabilidade maps the wire codes "T", "I", "E" and "F". Any other code is ErrInvalidEnumCode.
func ParseAplicabilidade(code string) (Aplicabilidade, error) {
	switch code {
	case "T":
		return AplicabilidadeInternosExternos, nil
	case "I":
		return AplicabilidadeInternos, nil
	case "E":
		return AplicabilidadeExternos, nil
	case "F":
		return AplicabilidadeFormularios, nil
	default:
		return 0, fmt.Errorf("%w: Aplicabilidade %q", constants.ErrInvalidEnumCode, code)
	}
}

// Code is the inverse of ParseAplicabilidade.
func (a Aplicabilidade) Code() (string, error) {
	switch a {
	case AplicabilidadeInternosExternos:
		return "T", nil
	case AplicabilidadeInternos:
		return "I", nil
	case AplicabilidadeExternos:
		return "E", nil
	case AplicabilidadeFormularios:
		return "F", nil
	default:
		return "", fmt.Errorf("%w: Aplicabilidade(%d)", constants.ErrInvalidEnumCode, int(a))
	}
}

func (a Aplicabilidade) String() string {
	switch a {
	case AplicabilidadeInternosExternos:
		return "internos_externos"
	case AplicabilidadeInternos:
		return "internos"
	case AplicabilidadeExternos:
		return "externos"
	case AplicabilidadeFormularios:
		return "formularios"
	default:
		return fmt.Sprintf("Aplicabilidade(%d)", int(a))
	}
}

// MarshalText renders the name returned by String. Values outside the enum fail.
func (a Aplicabilidade) MarshalText() ([]byte, error) {
	if _, err := a.Code(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}
