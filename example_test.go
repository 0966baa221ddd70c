package sei_test

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/sei-ia/sei.go"
	"github.com/sei-ia/sei.go/internal/fakesei"
)

func ExampleClient_ListarUnidades() {
	server := fakesei.NewServer("")
	server.AddStubResponse(fakesei.SimpleStubResponse("listarUnidades", []any{
		map[string]any{
			"IdUnidade":       "110047993",
			"Sigla":           "ORACLE",
			"Descricao":       "Unidade Teste",
			"SinProtocolo":    "S",
			"SinArquivamento": "N",
			"SinOuvidoria":    nil,
		},
	}))
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	client, err := sei.FromEndpointURLString(ts.URL+fakesei.DefaultPath, "SEIIA", "chave")
	if err != nil {
		panic(err)
	}

	unidades, err := client.ListarUnidades(context.Background(), "", "")
	if err != nil {
		panic(err)
	}

	for _, u := range unidades {
		fmt.Println(u.IDUnidade, u.Sigla, u.Protocolo, u.Arquivamento, u.Ouvidoria)
	}

	// Output:
	// 110047993 ORACLE true false unknown
}

func ExampleClient_ConsultarDocumento() {
	server := fakesei.NewServer("")
	server.AddStubResponse(fakesei.SimpleStubResponse("consultarDocumento", map[string]any{
		"IdProcedimento":        "123",
		"ProcedimentoFormatado": "00001.000001/2024-01",
		"IdDocumento":           "456",
		"DocumentoFormatado":    "0000456",
		"NivelAcessoLocal":      "0",
		"NivelAcessoGlobal":     "0",
		"LinkAcesso":            "https://sei.example/documento/456",
		"Serie":                 map[string]any{"IdSerie": "12", "Nome": "Despacho", "Aplicabilidade": "I"},
		"Numero":                nil,
		"NomeArvore":            nil,
		"Descricao":             nil,
		"Data":                  "03/02/2024",
		"UnidadeElaboradora": map[string]any{
			"IdUnidade": "110047993", "Sigla": "ORACLE", "Descricao": "Unidade Teste",
			"SinProtocolo": nil, "SinArquivamento": nil, "SinOuvidoria": nil,
		},
		"AndamentoGeracao": nil,
		"Assinaturas":      []any{},
		"Publicacao":       nil,
		"Campos":           []any{},
	}))
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	client, err := sei.FromEndpointURLString(ts.URL+fakesei.DefaultPath, "SEIIA", "chave")
	if err != nil {
		panic(err)
	}

	doc, err := client.ConsultarDocumento(context.Background(), "110047993", "0000456", sei.ConsultarDocumentoOpcoes{})
	if err != nil {
		panic(err)
	}

	// LinkAcesso is where the document content can be fetched from.
	fmt.Println(doc.Serie.Nome, doc.LinkAcesso, doc.NivelAcessoGlobal)

	// Output:
	// Despacho https://sei.example/documento/456 publico
}
