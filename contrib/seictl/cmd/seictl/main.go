package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	sei "github.com/sei-ia/sei.go"
	"github.com/sei-ia/sei.go/contrib/seictl"
	"github.com/sei-ia/sei.go/internal/config"
)

func main() {
	cfg := seictl.NewConfig()

	var envFile string
	flag.StringVar(&envFile, "env-file", ".env", "dotenv file with the SEI_* settings")
	flag.StringVar(&cfg.IDUnidade, "unidade", "", "Id da unidade (defaults to SEI_ID_UNIDADE)")
	flag.StringVar(&cfg.IDUsuario, "usuario", "", "Id do usuário (defaults to SEI_ID_USUARIO)")
	flag.StringVar(&cfg.IDTipoProcedimento, "tipo-procedimento", "", "Id do tipo de procedimento")
	flag.StringVar(&cfg.IDSerie, "serie", "", "Id da série")
	flag.StringVarP(&cfg.Protocolo, "protocolo", "p", "", "Protocolo do processo ou documento")
	flag.BoolVarP(&cfg.Completo, "completo", "c", false, "Request every optional section")
	flag.BoolVar(&cfg.Atributos, "atributos", false, "Return step attributes in listarAndamentos")
	flag.StringSliceVar(&cfg.Andamentos, "andamentos", nil, "Comma-separated step ids to filter by")
	flag.StringSliceVar(&cfg.Tarefas, "tarefas", nil, "Comma-separated task ids to filter by")
	flag.StringSliceVar(&cfg.TarefasModulos, "tarefas-modulos", nil, "Comma-separated module task ids to filter by")
	flag.StringSliceVar(&cfg.Marcadores, "marcadores", nil, "Comma-separated tag ids to filter by")
	flag.StringVar(&cfg.DataPrazo, "data-prazo", "", "Deadline date (dd/mm/yyyy) for definirControlePrazo")
	flag.StringVar(&cfg.Dias, "dias", "", "Deadline in days for definirControlePrazo")
	flag.StringVar(&cfg.DiasUteis, "dias-uteis", "", "S or N: count only business days")
	flag.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Indent the JSON output")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Append logs to this file instead of stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seictl [flags] <operation>\n\nOperations: %s\n\n", strings.Join(seictl.Operations(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	// Unset filters must stay nil so they are not sent
	for name, dst := range map[string]*[]string{
		"andamentos":      &cfg.Andamentos,
		"tarefas":         &cfg.Tarefas,
		"tarefas-modulos": &cfg.TarefasModulos,
		"marcadores":      &cfg.Marcadores,
	} {
		if !flag.CommandLine.Changed(name) {
			*dst = nil
		}
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.Operation = flag.Arg(0)

	env, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.IDUnidade == "" {
		cfg.IDUnidade = env.IDUnidade
	}
	if cfg.IDUsuario == "" {
		cfg.IDUsuario = env.IDUsuario
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	logData, err := cfg.NewLogger(env.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer logData.Close()

	conf, err := env.Connection()
	if err != nil {
		log.Fatal(err)
	}
	conf.Logger = logData.Logger

	client, err := sei.FromConfig(conf, env.SiglaSistema, env.IdentificacaoServico)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	defer client.Close(ctx)

	if err := seictl.Do(ctx, client, cfg, os.Stdout); err != nil {
		logData.Logger.Error().Err(err).Msg("seictl failed")
		os.Exit(1)
	}
}
