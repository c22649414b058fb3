package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Impuestos-api/internal/application/taxes"
	"github.com/jhoicas/Impuestos-api/internal/cli"
	"github.com/jhoicas/Impuestos-api/pkg/config"
	"github.com/jhoicas/Impuestos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Los logs van a stderr para no mezclarse con la salida JSON.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	root := cli.NewRootCmd(cli.Options{
		UseCase: taxes.NewUseCase(taxes.Config{
			MaxBatchLines: cfg.Batch.MaxLines,
			BatchWorkers:  cfg.Batch.Workers,
		}, log),
		Output:     os.Stdout,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMins: cfg.JWT.Expiration,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
