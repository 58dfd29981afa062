package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(buildInfo())

	log := logger.NewClientLogger("go-pass-client", "")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo(), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
