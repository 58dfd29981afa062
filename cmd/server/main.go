package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const issueTokenCommand = "issue-token"

// Usage:
//
//	server [flags]
//	server issue-token <email> [flags]
func main() {
	fmt.Fprint(os.Stderr, buildInfo())

	log := logger.NewLogger("go-pass-server")
	args := os.Args[1:]

	if len(args) > 0 && args[0] == issueTokenCommand {
		if len(args) < 2 {
			log.Fatal().Msg("usage: server issue-token <email> [flags]")
		}
		issueToken(args[1], args[2:], log)
		return
	}

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// issueToken prints a bearer token for identity signed with the configured
// key. There is no login endpoint; the operator hands the token out.
func issueToken(identity string, args []string, log *logger.Logger) {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := service.NewAuthService(cfg.App, log).IssueToken(context.Background(), identity)
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing token")
	}

	fmt.Println(token.SignedString)
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
