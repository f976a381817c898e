package main

import (
	"fmt"

	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/devstore"
	handler "github.com/pkruglov/notesync/internal/handler/http"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notesync-devstore")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers := handler.NewHandler(devstore.New(), *cfg, log)

	srv, err := server.NewServer(handlers.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
