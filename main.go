package main

import (
	"log"

	"painel/adapters/excel"
	"painel/app"
	"painel/domain/schema"
	"painel/internal"
	"painel/internal/config"
	"painel/internal/synth"
	"painel/internal/validate"
	"painel/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger

	registry := schema.NewRegistry()
	reader := excel.NewReader(appConfig.Data.Dir)
	validator := validate.New()
	generator := synth.NewGenerator(synth.Config{
		Seed:      appConfig.Synth.Seed,
		StartYear: appConfig.Synth.StartYear,
		EndYear:   appConfig.Synth.EndYear,
	})

	service := app.NewDataService(registry, reader, validator, generator, logger)
	log.Printf("Data directory: %s (read-only=%v)", appConfig.Data.Dir, appConfig.Data.ReadOnly)

	server := ui.NewApp(service, ui.Config{Port: appConfig.Server.Port})
	log.Fatal(server.Start())
}
