package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"qdrant-sink-harness/internal/config"
	"qdrant-sink-harness/internal/embedding"
	"qdrant-sink-harness/internal/generator"
	"qdrant-sink-harness/internal/helper"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	count := flag.Int("count", 10, "Number of messages to generate")
	model := flag.String("model", "", "Embedding model name")
	output := flag.String("output", "", "Output file path")
	configPath := flag.String("config", configFilePath, "Path to the config file")
	dryRun := flag.Bool("dry-run", false, "Print records instead of writing the output file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Generate.Count = *count
		case "model":
			cfg.EmbedLLM.Model = *model
		case "output":
			cfg.Generate.Output = *output
		}
	})

	log.Debug().Interface("config", cfg).Msg("Loaded config")

	generateEmbeddings(context.Background(), cfg, *dryRun)
}

func generateEmbeddings(ctx context.Context, cfg *config.Config, dryRun bool) {
	provider, err := embedding.Resolve(ctx, &cfg.EmbedLLM, true)
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving embedding provider")
	}

	log.Info().
		Str("model", provider.Name()).
		Int("dimension", provider.Dimension()).
		Msgf("Generating %d embeddings", cfg.Generate.Count)

	records, err := generator.Generate(ctx, cfg.Generate.Count, provider)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating records")
	}

	if dryRun {
		helper.PrettyPrint(records)
		return
	}

	if dir := filepath.Dir(cfg.Generate.Output); dir != "." {
		if err := helper.CreateFolder(dir); err != nil {
			log.Fatal().Err(err).Msg("Error creating output folder")
		}
	}

	if err := generator.WriteFile(cfg.Generate.Output, records); err != nil {
		log.Fatal().Err(err).Msg("Error writing output file")
	}

	log.Info().
		Int("messages", len(records)).
		Int("dimension", provider.Dimension()).
		Str("model", provider.Name()).
		Str("output", cfg.Generate.Output).
		Msg("Saved embeddings")
}
