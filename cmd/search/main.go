package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"qdrant-sink-harness/internal/config"
	"qdrant-sink-harness/internal/embedding"
	"qdrant-sink-harness/internal/qdrant"
	"qdrant-sink-harness/internal/render"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	url := flag.String("url", "", "Qdrant HTTP URL")
	collection := flag.String("collection", "", "Collection name")
	query := flag.String("query", "", "Search query text")
	limit := flag.Int("limit", 5, "Number of results to return")
	model := flag.String("model", "", "Embedding model name")
	showMetadata := flag.Bool("show-metadata", false, "Show sink connector metadata in results")
	list := flag.Bool("list", false, "List all collections")
	info := flag.Bool("info", false, "Show collection info")
	configPath := flag.String("config", configFilePath, "Path to the config file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.Qdrant.URL = *url
		case "collection":
			cfg.Qdrant.Collection = *collection
		case "model":
			cfg.EmbedLLM.Model = *model
		}
	})

	log.Debug().Interface("config", cfg).Msg("Loaded config")

	ctx := context.Background()
	client := qdrant.NewClient(cfg.Qdrant.URL)

	// list and info short-circuit before any embedding work
	if *list {
		listCollections(ctx, client)
		return
	}
	if *info {
		collectionInfo(ctx, client, cfg.Qdrant.Collection)
		return
	}

	if *query == "" {
		log.Fatal().Msg("-query is required for search")
	}

	searchVectors(ctx, client, cfg, *query, *limit, *showMetadata)
}

func listCollections(ctx context.Context, client *qdrant.Client) {
	names, err := client.ListCollections(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Error listing collections")
	}
	render.Collections(os.Stdout, names)
}

// collectionInfo reports failures without aborting the process so list/info
// stay usable against a partially provisioned server.
func collectionInfo(ctx context.Context, client *qdrant.Client, name string) {
	info, err := client.DescribeCollection(ctx, name)
	if err != nil {
		log.Error().Err(err).Msg("Error getting collection info")
		return
	}
	render.CollectionInfo(os.Stdout, info)
}

func searchVectors(ctx context.Context, client *qdrant.Client, cfg *config.Config, query string, limit int, showMetadata bool) {
	// the model must be present before any database call; a random vector
	// would be meaningless for search
	provider, err := embedding.Resolve(ctx, &cfg.EmbedLLM, false)
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving embedding provider")
	}

	info, err := client.DescribeCollection(ctx, cfg.Qdrant.Collection)
	if err != nil {
		log.Fatal().Err(err).Msg("Error describing collection")
	}
	if info.VectorSize != provider.Dimension() {
		log.Fatal().Msgf("Vector dimension mismatch: model %q produces %d dimensions, collection %q expects %d",
			provider.Name(), provider.Dimension(), info.Name, info.VectorSize)
	}

	log.Info().Msgf("Generating embedding for: %q", query)
	vector, err := provider.EmbedQuery(ctx, query)
	if err != nil {
		log.Fatal().Err(err).Msg("Error embedding query")
	}

	log.Info().Msgf("Searching collection %q", cfg.Qdrant.Collection)
	hits, err := client.Search(ctx, cfg.Qdrant.Collection, vector, limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Error searching")
	}

	render.Results(os.Stdout, hits, showMetadata)
}
