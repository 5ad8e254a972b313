// Package embedding maps text to fixed-length vectors. Two providers are
// available: a model-backed one served by ollama and a random stand-in used
// when no model endpoint is reachable.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"qdrant-sink-harness/internal/config"
)

// ErrModelUnavailable reports that the embedding model could not be reached
// and no fallback is permitted.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// FallbackDimension is the vector size of the random provider.
const FallbackDimension = 384

const probeText = "dimension probe"

// Provider maps text to an embedding vector of a fixed dimension.
type Provider interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Dimension() int
	Name() string
}

// ModelProvider produces embeddings with an ollama-served model. The vector
// dimension is probed once at construction and held for the run.
type ModelProvider struct {
	embedder  *embeddings.EmbedderImpl
	model     string
	dimension int
}

// NewModelProvider connects to the configured model and probes its
// dimension. It fails if the model endpoint cannot produce an embedding.
func NewModelProvider(ctx context.Context, cfg *config.LLMConfig) (*ModelProvider, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing ollama client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	probe, err := embedder.EmbedQuery(ctx, probeText)
	if err != nil {
		return nil, fmt.Errorf("probing model %q: %w", cfg.Model, err)
	}
	if len(probe) == 0 {
		return nil, fmt.Errorf("probing model %q: empty embedding", cfg.Model)
	}

	return &ModelProvider{
		embedder:  embedder,
		model:     cfg.Model,
		dimension: len(probe),
	}, nil
}

func (p *ModelProvider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return p.embedder.EmbedQuery(ctx, text)
}

func (p *ModelProvider) Dimension() int {
	return p.dimension
}

func (p *ModelProvider) Name() string {
	return p.model
}

// RandomProvider returns fresh uniform values in [0,1) on every call. It is
// a stand-in for pipeline testing: two calls with the same text yield
// different vectors, so the result is meaningless for semantic search.
type RandomProvider struct {
	dimension int
}

func NewRandomProvider() *RandomProvider {
	return &RandomProvider{dimension: FallbackDimension}
}

func (p *RandomProvider) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	vec := make([]float32, p.dimension)
	for i := range vec {
		vec[i] = rand.Float32()
	}
	return vec, nil
}

func (p *RandomProvider) Dimension() int {
	return p.dimension
}

func (p *RandomProvider) Name() string {
	return "random"
}

// Resolve picks the provider for this run with a single startup probe. When
// the model is unreachable, allowFallback selects the random provider;
// otherwise resolution fails with ErrModelUnavailable.
func Resolve(ctx context.Context, cfg *config.LLMConfig, allowFallback bool) (Provider, error) {
	provider, err := NewModelProvider(ctx, cfg)
	if err == nil {
		log.Debug().Str("model", provider.Name()).Int("dimension", provider.Dimension()).Msg("Embedding model loaded")
		return provider, nil
	}
	if !allowFallback {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	log.Warn().Err(err).Msgf("Embedding model unavailable, using random %d-dimensional vectors", FallbackDimension)
	return NewRandomProvider(), nil
}
