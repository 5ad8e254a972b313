package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// QdrantConfig holds the vector database connection settings.
type QdrantConfig struct {
	URL        string `yaml:"url"`
	Collection string `yaml:"collection"`
}

// LLMConfig holds the embedding model settings.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// GenerateConfig holds defaults for the generation pipeline.
type GenerateConfig struct {
	Count  int    `yaml:"count"`
	Output string `yaml:"output"`
}

type Config struct {
	Qdrant   QdrantConfig   `yaml:"qdrant"`
	EmbedLLM LLMConfig      `yaml:"embed_llm"`
	Generate GenerateConfig `yaml:"generate"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Qdrant: QdrantConfig{
			URL:        "http://localhost:6333",
			Collection: "vectors",
		},
		EmbedLLM: LLMConfig{
			BaseURL: "http://localhost:11434",
			Model:   "nomic-embed-text",
		},
		Generate: GenerateConfig{
			Count:  10,
			Output: "embeddings.jsonl",
		},
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file at path, falling back to the defaults
// when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
