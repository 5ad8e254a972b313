// Package generator builds embedding records from the sample corpus and
// serializes them as line-delimited JSON for the message producer.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"qdrant-sink-harness/internal/corpus"
	"qdrant-sink-harness/internal/embedding"
	"qdrant-sink-harness/internal/models"
)

// Generate produces count records in order. Corpus entries are cycled by
// index and every vector must match the provider's dimension.
func Generate(ctx context.Context, count int, provider embedding.Provider) ([]models.Record, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", count)
	}

	records := make([]models.Record, 0, count)
	for i := 1; i <= count; i++ {
		entry := corpus.At(i - 1)

		vec, err := provider.EmbedQuery(ctx, entry.Text)
		if err != nil {
			return nil, fmt.Errorf("embedding record %d: %w", i, err)
		}
		if len(vec) != provider.Dimension() {
			return nil, fmt.Errorf("record %d: vector has %d dimensions, provider reports %d", i, len(vec), provider.Dimension())
		}

		records = append(records, models.Record{
			ID:     fmt.Sprintf("msg-%04d", i),
			Vector: vec,
			Payload: models.RecordPayload{
				Text:         entry.Text,
				Category:     entry.Category,
				UserID:       entry.UserID,
				MessageIndex: i,
			},
		})

		if i%10 == 0 {
			log.Info().Msgf("Generated %d/%d embeddings", i, count)
		}
	}

	return records, nil
}

// Write serializes records one JSON object per line, in order.
func Write(w io.Writer, records []models.Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writing record %s: %w", r.ID, err)
		}
	}
	return nil
}

// WriteFile creates or truncates path and writes all records to it. A
// failure mid-write is returned as-is; the truncated file is left in place.
func WriteFile(path string, records []models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
