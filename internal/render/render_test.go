package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qdrant-sink-harness/internal/models"
)

func TestResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Results(&buf, nil, false)
	assert.Equal(t, "No results found\n", buf.String())

	buf.Reset()
	Results(&buf, []models.Hit{}, true)
	assert.Equal(t, "No results found\n", buf.String())
}

func TestResultsRankedOutput(t *testing.T) {
	hits := []models.Hit{
		{Score: 0.9, Payload: map[string]any{"text": "How do I reset my password?", "category": "account", "user_id": "user-001"}},
		{Score: 0.7, Payload: map[string]any{"text": "My account is locked", "category": "account", "user_id": "user-002"}},
		{Score: 0.5, Payload: map[string]any{"text": "Billing invoice question", "category": "billing", "user_id": "user-004"}},
	}

	var buf bytes.Buffer
	Results(&buf, hits, false)
	out := buf.String()

	assert.Contains(t, out, "Found 3 similar vectors:")
	assert.Contains(t, out, "1. Score: 0.9000")
	assert.Contains(t, out, "2. Score: 0.7000")
	assert.Contains(t, out, "3. Score: 0.5000")
	assert.Contains(t, out, "Text: How do I reset my password?")
	assert.Contains(t, out, "User: user-002")

	// server ranking order is preserved in the rendered output
	first := strings.Index(out, "1. Score: 0.9000")
	second := strings.Index(out, "2. Score: 0.7000")
	third := strings.Index(out, "3. Score: 0.5000")
	require.True(t, first < second && second < third)
}

func TestResultsMissingPayloadFields(t *testing.T) {
	hits := []models.Hit{
		{Score: 0.42, Payload: map[string]any{"text": "orphan record"}},
	}

	var buf bytes.Buffer
	Results(&buf, hits, false)
	out := buf.String()

	assert.Contains(t, out, "1. Score: 0.4200")
	assert.Contains(t, out, "Category: N/A")
	assert.Contains(t, out, "User: N/A")
}

func TestResultsShowsMetadata(t *testing.T) {
	hits := []models.Hit{
		{Score: 0.8, Payload: map[string]any{
			"text":              "API rate limit exceeded",
			"_danube_topic":     "/default/vectors",
			"_danube_timestamp": float64(1714000000),
			"_danube_producer":  "test-producer",
		}},
	}

	var buf bytes.Buffer
	Results(&buf, hits, true)
	out := buf.String()

	assert.Contains(t, out, "Metadata:")
	assert.Contains(t, out, "- _danube_topic: /default/vectors")
	assert.Contains(t, out, "- _danube_producer: test-producer")
}

func TestResultsOmitsEmptyMetadataSection(t *testing.T) {
	hits := []models.Hit{
		{Score: 0.8, Payload: map[string]any{"text": "no provenance here"}},
	}

	var buf bytes.Buffer
	Results(&buf, hits, true)
	assert.NotContains(t, buf.String(), "Metadata:")
}

func TestResultsHidesMetadataByDefault(t *testing.T) {
	hits := []models.Hit{
		{Score: 0.8, Payload: map[string]any{"text": "x", "_danube_topic": "/default/vectors"}},
	}

	var buf bytes.Buffer
	Results(&buf, hits, false)
	assert.NotContains(t, buf.String(), "_danube_topic")
}

func TestCollections(t *testing.T) {
	var buf bytes.Buffer
	Collections(&buf, []string{"vectors", "support_tickets"})
	out := buf.String()

	assert.Contains(t, out, "Available collections:")
	assert.Contains(t, out, "  - vectors")
	assert.Contains(t, out, "  - support_tickets")
}

func TestCollectionInfo(t *testing.T) {
	var buf bytes.Buffer
	CollectionInfo(&buf, models.CollectionInfo{
		Name:        "vectors",
		PointsCount: 120,
		Status:      "green",
		VectorSize:  384,
		Distance:    "Cosine",
	})
	out := buf.String()

	assert.Contains(t, out, "Collection: vectors")
	assert.Contains(t, out, "Points Count: 120")
	assert.Contains(t, out, "Status: green")
	assert.Contains(t, out, "Vector Size: 384")
	assert.Contains(t, out, "Distance: Cosine")
}
