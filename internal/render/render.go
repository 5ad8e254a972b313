// Package render formats search output for the console.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"qdrant-sink-harness/internal/models"
)

// MetadataPrefix marks payload keys the sink connector added for
// provenance (source topic, timestamp, producer, attributes).
const MetadataPrefix = "_danube_"

// Results writes ranked hits. An empty hit list renders an explicit
// no-results indicator. With showMetadata, provenance keys are listed per
// hit; the section is omitted when a hit carries none.
func Results(w io.Writer, hits []models.Hit, showMetadata bool) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "No results found")
		return
	}

	fmt.Fprintf(w, "Found %d similar vectors:\n\n", len(hits))
	fmt.Fprintln(w, strings.Repeat("=", 80))

	for i, hit := range hits {
		fmt.Fprintf(w, "\n%d. Score: %.4f\n", i+1, hit.Score)
		fmt.Fprintf(w, "   Text: %s\n", payloadString(hit.Payload, "text"))
		fmt.Fprintf(w, "   Category: %s\n", payloadString(hit.Payload, "category"))
		fmt.Fprintf(w, "   User: %s\n", payloadString(hit.Payload, "user_id"))

		if showMetadata {
			keys := metadataKeys(hit.Payload)
			if len(keys) > 0 {
				fmt.Fprintln(w, "   Metadata:")
				for _, k := range keys {
					fmt.Fprintf(w, "     - %s: %v\n", k, hit.Payload[k])
				}
			}
		}

		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
}

// Collections writes the list of collection names.
func Collections(w io.Writer, names []string) {
	fmt.Fprintln(w, "Available collections:")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// CollectionInfo writes one collection's metadata.
func CollectionInfo(w io.Writer, info models.CollectionInfo) {
	fmt.Fprintf(w, "Collection: %s\n", info.Name)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Points Count: %d\n", info.PointsCount)
	fmt.Fprintf(w, "Status: %s\n", info.Status)
	fmt.Fprintf(w, "Vector Size: %d\n", info.VectorSize)
	fmt.Fprintf(w, "Distance: %s\n", info.Distance)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

func payloadString(payload map[string]any, key string) string {
	v, ok := payload[key]
	if !ok {
		return "N/A"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func metadataKeys(payload map[string]any) []string {
	var keys []string
	for k := range payload {
		if strings.HasPrefix(k, MetadataPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
