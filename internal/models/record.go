package models

// RecordPayload carries the searchable fields stored alongside each vector.
type RecordPayload struct {
	Text         string `json:"text"`
	Category     string `json:"category"`
	UserID       string `json:"user_id"`
	MessageIndex int    `json:"message_index"`
}

// Record is one message for the sink connector, serialized as a single
// JSON line in the generation output file.
type Record struct {
	ID      string        `json:"id"`
	Vector  []float32     `json:"vector"`
	Payload RecordPayload `json:"payload"`
}

// Hit is a single ranked match returned by a vector search. Payload values
// are whatever scalars the sink connector stored, including any
// provenance metadata keys.
type Hit struct {
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// CollectionInfo is a read-only projection of a collection's metadata.
type CollectionInfo struct {
	Name        string
	PointsCount int64
	Status      string
	VectorSize  int
	Distance    string
}
