package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // e.g. 1024 for voyage-3
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// CollectionInfoResponse wraps GET /collections/{name}.
type CollectionInfoResponse struct {
	Result CollectionInfo `json:"result"`
}

// CollectionInfo is the subset of collection state the service reads.
type CollectionInfo struct {
	Status       string `json:"status"`
	PointsCount  int    `json:"points_count"`
	VectorsCount int    `json:"vectors_count"`
}

// Point represents a vector with payload.
// Qdrant requires ID to be a UUID string or uint64.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// Filter is a boolean payload filter.
type Filter struct {
	Must    []Condition `json:"must,omitempty"`
	Should  []Condition `json:"should,omitempty"`
	MustNot []Condition `json:"must_not,omitempty"`
}

// Condition matches one payload key.
type Condition struct {
	Key   string     `json:"key"`
	Match MatchValue `json:"match"`
}

// MatchValue is an exact-value match.
type MatchValue struct {
	Value interface{} `json:"value"`
}

// MatchKey builds an exact-match condition.
func MatchKey(key string, value interface{}) Condition {
	return Condition{Key: key, Match: MatchValue{Value: value}}
}

// ScrollRequest pages through points.
type ScrollRequest struct {
	Filter      *Filter     `json:"filter,omitempty"`
	Limit       int         `json:"limit,omitempty"`
	Offset      interface{} `json:"offset,omitempty"`
	WithPayload bool        `json:"with_payload"`
	WithVector  bool        `json:"with_vector"`
}

// ScrollResponse is one scroll page.
type ScrollResponse struct {
	Result struct {
		Points         []RecordPoint `json:"points"`
		NextPageOffset interface{}   `json:"next_page_offset"`
	} `json:"result"`
}

// RecordPoint is a stored point as returned by scroll.
type RecordPoint struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}

// DeleteByFilterRequest deletes every point matching Filter.
type DeleteByFilterRequest struct {
	Filter Filter `json:"filter"`
}

// ErrorResponse is the error body returned by Qdrant.
type ErrorResponse struct {
	Status struct {
		Error string `json:"error"`
	} `json:"status"`
}
