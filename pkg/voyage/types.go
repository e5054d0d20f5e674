package voyage

const (
	// Endpoint is the Voyage embeddings API endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// Model is the embedding model used for guide retrieval queries.
	Model = "voyage-3"
)

// Request is the request body for the embeddings API.
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response is the response from the embeddings API.
type Response struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}
