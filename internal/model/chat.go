package model

// ChatMessage is one user/assistant exchange. The collection is append-only
// apart from a bulk clear.
type ChatMessage struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
