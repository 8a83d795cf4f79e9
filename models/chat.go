package models

// ChatRequest is the payload of a single user turn.
type ChatRequest struct {
	Text string `json:"text"`
}

// ChatResponse is what the chat endpoints return after a turn.
type ChatResponse struct {
	SessionID string       `json:"sessionId"`
	State     SessionState `json:"state"`
	Messages  []string     `json:"messages"`            // assistant texts emitted this turn, in order
	Itinerary *string      `json:"itinerary,omitempty"` // raw itinerary once generated
	Pending   []Field      `json:"pending,omitempty"`   // fields still to be asked
}
