package api

// ChatRequest represents one user message in a debate conversation
type ChatRequest struct {
	// SessionID continues an existing conversation. When empty the server
	// opens a new session and returns its ID.
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// DebateRequest starts a one-shot debate on a topic, skipping the greeter
type DebateRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// AgentInfo describes one configured agent
type AgentInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tools       []string `json:"tools,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
