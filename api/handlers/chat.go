package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/your-org/ai-debate-team/api"
	"github.com/your-org/ai-debate-team/debate/team"
)

// ChatHandler handles conversational requests routed through the greeter
type ChatHandler struct {
	Team *team.Team
}

// NewChatHandler creates a new chat handler backed by the debate team
func NewChatHandler(t *team.Team) *ChatHandler {
	return &ChatHandler{Team: t}
}

//	curl -X POST http://localhost:8080/chat \
//	  -H "Content-Type: application/json" \
//	  -d '{"message": "Let'\''s debate nuclear power"}'
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use POST method")
		return
	}

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, "Invalid JSON request", err.Error())
		return
	}
	if req.Message == "" {
		h.writeJSONError(w, http.StatusBadRequest, "Missing required field", "message field is required")
		return
	}

	reply, err := h.Team.Respond(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.writeJSONError(w, http.StatusInternalServerError, "Chat failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		h.writeJSONError(w, http.StatusInternalServerError, "Failed to encode response", err.Error())
		return
	}
}

func (h *ChatHandler) writeJSONError(w http.ResponseWriter, status int, message string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := api.ErrorResponse{
		Error: message,
		Code:  http.StatusText(status),
		Details: map[string]any{
			"details": details,
		},
	}

	_ = json.NewEncoder(w).Encode(errorResp)
}
