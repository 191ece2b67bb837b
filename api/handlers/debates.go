package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/your-org/ai-debate-team/api"
	"github.com/your-org/ai-debate-team/debate/workflow"
)

// DebateHandler runs one-shot debates on an explicit topic
type DebateHandler struct {
	Workflow *workflow.Manager
}

// NewDebateHandler creates a new debate handler
func NewDebateHandler(m *workflow.Manager) *DebateHandler {
	return &DebateHandler{Workflow: m}
}

//	curl -X POST http://localhost:8080/debates \
//	  -H "Content-Type: application/json" \
//	  -d '{"topic": "remote work"}'
func (h *DebateHandler) RunDebate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use POST method")
		return
	}

	var req api.DebateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, "Invalid JSON request", err.Error())
		return
	}
	if req.Topic == "" {
		h.writeJSONError(w, http.StatusBadRequest, "Missing required field", "topic field is required")
		return
	}

	result, err := h.Workflow.Run(r.Context(), req.Topic)
	if err != nil {
		h.writeJSONError(w, http.StatusInternalServerError, "Debate failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.writeJSONError(w, http.StatusInternalServerError, "Failed to encode response", err.Error())
		return
	}
}

func (h *DebateHandler) writeJSONError(w http.ResponseWriter, status int, message string, details string) {
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
