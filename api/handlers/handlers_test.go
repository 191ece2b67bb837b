package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-debate-team/api"
	"github.com/your-org/ai-debate-team/api/handlers"
)

func TestListAgents(t *testing.T) {
	h := handlers.NewAgentHandler()

	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	rec := httptest.NewRecorder()
	h.ListAgents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Agents []api.AgentInfo `json:"agents"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Len(t, payload.Agents, 8)
	assert.Equal(t, "DebateTeamGreeter", payload.Agents[0].Name)
	assert.Contains(t, payload.Agents[0].Tools, "start_debate")
}

func TestListAgentsRejectsPost(t *testing.T) {
	h := handlers.NewAgentHandler()

	req := httptest.NewRequest(http.MethodPost, "/agents", nil)
	rec := httptest.NewRecorder()
	h.ListAgents(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChatRejectsInvalidJSON(t *testing.T) {
	h := handlers.NewChatHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatRequiresMessage(t *testing.T) {
	h := handlers.NewChatHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"session_id": "abc"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Missing required field", errResp.Error)
}

func TestChatRejectsGet(t *testing.T) {
	h := handlers.NewChatHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRunDebateRequiresTopic(t *testing.T) {
	h := handlers.NewDebateHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/debates", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.RunDebate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunDebateRejectsGet(t *testing.T) {
	h := handlers.NewDebateHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/debates", nil)
	rec := httptest.NewRecorder()
	h.RunDebate(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
