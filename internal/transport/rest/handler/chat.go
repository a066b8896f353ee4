package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"serena/internal/model"
	"serena/internal/service"
)

// ChatHandler drives the interview conversation
type ChatHandler struct {
	conversationSvc *service.ConversationService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(conversationSvc *service.ConversationService) *ChatHandler {
	return &ChatHandler{conversationSvc: conversationSvc}
}

// Chat handles POST /v1/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	resp := h.conversationSvc.HandleTurn(r.Context(), req.SessionID, req.UserText)
	writeJSON(w, http.StatusOK, resp)
}
