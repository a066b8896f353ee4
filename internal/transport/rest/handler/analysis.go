package handler

import (
	"encoding/json"
	"net/http"

	"serena/internal/model"
	"serena/internal/service"
)

// AnalysisHandler exposes the standalone free-text analysis endpoint
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// Analyze handles POST /v1/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := h.analysisSvc.Analyze(r.Context(), req.UserText)
	writeJSON(w, http.StatusOK, resp)
}
