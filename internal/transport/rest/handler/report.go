package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"serena/internal/service"
)

// ReportHandler exposes the clinician-facing audit endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// History handles GET /v1/sessions/{sessionId}/history
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	records, err := h.reportSvc.History(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load session history")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Report handles GET /v1/sessions/{sessionId}/report
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	pdf, err := h.reportSvc.RenderPDF(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "report not available for this session")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="informe_%s.pdf"`, sessionID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
