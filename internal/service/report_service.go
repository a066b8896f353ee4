package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"serena/internal/dialog"
	"serena/internal/model"
	"serena/internal/repository"
	"serena/internal/scoring"
)

// ReportService exposes the audit trail to clinicians, as raw turn history
// or rendered into a PDF report.
type ReportService struct {
	history repository.HistoryRepo
}

// NewReportService creates the clinician-facing report service.
func NewReportService(history repository.HistoryRepo) *ReportService {
	return &ReportService{history: history}
}

// History returns the session's turn records ordered by timestamp.
func (s *ReportService) History(ctx context.Context, sessionID string) ([]*model.TurnRecord, error) {
	return s.history.GetBySessionID(ctx, sessionID)
}

// DejaVu ships on most Linux images and covers Spanish diacritics.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
}

// RenderPDF renders the session's full interview as a PDF document.
func (s *ReportService) RenderPDF(ctx context.Context, sessionID string) ([]byte, error) {
	records, err := s.history.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no history for session %s", sessionID)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("load report font: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 18); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Informe de evaluación emocional")
	pdf.Br(26)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Sesión: %s", sessionID))
	pdf.Br(14)
	pdf.Cell(nil, fmt.Sprintf("Fecha de emisión: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Br(14)
	if sev, mean, ok := severityFromRecords(records); ok {
		pdf.Cell(nil, fmt.Sprintf("Nivel de tristeza estimado: %s (media %.1f)", sev, mean))
		pdf.Br(14)
	}
	pdf.Br(8)

	if err := pdf.SetFont("DejaVu", "", 13); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Desarrollo de la conversación:")
	pdf.Br(16)

	if err := pdf.SetFont("DejaVu", "", 10); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if pdf.GetY() > 760 {
			pdf.AddPage()
			pdf.SetY(40)
		}
		writeWrapped(&pdf, fmt.Sprintf("P: %s", rec.PromptText))
		writeWrapped(&pdf, fmt.Sprintf("R: %s", rec.UserAnswer))
		detail := fmt.Sprintf("   Emoción: %s (%.2f)", rec.Emotion, rec.Confidence)
		if rec.Score != nil {
			detail += fmt.Sprintf(" · Puntuación: %d", *rec.Score)
		}
		writeWrapped(&pdf, detail)
		pdf.Br(6)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, _ := pdf.SplitText(text, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
}

// severityFromRecords rebuilds the sadness triad from the audit trail. The
// live score records are torn down when the session ends; the audit trail is
// the durable copy.
func severityFromRecords(records []*model.TurnRecord) (string, float64, bool) {
	triad := map[string]string{
		dialog.StateFrequency: scoring.SymFrequency,
		dialog.StateDuration:  scoring.SymDuration,
		dialog.StateIntensity: scoring.SymIntensity,
	}
	scores := make(map[string]int)
	for _, rec := range records {
		if sym, ok := triad[rec.State]; ok && rec.Score != nil {
			scores[sym] = *rec.Score
		}
	}
	if len(scores) == 0 {
		return "", 0, false
	}
	mean := scoring.TriadMean(scores)
	return scoring.Severity(mean), mean, true
}
