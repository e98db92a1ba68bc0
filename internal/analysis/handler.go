package analysis

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ayush/bemestar-report/internal/format"
	"github.com/ayush/bemestar-report/internal/models"
	"github.com/ayush/bemestar-report/internal/pdf"
)

const (
	msgAnalyzed     = "Análise concluída com sucesso."
	msgAnalyzeError = "Falha ao gerar o relatório ou salvar no banco de dados."
	msgBadRequest   = "Corpo da requisição inválido."
	msgNotFound     = "Relatório não encontrado ou expirado."
	msgPDFError     = "Erro interno ao processar o relatório."
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Handler holds the analysis HTTP handlers.
type Handler struct {
	svc       *Service
	renderer  *pdf.Renderer
	newCanvas func() pdf.Canvas
	now       func() time.Time
	logger    *zap.Logger
}

func NewHandler(svc *Service, renderer *pdf.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		renderer:  renderer,
		newCanvas: func() pdf.Canvas { return pdf.NewFPDFCanvas() },
		now:       time.Now,
		logger:    logger,
	}
}

// Analyze generates, stores and returns a report for the posted questionnaire.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: msgBadRequest, Error: err.Error()})
		return
	}

	report, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: msgAnalyzeError, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.AnalyzeResponse{
		Message:    msgAnalyzed,
		ReportText: report.Text,
		ReportHTML: format.HTML(report.Text),
		ID:         report.ID,
	})
}

// DownloadPDF renders a stored report as a PDF attachment.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, found, err := h.svc.Find(r.Context(), id)
	if err != nil {
		h.logger.Error("load report", zap.String("id", id), zap.Error(err))
		http.Error(w, msgPDFError, http.StatusInternalServerError)
		return
	}
	if !found {
		h.logger.Info("report not found", zap.String("id", id))
		http.Error(w, msgNotFound, http.StatusNotFound)
		return
	}

	canvas := h.newCanvas()
	if err := h.renderer.Render(r.Context(), report, canvas); err != nil {
		h.logger.Error("render pdf", zap.String("id", id), zap.Error(err))
		http.Error(w, msgPDFError, http.StatusInternalServerError)
		return
	}

	filename := pdf.Filename(report.UserName, h.now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", pdf.ContentDisposition(filename))
	if err := canvas.Output(w); err != nil {
		// Headers are already on the wire; nothing left to tell the client.
		h.logger.Error("write pdf", zap.String("id", id), zap.Error(err))
	}
}
