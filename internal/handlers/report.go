package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/middleware"
	"github.com/dmaskell/ledgerview-backend/internal/models"
	"github.com/dmaskell/ledgerview-backend/internal/response"
)

type reportService interface {
	ListReports(ctx context.Context, uid string) ([]*models.ReportDefinition, error)
	GetReport(ctx context.Context, uid, reportID string) (*models.ReportDefinition, error)
	Execute(ctx context.Context, uid, reportID string, req dto.ExecuteReportRequest) (dto.ReportResult, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListReports)
	r.Get("/{reportId}", h.GetReport)
	r.Post("/{reportId}/execute", h.ExecuteReport)
	return r
}

func (h *reportHandlers) ListReports(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	defs, err := h.ReportSvc.ListReports(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, defs)
}

func (h *reportHandlers) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportId")
	uid := middleware.UID(r.Context())
	def, err := h.ReportSvc.GetReport(r.Context(), uid, reportID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, def)
}

// ExecuteReport accepts an optional body overriding the saved timeframe.
// An empty body runs the report exactly as defined.
func (h *reportHandlers) ExecuteReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportId")
	var req dto.ExecuteReportRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
	}
	uid := middleware.UID(r.Context())
	result, err := h.ReportSvc.Execute(r.Context(), uid, reportID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
