package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/middleware"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

// --- Stub response handler ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorCode   string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, _ string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorCode = code
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// --- Stub service ---

type stubReportService struct {
	listDefs   []*models.ReportDefinition
	listErr    error
	getDef     *models.ReportDefinition
	getErr     error
	execResult dto.ReportResult
	execErr    error

	lastGetID   string
	lastExecID  string
	lastExecReq dto.ExecuteReportRequest
}

func (s *stubReportService) ListReports(_ context.Context, _ string) ([]*models.ReportDefinition, error) {
	return s.listDefs, s.listErr
}

func (s *stubReportService) GetReport(_ context.Context, _, reportID string) (*models.ReportDefinition, error) {
	s.lastGetID = reportID
	return s.getDef, s.getErr
}

func (s *stubReportService) Execute(_ context.Context, _, reportID string, req dto.ExecuteReportRequest) (dto.ReportResult, error) {
	s.lastExecID = reportID
	s.lastExecReq = req
	return s.execResult, s.execErr
}

// withUID injects a UID into the request context.
func withUID(r *http.Request, uid string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UIDKey, uid)
	return r.WithContext(ctx)
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// --- Tests ---

func TestListReports_OK(t *testing.T) {
	svc := &stubReportService{
		listDefs: []*models.ReportDefinition{{ReportID: "r1", Name: "Spending"}},
	}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.ListReports(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	defs, ok := resp.writeSuccessData.([]*models.ReportDefinition)
	if !ok || len(defs) != 1 {
		t.Fatalf("unexpected payload: %T", resp.writeSuccessData)
	}
}

func TestListReports_ServiceError(t *testing.T) {
	svc := &stubReportService{listErr: errs.NewDatabaseError("read", "firestore unavailable", nil)}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.ListReports(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestGetReport_OK(t *testing.T) {
	svc := &stubReportService{getDef: &models.ReportDefinition{ReportID: "r1"}}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/reports/r1", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.GetReport(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess 200")
	}
	if svc.lastGetID != "r1" {
		t.Errorf("expected reportId=r1, got %s", svc.lastGetID)
	}
}

func TestGetReport_Forbidden(t *testing.T) {
	svc := &stubReportService{getErr: errs.NewForbiddenError("report belongs to another user")}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/reports/r1", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.GetReport(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on forbidden")
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called")
	}
}

func TestExecuteReport_OK(t *testing.T) {
	svc := &stubReportService{
		execResult: dto.ReportResult{ReportID: "r1", Summary: dto.ReportSummary{Total: 200}},
	}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	body := `{"timeframeType":"custom","startDate":"2024-02-01","endDate":"2024-02-29"}`
	req := httptest.NewRequest(http.MethodPost, "/reports/r1/execute", strings.NewReader(body))
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.ExecuteReport(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess 200")
	}
	if svc.lastExecID != "r1" {
		t.Errorf("expected reportId=r1, got %s", svc.lastExecID)
	}
	if svc.lastExecReq.TimeframeType != dto.TimeframeCustom || svc.lastExecReq.StartDate != "2024-02-01" {
		t.Errorf("override request not passed through: %+v", svc.lastExecReq)
	}
}

func TestExecuteReport_EmptyBody(t *testing.T) {
	svc := &stubReportService{execResult: dto.ReportResult{ReportID: "r1"}}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/reports/r1/execute", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.ExecuteReport(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("empty body should run the report as saved")
	}
	if svc.lastExecReq != (dto.ExecuteReportRequest{}) {
		t.Errorf("expected zero-value request, got %+v", svc.lastExecReq)
	}
}

func TestExecuteReport_InvalidJSON(t *testing.T) {
	svc := &stubReportService{}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/reports/r1/execute", strings.NewReader("not-json"))
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.ExecuteReport(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on invalid JSON")
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on invalid JSON")
	}
}

func TestExecuteReport_ServiceError(t *testing.T) {
	svc := &stubReportService{execErr: errs.NewInvalidTimeframeError("custom timeframe requires both startDate and endDate")}
	resp := &stubResponseHandler{}
	h := NewReportHandlers(&Deps{ResponseHandler: resp, ReportSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/reports/r1/execute", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "reportId", "r1")
	rr := httptest.NewRecorder()
	h.ExecuteReport(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on service error")
	}
}
