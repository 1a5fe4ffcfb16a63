package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/dmaskell/ledgerview-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
	Firebase        *auth.Client
}
