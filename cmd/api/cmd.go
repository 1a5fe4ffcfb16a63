package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmaskell/ledgerview-backend/internal/bootstrap"
	"github.com/dmaskell/ledgerview-backend/internal/config"
	"github.com/dmaskell/ledgerview-backend/internal/handlers"
	"github.com/dmaskell/ledgerview-backend/internal/response"
	"github.com/dmaskell/ledgerview-backend/internal/router"
	"github.com/dmaskell/ledgerview-backend/internal/services"
	"github.com/dmaskell/ledgerview-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	godotenv.Load()
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	rstore := store.NewReportStore(bs.Firestore)
	lstore := store.NewLedgerStore(bs.Firestore)
	cstore := store.NewCategoryStore(bs.Firestore)
	pstore := store.NewPayeeStore(bs.Firestore)
	xstore := store.NewExchangeRateStore(bs.Firestore)
	prefstore := store.NewPreferenceStore(bs.Firestore)

	// services
	rserv := services.NewReportService(rstore, lstore, cstore, pstore, xstore, prefstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.ReportSvc = rserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
