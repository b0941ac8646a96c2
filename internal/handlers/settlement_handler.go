package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/paystream/txprocessor/internal/config"
	"github.com/paystream/txprocessor/internal/csvio"
	"github.com/paystream/txprocessor/internal/services"
)

const maxBatchBytes = 32 << 20

// SettlementHandler exposes the batch processor over HTTP: post a
// transactions CSV, get the account summary CSV back. Every request runs
// against a fresh ledger and journal, so requests never observe each other.
type SettlementHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewSettlementHandler(cfg *config.Config, logger *zap.Logger) *SettlementHandler {
	return &SettlementHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// ProcessBatch handles POST /api/v1/settlements.
func (h *SettlementHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBytes)

	source, err := csvio.NewReader(r.Body)
	if err != nil {
		services.SendErrorResponse(w, "invalid transactions document: "+err.Error(), http.StatusBadRequest, nil)
		return
	}

	ledger := services.NewLedgerService(h.cfg.RejectLockedAccounts)
	journal := services.NewJournalService()
	services.NewProcessorService(ledger, journal, h.logger).Drain(source)

	w.Header().Set("Content-Type", "text/csv")
	if err := csvio.WriteSummary(w, ledger.Snapshot()); err != nil {
		h.logger.Error("write summary", zap.Error(err))
	}
}
