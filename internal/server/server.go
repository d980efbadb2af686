package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dxbflip/flipcalc/internal/cache"
	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
	"github.com/dxbflip/flipcalc/internal/store"
	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/dxbflip/flipcalc/pkg/output"
	"github.com/dxbflip/flipcalc/pkg/validation"
)

type handler struct {
	logger         *zap.Logger
	storage        store.Storage
	reports        cache.Cache
	maxRequestSize int64
	version        string
	now            func() time.Time
}

// Options configures the HTTP handler.
type Options struct {
	Storage        store.Storage
	Reports        cache.Cache
	MaxRequestSize int64
	Version        string

	// Now supplies the current time for remaining-debt date math.
	// Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// NewHandler constructs the HTTP handler that serves the deal analysis API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Storage == nil {
		opts.Storage = store.NewMemoryStore()
	}
	if opts.Reports == nil {
		opts.Reports = cache.NewMemoryCache()
	}
	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		storage:        opts.Storage,
		reports:        opts.Reports,
		maxRequestSize: opts.MaxRequestSize,
		version:        trimmedVersion,
		now:            opts.Now,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/calculate", h.handleCalculate).Methods(http.MethodPost)
	router.HandleFunc("/api/schedule", h.handleSchedule).Methods(http.MethodPost)
	router.HandleFunc("/api/deals", h.handleCreateDeal).Methods(http.MethodPost)
	router.HandleFunc("/api/deals", h.handleListDeals).Methods(http.MethodGet)
	router.HandleFunc("/api/deals/{id}", h.handleGetDeal).Methods(http.MethodGet)
	router.HandleFunc("/api/deals/{id}", h.handleUpdateDeal).Methods(http.MethodPut)
	router.HandleFunc("/api/deals/{id}", h.handleDeleteDeal).Methods(http.MethodDelete)
	router.HandleFunc("/api/deals/{id}/report", h.handleDealReport).Methods(http.MethodGet)
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	return router
}

// analyzeRequest is the JSON body for the compute endpoints and for deal
// create/update.
type analyzeRequest struct {
	Deal      config.Deal             `json:"deal"`
	Overrides map[int]engine.Override `json:"overrides,omitempty"`
	Name      string                  `json:"name,omitempty"`
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst *analyzeRequest) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug("rejecting malformed request body",
			zap.String("op", "server.decode"),
			zap.Error(err),
		)
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

// buildReport runs the full analysis for a deal.
func (h *handler) buildReport(deal config.Deal, overrides map[int]engine.Override) output.Report {
	calc := engine.Calculate(deal, h.now())
	return output.Report{
		Deal:         deal,
		Calculations: calc,
		Sensitivity:  engine.Sensitivity(deal, calc),
		Schedule:     engine.EarlySchedule(deal, calc, overrides),
		Waterfall:    engine.Waterfall(deal, calc),
		Warnings:     validation.ValidateDeal(deal),
	}
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.buildReport(req.Deal, req.Overrides))
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decode(w, r, &req) {
		return
	}
	calc := engine.Calculate(req.Deal, h.now())
	h.writeJSON(w, http.StatusOK, engine.EarlySchedule(req.Deal, calc, req.Overrides))
}

func (h *handler) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decode(w, r, &req) {
		return
	}

	name := req.Name
	if name == "" {
		name = req.Deal.Name
	}
	saved := &store.SavedDeal{
		Name:         name,
		Params:       req.Deal,
		Calculations: engine.Calculate(req.Deal, h.now()),
	}
	if err := h.storage.CreateDeal(saved); err != nil {
		h.logger.Error("failed to create deal",
			zap.String("op", "server.handleCreateDeal"),
			zap.Error(err),
		)
		http.Error(w, "failed to save deal", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *handler) handleListDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.storage.ListDeals()
	if err != nil {
		h.logger.Error("failed to list deals",
			zap.String("op", "server.handleListDeals"),
			zap.Error(err),
		)
		http.Error(w, "failed to list deals", http.StatusInternalServerError)
		return
	}
	if deals == nil {
		deals = []*store.SavedDeal{}
	}
	h.writeJSON(w, http.StatusOK, deals)
}

func (h *handler) dealID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid deal id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *handler) handleGetDeal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.dealID(w, r)
	if !ok {
		return
	}
	saved, err := h.storage.GetDeal(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch deal",
			zap.String("op", "server.handleGetDeal"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		http.Error(w, "failed to fetch deal", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

func (h *handler) handleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.dealID(w, r)
	if !ok {
		return
	}
	var req analyzeRequest
	if !h.decode(w, r, &req) {
		return
	}

	saved, err := h.storage.GetDeal(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to fetch deal", http.StatusInternalServerError)
		return
	}

	saved.Params = req.Deal
	saved.Calculations = engine.Calculate(req.Deal, h.now())
	if req.Name != "" {
		saved.Name = req.Name
	} else if req.Deal.Name != "" {
		saved.Name = req.Deal.Name
	}

	if err := h.storage.UpdateDeal(saved); err != nil {
		h.logger.Error("failed to update deal",
			zap.String("op", "server.handleUpdateDeal"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		http.Error(w, "failed to update deal", http.StatusInternalServerError)
		return
	}

	// The stored analysis changed; drop any cached report.
	if err := h.reports.Delete(reportKey(id)); err != nil {
		h.logger.Warn("failed to invalidate cached report",
			zap.String("op", "server.handleUpdateDeal"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
	}

	h.writeJSON(w, http.StatusOK, saved)
}

func (h *handler) handleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.dealID(w, r)
	if !ok {
		return
	}
	err := h.storage.DeleteDeal(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete deal",
			zap.String("op", "server.handleDeleteDeal"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		http.Error(w, "failed to delete deal", http.StatusInternalServerError)
		return
	}
	if err := h.reports.Delete(reportKey(id)); err != nil {
		h.logger.Warn("failed to invalidate cached report",
			zap.String("op", "server.handleDeleteDeal"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleDealReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.dealID(w, r)
	if !ok {
		return
	}

	if cached, hit := h.reports.Get(reportKey(id)); hit {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cached))
		return
	}

	saved, err := h.storage.GetDeal(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to fetch deal", http.StatusInternalServerError)
		return
	}

	report := h.buildReport(saved.Params, nil)
	payload, err := json.Marshal(report)
	if err != nil {
		h.logger.Error("failed to serialize report",
			zap.String("op", "server.handleDealReport"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}
	if err := h.reports.Set(reportKey(id), string(payload)); err != nil {
		h.logger.Warn("failed to cache report",
			zap.String("op", "server.handleDealReport"),
			zap.String("id", id.String()),
			zap.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func reportKey(id uuid.UUID) string {
	return "report:" + id.String()
}
