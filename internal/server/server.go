// Package server exposes the reschedule engine and the plan record store over
// a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/prepay-planner/internal/engine"
	"github.com/iwvelando/prepay-planner/internal/store"
	"github.com/iwvelando/prepay-planner/pkg/constants"
	"github.com/iwvelando/prepay-planner/pkg/output"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	engine  *engine.Engine
	repo    store.Repository
	version string
}

// NewHandler constructs the HTTP handler that serves the reschedule API.
func NewHandler(logger *zap.Logger, eng *engine.Engine, repo store.Repository, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if eng == nil {
		eng = engine.NewEngine(logger)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, engine: eng, repo: repo, version: trimmedVersion}

	mux := http.NewServeMux()

	// Stateless calculation endpoint
	mux.HandleFunc("/api/reschedule", h.handleReschedule)

	// Persisted plan record endpoint
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type rescheduleResponse struct {
	*engine.Result
	CSV      string `json:"csv,omitempty"`
	Duration string `json:"duration"`
}

type planRequest struct {
	Owner           string         `json:"owner,omitempty"`
	ExpectedVersion int64          `json:"expectedVersion,omitempty"`
	Request         engine.Request `json:"request"`
}

type planResponse struct {
	Record   *store.PlanRecord `json:"record"`
	Duration string            `json:"duration"`
}

func (h *handler) handleReschedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReschedule"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	req, ok := h.decodeRequest(w, r, op)
	if !ok {
		return
	}

	result, err := h.engine.Reschedule(*req)
	if err != nil {
		h.respondComputeError(w, err, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("reschedule computed",
		zap.String("op", op),
		zap.Float64("outstanding", result.Outstanding),
		zap.Int("events", len(result.Events)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, rescheduleResponse{
		Result:   result,
		CSV:      output.CsvString(result),
		Duration: elapsed.String(),
	})
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handlePlanGet(w, r)
	case http.MethodPost:
		h.handlePlanSave(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handlePlanGet(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlanGet"

	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = constants.DefaultOwner
	}

	record, err := h.repo.Load(r.Context(), owner)
	if errors.Is(err, store.ErrNotFound) {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("no plan record for owner %q", owner), op)
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to load plan record: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, planResponse{Record: record})
}

func (h *handler) handlePlanSave(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlanSave"
	start := time.Now()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var payload planRequest
	if err := dec.Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}
	if payload.Owner == "" {
		payload.Owner = constants.DefaultOwner
	}

	result, err := h.engine.Reschedule(payload.Request)
	if err != nil {
		h.respondComputeError(w, err, op)
		return
	}

	record := &store.PlanRecord{
		Owner:        payload.Owner,
		Request:      payload.Request,
		Result:       result,
		CalculatedAt: time.Now().UTC(),
	}

	saved, err := h.repo.Save(r.Context(), record, payload.ExpectedVersion)
	if errors.Is(err, store.ErrVersionConflict) {
		h.respondErrorWithOp(w, http.StatusConflict,
			fmt.Sprintf("plan record for owner %q changed since version %d", payload.Owner, payload.ExpectedVersion), op)
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to save plan record: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("plan record saved",
		zap.String("op", op),
		zap.String("owner", saved.Owner),
		zap.Int64("recordVersion", saved.Version),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, planResponse{Record: saved, Duration: elapsed.String()})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest parses the engine request strictly: unknown fields and
// non-numeric values are client errors, never silently coerced.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, op string) (*engine.Request, bool) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req engine.Request
	if err := dec.Decode(&req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return nil, false
	}
	return &req, true
}

func (h *handler) respondComputeError(w http.ResponseWriter, err error, op string) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		h.respondErrorWithOp(w, http.StatusBadRequest, verr.Error(), op)
		return
	}
	if errors.Is(err, engine.ErrEMITooSmall) {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
