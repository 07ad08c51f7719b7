package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/prepay-planner/internal/engine"
	"github.com/iwvelando/prepay-planner/internal/store"
)

func newTestHandler() http.Handler {
	return NewHandler(nil, engine.NewEngine(nil), store.NewMemory(), "test")
}

const exampleBody = `{
	"principal": 3200000,
	"annualRate": 8.35,
	"emi": 31231,
	"totalTenure": 180,
	"paidEmis": 4,
	"prepayments": [{"month": 12, "amount": 200000}]
}`

func TestHandleReschedule_OK(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(exampleBody))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Outstanding float64 `json:"outstandingAfterPrepayments"`
		SimLog      []struct {
			Type  string `json:"type"`
			Month int    `json:"month"`
		} `json:"simLog"`
		KeepEMI struct {
			MonthsToFinish int `json:"monthsToFinish"`
		} `json:"keepEmi"`
		ReduceEMI struct {
			NewEMI float64 `json:"newEmi"`
		} `json:"reduceEmi"`
		CSV      string `json:"csv"`
		Duration string `json:"duration"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Outstanding <= 0 {
		t.Errorf("expected a positive outstanding, got %v", resp.Outstanding)
	}
	if len(resp.SimLog) == 0 {
		t.Error("expected simulation events")
	}
	if resp.KeepEMI.MonthsToFinish <= 0 {
		t.Errorf("expected a positive months-to-finish, got %d", resp.KeepEMI.MonthsToFinish)
	}
	if resp.ReduceEMI.NewEMI <= 0 {
		t.Errorf("expected a positive new EMI, got %v", resp.ReduceEMI.NewEMI)
	}
	if !strings.Contains(resp.CSV, `"keepEmi"`) {
		t.Error("expected CSV rendering in the response")
	}
	if resp.Duration == "" {
		t.Error("expected a duration")
	}
}

func TestHandleReschedule_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/reschedule", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestHandleReschedule_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "Malformed JSON",
			body: `{invalid-json}`,
		},
		{
			name: "Non-numeric value",
			body: `{"principal": "lots", "annualRate": 8.35, "emi": 31231, "totalTenure": 180}`,
		},
		{
			name: "Unknown field",
			body: `{"principal": 3200000, "annualRate": 8.35, "emi": 31231, "totalTenure": 180, "color": "blue"}`,
		},
		{
			name: "Missing principal and official schedule",
			body: `{"annualRate": 8.35, "emi": 31231, "totalTenure": 180, "paidEmis": 4}`,
		},
	}

	handler := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error envelope: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected an error message in the envelope")
			}
		})
	}
}

func TestHandlePlan_SaveAndGet(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"owner": "alice", "request": ` + exampleBody + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var saveResp struct {
		Record struct {
			Owner   string `json:"owner"`
			Version int64  `json:"version"`
			Result  *struct {
				Outstanding float64 `json:"outstandingAfterPrepayments"`
			} `json:"result"`
			CalculatedAt string `json:"calculatedAt"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saveResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if saveResp.Record.Owner != "alice" || saveResp.Record.Version != 1 {
		t.Errorf("unexpected record %+v", saveResp.Record)
	}
	if saveResp.Record.Result == nil || saveResp.Record.Result.Outstanding <= 0 {
		t.Error("expected the saved record to carry the computed result")
	}
	if saveResp.Record.CalculatedAt == "" {
		t.Error("expected a calculation timestamp")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/plan?owner=alice", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saveResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if saveResp.Record.Version != 1 {
		t.Errorf("expected version 1, got %d", saveResp.Record.Version)
	}
}

func TestHandlePlan_VersionConflict(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"owner": "alice", "request": ` + exampleBody + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// A second save that still expects version 0 conflicts.
	req = httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	// Carrying the current version succeeds.
	body = []byte(`{"owner": "alice", "expectedVersion": 1, "request": ` + exampleBody + `}`)
	req = httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandlePlan_GetMissing(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/plan?owner=nobody", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "test" {
		t.Errorf("expected version %q, got %q", "test", resp["version"])
	}
}
