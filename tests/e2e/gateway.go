//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"
)

// FakeGateway mimics the ready/approve endpoints of the payment gateway.
type FakeGateway struct {
	server *httptest.Server

	mu       sync.Mutex
	payments map[string]fakePayment
	seq      atomic.Int64

	denyApprove    atomic.Bool
	approveCalls   atomic.Int64
	amountOverride atomic.Int64
}

type fakePayment struct {
	partnerOrderID string
	partnerUserID  string
	total          int64
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{payments: make(map[string]fakePayment)}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payment/ready", g.ready)
	mux.HandleFunc("POST /v1/payment/approve", g.approve)
	g.server = httptest.NewServer(mux)
	return g
}

func (g *FakeGateway) URL() string { return g.server.URL }

func (g *FakeGateway) Close() { g.server.Close() }

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	g.payments = make(map[string]fakePayment)
	g.mu.Unlock()
	g.denyApprove.Store(false)
	g.approveCalls.Store(0)
	g.amountOverride.Store(0)
}

func (g *FakeGateway) DenyApprove(deny bool) { g.denyApprove.Store(deny) }

// OverrideApprovedAmount makes approve report total instead of the ready amount.
func (g *FakeGateway) OverrideApprovedAmount(total int64) { g.amountOverride.Store(total) }

func (g *FakeGateway) ApproveCalls() int64 { return g.approveCalls.Load() }

func (g *FakeGateway) ready(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PartnerOrderID string `json:"partner_order_id"`
		PartnerUserID  string `json:"partner_user_id"`
		TotalAmount    int64  `json:"total_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, -1, "malformed request")
		return
	}

	tid := fmt.Sprintf("T%010d", g.seq.Add(1))
	g.mu.Lock()
	g.payments[tid] = fakePayment{
		partnerOrderID: req.PartnerOrderID,
		partnerUserID:  req.PartnerUserID,
		total:          req.TotalAmount,
	}
	g.mu.Unlock()

	writeGatewayJSON(w, http.StatusOK, map[string]any{
		"tid":                  tid,
		"next_redirect_pc_url": g.server.URL + "/redirect/" + tid,
		"created_at":           time.Now().Format("2006-01-02T15:04:05"),
	})
}

func (g *FakeGateway) approve(w http.ResponseWriter, r *http.Request) {
	g.approveCalls.Add(1)

	var req struct {
		TID            string `json:"tid"`
		PartnerOrderID string `json:"partner_order_id"`
		PartnerUserID  string `json:"partner_user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, -1, "malformed request")
		return
	}
	if g.denyApprove.Load() {
		writeGatewayError(w, http.StatusBadRequest, -780, "approval failure")
		return
	}

	g.mu.Lock()
	p, ok := g.payments[req.TID]
	g.mu.Unlock()
	if !ok || p.partnerOrderID != req.PartnerOrderID {
		writeGatewayError(w, http.StatusBadRequest, -702, "unknown payment")
		return
	}

	total := p.total
	if override := g.amountOverride.Load(); override > 0 {
		total = override
	}
	writeGatewayJSON(w, http.StatusOK, map[string]any{
		"aid":                 "A" + req.TID,
		"tid":                 req.TID,
		"partner_order_id":    p.partnerOrderID,
		"partner_user_id":     p.partnerUserID,
		"payment_method_type": "MONEY",
		"amount":              map[string]any{"total": total, "tax_free": 0, "vat": total / 11},
		"approved_at":         time.Now().Format("2006-01-02T15:04:05"),
	})
}

func writeGatewayJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeGatewayError(w http.ResponseWriter, status, code int, msg string) {
	writeGatewayJSON(w, status, map[string]any{"error_code": code, "error_message": msg})
}
