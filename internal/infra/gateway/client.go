package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/pkg/config"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/shared"
)

const (
	readyPath   = "/v1/payment/ready"
	approvePath = "/v1/payment/approve"

	approvedAtLayout = "2006-01-02T15:04:05"
	maxErrorBody     = 4 << 10
)

var gatewayZone = loadZone("Asia/Seoul", 9*60*60)

// Client talks to a KakaoPay-style single payment API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	secretKey   string
	cid         string
	approvalURL string
	cancelURL   string
	failURL     string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:   cfg.SecretKey,
		cid:         cfg.CID,
		approvalURL: cfg.ApprovalURL,
		cancelURL:   cfg.CancelURL,
		failURL:     cfg.FailURL,
	}
}

type readyRequest struct {
	CID            string `json:"cid"`
	PartnerOrderID string `json:"partner_order_id"`
	PartnerUserID  string `json:"partner_user_id"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	TotalAmount    int64  `json:"total_amount"`
	TaxFreeAmount  int64  `json:"tax_free_amount"`
	ApprovalURL    string `json:"approval_url"`
	CancelURL      string `json:"cancel_url"`
	FailURL        string `json:"fail_url"`
}

type readyResponse struct {
	TID               string `json:"tid"`
	NextRedirectPCURL string `json:"next_redirect_pc_url"`
	CreatedAt         string `json:"created_at"`
}

type approveRequest struct {
	CID            string `json:"cid"`
	TID            string `json:"tid"`
	PartnerOrderID string `json:"partner_order_id"`
	PartnerUserID  string `json:"partner_user_id"`
	PGToken        string `json:"pg_token"`
}

type approveAmount struct {
	Total    int64 `json:"total"`
	TaxFree  int64 `json:"tax_free"`
	VAT      int64 `json:"vat"`
	Point    int64 `json:"point"`
	Discount int64 `json:"discount"`
}

type approveResponse struct {
	AID               string        `json:"aid"`
	TID               string        `json:"tid"`
	PartnerOrderID    string        `json:"partner_order_id"`
	PartnerUserID     string        `json:"partner_user_id"`
	PaymentMethodType string        `json:"payment_method_type"`
	Amount            approveAmount `json:"amount"`
	ApprovedAt        string        `json:"approved_at"`
}

type errorResponse struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (c *Client) Ready(ctx context.Context, req shared.GatewayReadyRequest) (*shared.GatewayReadyResult, error) {
	body := readyRequest{
		CID:            c.cid,
		PartnerOrderID: req.StagingToken,
		PartnerUserID:  req.BuyerID,
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		TotalAmount:    req.TotalAmount,
		ApprovalURL:    c.approvalURL,
		CancelURL:      c.cancelURL,
		FailURL:        c.failURL,
	}

	var res readyResponse
	if err := c.post(ctx, readyPath, body, &res, shared.ErrGatewayRejected); err != nil {
		return nil, err
	}
	if res.TID == "" || res.NextRedirectPCURL == "" {
		return nil, errs.Mark(errs.New("ready response is missing tid or redirect url"), shared.ErrGatewayUnavailable)
	}

	createdAt, _ := parseGatewayTime(res.CreatedAt)
	return &shared.GatewayReadyResult{
		TID:         res.TID,
		RedirectURL: res.NextRedirectPCURL,
		CreatedAt:   createdAt,
	}, nil
}

func (c *Client) Approve(ctx context.Context, req shared.GatewayApproveRequest) (*payment.Approval, error) {
	body := approveRequest{
		CID:            c.cid,
		TID:            req.TID,
		PartnerOrderID: req.StagingToken,
		PartnerUserID:  req.BuyerID,
		PGToken:        req.PGToken,
	}

	var res approveResponse
	if err := c.post(ctx, approvePath, body, &res, shared.ErrGatewayDenied); err != nil {
		return nil, err
	}
	if res.TID == "" {
		return nil, errs.Mark(errs.New("approve response is missing tid"), shared.ErrGatewayUnavailable)
	}

	approvedAt, err := parseGatewayTime(res.ApprovedAt)
	if err != nil {
		slog.Warn("unparseable approved_at from gateway, using local time",
			"tid", res.TID,
			"approved_at", res.ApprovedAt)
		approvedAt = time.Now()
	}

	payerID := res.PartnerUserID
	if payerID == "" {
		payerID = req.BuyerID
	}

	return &payment.Approval{
		TID:     res.TID,
		PayerID: payerID,
		Method:  res.PaymentMethodType,
		Amount: payment.Amount{
			Total:    res.Amount.Total,
			TaxFree:  res.Amount.TaxFree,
			VAT:      res.Amount.VAT,
			Discount: res.Amount.Discount,
		},
		ApprovedAt: approvedAt,
	}, nil
}

// post sends body as JSON. 4xx answers are marked with clientErr, everything else that is
// not a 2xx, including transport failures, is marked unavailable.
func (c *Client) post(ctx context.Context, path string, body, out any, clientErr error) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "marshal gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return errs.Wrap(err, "build gateway request")
	}
	req.Header.Set("Authorization", "SECRET_KEY "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "gateway %s", path), shared.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cause := readGatewayError(resp)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return errs.Mark(cause, clientErr)
		}
		return errs.Mark(cause, shared.ErrGatewayUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode gateway %s response", path), shared.ErrGatewayUnavailable)
	}
	return nil
}

func readGatewayError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var e errorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.ErrorMessage != "" {
		return errs.Newf("gateway error %d (code %d): %s", resp.StatusCode, e.ErrorCode, e.ErrorMessage)
	}
	return errs.Newf("gateway error %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}

func parseGatewayTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(approvedAtLayout, s, gatewayZone); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func loadZone(name string, offset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, offset)
	}
	return loc
}
