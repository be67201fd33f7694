//go:build e2e

package payment_test

import (
	"net/http"
	"testing"

	reqdto "gift-commerce/internal/handler/dto/request"
	resdto "gift-commerce/internal/handler/dto/response"
	"gift-commerce/tests/common/authtest"
	"gift-commerce/tests/common/dbtest"
	"gift-commerce/tests/common/httptest"
	"gift-commerce/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	readyURL   = "/api/payments/ready"
	approveURL = "/api/payments/approve"
	retryURL   = "/api/payments/retry"
)

type PaymentSuite struct {
	e2e.SharedSuite
}

func (s *PaymentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PaymentSuite))
}

type catalog struct {
	americano   uuid.UUID
	largeSize   uuid.UUID
	cake        uuid.UUID
	readyLines  []reqdto.ReadyLineRequest
	grandTotal  int64
	orderLength int
}

func (s *PaymentSuite) seedCatalog() catalog {
	t := s.T()
	americano := dbtest.CreateTestProduct(t, s.DB, "Americano", 4500)
	largeSize := dbtest.CreateTestOptionDetail(t, s.DB, americano, "Size", "Large")
	cake := dbtest.CreateTestProduct(t, s.DB, "Strawberry Cake", 30000)

	return catalog{
		americano: americano,
		largeSize: largeSize,
		cake:      cake,
		readyLines: []reqdto.ReadyLineRequest{
			{ProductID: americano, OptionDetailIDs: []uuid.UUID{largeSize}, StockQuantity: 2, TotalAmount: 9000},
			{ProductID: cake, OptionDetailIDs: []uuid.UUID{}, StockQuantity: 1, TotalAmount: 30000},
		},
		grandTotal:  39000,
		orderLength: 2,
	}
}

func (s *PaymentSuite) ready(token string, lines []reqdto.ReadyLineRequest) resdto.ReadyResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, readyURL, lines, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.ReadyResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.TID)
	require.NotEmpty(t, res.NextRedirectPcURL)
	require.NotEmpty(t, res.OrderDetailKey)
	return res
}

func approveBody(r resdto.ReadyResponse) reqdto.ApproveRequest {
	return reqdto.ApproveRequest{TID: r.TID, PGToken: "pg-" + r.TID, OrderDetailKey: r.OrderDetailKey}
}

// =============================================================================
// TestReadyAndApprove - full purchase flow
// =============================================================================

func (s *PaymentSuite) TestReadyAndApprove() {
	s.Run("Normal case: approved purchase creates payment, receipts, orders and gifts", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2001", "Minji")

		readyRes := s.ready(token, c.readyLines)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "staged_batches"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var summary resdto.PurchaseSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))

		want := resdto.PurchaseSummaryResponse{
			Receiver: resdto.ReceiverResponse{ProviderID: "kakao-2001", Name: "Minji"},
			OrderSummaries: []resdto.OrderSummaryResponse{
				{
					Product:  resdto.ProductResponse{ProductID: c.americano.String(), Name: "Americano", Price: 4500, BrandName: dbtest.DefaultBrandName},
					Quantity: 2,
					Options:  []resdto.OptionResponse{{Name: "Size", OptionDetailName: "Large"}},
				},
				{
					Product:  resdto.ProductResponse{ProductID: c.cake.String(), Name: "Strawberry Cake", Price: 30000, BrandName: dbtest.DefaultBrandName},
					Quantity: 1,
					Options:  []resdto.OptionResponse{},
				},
			},
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.ReceiverResponse{}, "ProfileURL"),
			cmpopts.IgnoreFields(resdto.OrderSummaryResponse{}, "OrderNumber"),
			cmpopts.IgnoreFields(resdto.ProductResponse{}, "Photo"),
		}
		if diff := cmp.Diff(want, summary, opts); diff != "" {
			t.Errorf("purchase summary mismatch (-want +got):\n%s", diff)
		}
		require.NotEqual(t, summary.OrderSummaries[0].OrderNumber, summary.OrderSummaries[1].OrderNumber)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
		require.Equal(t, c.orderLength, dbtest.CountRows(t, s.DB, "receipts"))
		require.Equal(t, c.orderLength, dbtest.CountRows(t, s.DB, "orders"))
		require.Equal(t, c.orderLength, dbtest.CountRows(t, s.DB, "gifts"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "receipt_options"))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "staged_batches"))
	})

	s.Run("Normal case: approved amount that differs from staged total still commits", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2002", "Jisoo")
		readyRes := s.ready(token, c.readyLines)
		s.Gateway.OverrideApprovedAmount(c.grandTotal - 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("Error case: second approve of the same order is a conflict", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2003", "Hana")
		readyRes := s.ready(token, c.readyLines)

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
		require.Equal(t, c.orderLength, dbtest.CountRows(t, s.DB, "orders"))
	})

	s.Run("Error case: claimed amount below catalog price is rejected before the gateway", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2004", "Yuna")
		lines := c.readyLines
		lines[0].TotalAmount = 100

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, readyURL, lines, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "staged_batches"))
	})

	s.Run("Error case: gateway denial leaves the order staged", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2005", "Sora")
		readyRes := s.ready(token, c.readyLines)
		s.Gateway.DenyApprove(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)

		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "payments"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "staged_batches"))
	})

	s.Run("Error case: unknown product is rejected", func() {
		t := s.T()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-2006", "Eunbi")
		lines := []reqdto.ReadyLineRequest{{ProductID: uuid.New(), StockQuantity: 1, TotalAmount: 1000}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, readyURL, lines, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: requests without a valid token are unauthorized", func() {
		t := s.T()
		c := s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, readyURL, c.readyLines, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, "kakao-2007")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, readyURL, c.readyLines, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestCommitRecovery - approved payment whose commit failed
// =============================================================================

func (s *PaymentSuite) TestCommitRecovery() {
	s.Run("Normal case: restaged order commits on retry once the buyer exists", func() {
		t := s.T()
		c := s.seedCatalog()
		// token for a provider id that has no member row yet
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, "kakao-3001")
		readyRes := s.ready(token, c.readyLines)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "")
		var failure struct {
			Detail map[string]string `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &failure))
		require.Equal(t, "restaged", failure.Detail["recovery"])
		require.Equal(t, readyRes.OrderDetailKey, failure.Detail["orderDetailKey"])
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "payments"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "staged_batches"))

		dbtest.CreateTestMember(t, s.DB, "kakao-3001", "Late Member")
		approveCalls := s.Gateway.ApproveCalls()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, retryURL,
			reqdto.RetryRequest{OrderDetailKey: readyRes.OrderDetailKey}, token)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, approveCalls, s.Gateway.ApproveCalls(), "retry must not call the gateway again")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
		require.Equal(t, c.orderLength, dbtest.CountRows(t, s.DB, "gifts"))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "staged_batches"))
	})

	s.Run("Error case: retry of an order that was never approved is refused", func() {
		t := s.T()
		c := s.seedCatalog()
		_, token := authtest.CreateBuyer(t, s.DB, s.Config.JWT, "kakao-3002", "Dahye")
		readyRes := s.ready(token, c.readyLines)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, retryURL,
			reqdto.RetryRequest{OrderDetailKey: readyRes.OrderDetailKey}, token)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "staged_batches"), "refused batch must be put back")

		// the order is still approvable afterwards
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, approveBody(readyRes), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
