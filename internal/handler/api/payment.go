package api

import (
	"errors"
	"net/http"

	reqdto "gift-commerce/internal/handler/dto/request"
	resdto "gift-commerce/internal/handler/dto/response"
	"gift-commerce/internal/handler/httperr"
	"gift-commerce/internal/handler/middleware"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("buyer not authenticated")

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Ready payment
// @Description Validate the claimed line amounts, open a gateway payment and stage the batch
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []reqdto.ReadyLineRequest true "Purchase lines"
// @Success 200 {object} resdto.ReadyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/ready [post]
func (h *PaymentHandler) Ready(c *gin.Context) {
	buyerID, ok := middleware.GetProviderID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req []reqdto.ReadyLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	lines, err := reqdto.ToLineRequests(req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Ready(c.Request.Context(), buyerID, lines)
	if err != nil {
		abortWithPaymentError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadyResult(result))
}

// @Summary Approve payment
// @Description Approve the payment at the gateway, then consume the staged batch and commit orders, receipts and gifts
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApproveRequest true "Approve request"
// @Success 200 {object} resdto.PurchaseSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/approve [post]
func (h *PaymentHandler) Approve(c *gin.Context) {
	buyerID, ok := middleware.GetProviderID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	summary, err := h.cmds.Approve(c.Request.Context(), buyerID, req.ToCommand())
	if err != nil {
		abortWithPaymentError(c, err, req.OrderDetailKey)
		return
	}
	h.respondSummary(c, summary)
}

// @Summary Retry commit
// @Description Commit a restaged batch that the gateway already approved
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RetryRequest true "Retry request"
// @Success 200 {object} resdto.PurchaseSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/retry [post]
func (h *PaymentHandler) Retry(c *gin.Context) {
	buyerID, ok := middleware.GetProviderID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.RetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	summary, err := h.cmds.Recommit(c.Request.Context(), buyerID, req.OrderDetailKey)
	if err != nil {
		abortWithPaymentError(c, err, req.OrderDetailKey)
		return
	}
	h.respondSummary(c, summary)
}

func (h *PaymentHandler) respondSummary(c *gin.Context, summary *commands.PurchaseSummary) {
	res, err := resdto.FromPurchaseSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build purchase summary", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// abortWithPaymentError checks CommitFailure first: it wraps causes that carry other markers.
func abortWithPaymentError(c *gin.Context, err error, stagingToken string) {
	var cfe *commands.CommitFailureError
	if errors.As(err, &cfe) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment approved but the order could not be saved", gin.H{
			"recovery":       cfe.Recovery,
			"orderDetailKey": cfe.StagingToken,
		})
		return
	}

	status, msg := paymentErrorStatus(err)
	var detail any
	if stagingToken != "" && status == http.StatusConflict {
		detail = gin.H{"orderDetailKey": stagingToken}
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

func paymentErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrInvalidAmount):
		return http.StatusBadRequest, "Claimed amount does not match the price"
	case errs.Is(err, commands.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, commands.ErrNotFound):
		return http.StatusNotFound, "Referenced entity not found"
	case errs.Is(err, commands.ErrStagingNotFound):
		return http.StatusConflict, "Order expired or already processed"
	case errs.Is(err, commands.ErrNotRecoverable):
		return http.StatusConflict, "Order is not awaiting recovery"
	case errs.Is(err, commands.ErrGatewayDenied), errs.Is(err, commands.ErrGatewayRejected):
		return http.StatusPaymentRequired, "Payment declined by gateway"
	case errs.Is(err, commands.ErrGatewayUnavailable):
		return http.StatusBadGateway, "Payment gateway unavailable"
	case errs.Is(err, commands.ErrTokenCollision), errs.Is(err, commands.ErrStagingUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
