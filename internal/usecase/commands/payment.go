package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/domain/receipt"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/pkg/config"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errs.New("invalid amount")
	ErrInvalidRequest      = errs.New("invalid payment request")
	ErrGatewayUnavailable  = shared.ErrGatewayUnavailable
	ErrGatewayRejected     = shared.ErrGatewayRejected
	ErrGatewayDenied       = shared.ErrGatewayDenied
	ErrStagingNotFound     = errs.New("staged order not found")
	ErrStagingUnavailable  = errs.New("staging store unavailable")
	ErrTokenCollision      = errs.New("staging token collision")
	ErrCommitFailure       = errs.New("failed to commit approved payment")
	ErrNotFound            = errs.New("referenced entity not found")
	ErrNotRecoverable      = errs.New("staged order is not awaiting recovery")
	ErrDatabaseUnavailable = errs.New("database operation failed")
)

const (
	RecoveryRestaged  = "restaged"
	RecoveryEscalated = "escalated"
)

const (
	OutcomeSuccess         = "success"
	OutcomeInvalidAmount   = "invalid_amount"
	OutcomeGatewayFailure  = "gateway_failure"
	OutcomeStagingFailure  = "staging_failure"
	OutcomeStagingNotFound = "staging_not_found"
	OutcomeCommitFailure   = "commit_failure"
	OutcomeNotRecoverable  = "not_recoverable"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeLookupFailure   = "lookup_failure"
	OutcomeTokenCollision  = "token_collision"
)

const defaultCompensationWindow = 10 * time.Second

// CommitFailureError is returned when the gateway approved but the local commit did not happen.
type CommitFailureError struct {
	StagingToken string
	TID          string
	Recovery     string
	cause        error
}

func (e *CommitFailureError) Error() string {
	return fmt.Sprintf("%s (token=%s, tid=%s, recovery=%s): %v",
		ErrCommitFailure.Error(), e.StagingToken, e.TID, e.Recovery, e.cause)
}

func (e *CommitFailureError) Unwrap() error { return e.cause }

func (e *CommitFailureError) Is(target error) bool { return target == ErrCommitFailure }

type ReadyResult struct {
	TID          string
	RedirectURL  string
	StagingToken string
}

type ApproveRequest struct {
	TID          string
	PGToken      string
	StagingToken string
}

type PurchaseSummary struct {
	Receiver ReceiverView
	Orders   []OrderSummary
}

type ReceiverView struct {
	ProviderID string
	Name       string
	ProfileURL string
}

type OrderSummary struct {
	OrderNumber string
	Product     ProductSummary
	Quantity    int
	Options     []OptionSummary
}

type ProductSummary struct {
	ProductID uuid.UUID
	Name      string
	Photo     string
	Price     int64
	BrandName string
}

type OptionSummary struct {
	Name             string
	OptionDetailName string
}

type PaymentCommands interface {
	Ready(ctx context.Context, buyerID string, lines []payment.LineRequest) (*ReadyResult, error)
	Approve(ctx context.Context, buyerID string, req ApproveRequest) (*PurchaseSummary, error)
	// Recommit retries the local commit of a batch that was restaged after an approved payment.
	Recommit(ctx context.Context, buyerID string, stagingToken string) (*PurchaseSummary, error)
}

type PaymentSettings struct {
	StagingTTL          time.Duration
	GiftRetention       time.Duration
	CompensationTimeout time.Duration
}

func NewPaymentSettings(cfg config.Config) PaymentSettings {
	return PaymentSettings{
		StagingTTL:          cfg.Staging.TTL,
		GiftRetention:       cfg.Gift.Retention,
		CompensationTimeout: defaultCompensationWindow,
	}
}

type paymentUseCaseImpl struct {
	uow       shared.UnitOfWork
	staging   shared.StagingStore
	tokens    shared.TokenFactory
	gateway   shared.GatewayClient
	escalator shared.Escalator
	metrics   shared.PaymentMetrics
	clock     clock.Clock
	settings  PaymentSettings
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	staging shared.StagingStore,
	tokens shared.TokenFactory,
	gateway shared.GatewayClient,
	escalator shared.Escalator,
	metrics shared.PaymentMetrics,
	clk clock.Clock,
	settings PaymentSettings,
) PaymentCommands {
	if settings.CompensationTimeout <= 0 {
		settings.CompensationTimeout = defaultCompensationWindow
	}
	return &paymentUseCaseImpl{
		uow:       uow,
		staging:   staging,
		tokens:    tokens,
		gateway:   gateway,
		escalator: escalator,
		metrics:   metrics,
		clock:     clk,
		settings:  settings,
	}
}

// Ready validates, then calls the gateway, then stages. A failure at any step leaves nothing staged.
func (uc *paymentUseCaseImpl) Ready(ctx context.Context, buyerID string, lines []payment.LineRequest) (*ReadyResult, error) {
	if buyerID == "" || len(lines) == 0 {
		uc.metrics.ReadyCompleted(OutcomeInvalidRequest)
		return nil, ErrInvalidRequest
	}

	prices, err := uc.uow.CommandReads().PricesByProductIDs(ctx, payment.ProductIDs(lines))
	if err != nil {
		uc.metrics.ReadyCompleted(OutcomeLookupFailure)
		return nil, errs.Mark(errs.Wrap(err, "load current prices"), ErrDatabaseUnavailable)
	}
	if err = payment.ValidateAmounts(lines, prices); err != nil {
		uc.metrics.ReadyCompleted(OutcomeInvalidAmount)
		slog.Info("payment ready rejected", "buyer_id", buyerID, "error", err.Error())
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	batch, err := uc.newBatch(buyerID, lines)
	if err != nil {
		uc.metrics.ReadyCompleted(OutcomeTokenCollision)
		return nil, err
	}

	ready, err := uc.gateway.Ready(ctx, shared.GatewayReadyRequest{
		BuyerID:      buyerID,
		StagingToken: batch.Token,
		ItemName:     itemName(len(lines)),
		Quantity:     payment.TotalQuantity(lines),
		TotalAmount:  payment.TotalClaimed(lines),
	})
	if err != nil {
		uc.metrics.ReadyCompleted(OutcomeGatewayFailure)
		return nil, classifyGatewayErr(err, ErrGatewayUnavailable)
	}

	if err = uc.staging.Put(ctx, batch.Token, batch.WithTID(ready.TID), uc.settings.StagingTTL); err != nil {
		if errs.Is(err, shared.ErrStagingKeyExists) {
			uc.metrics.ReadyCompleted(OutcomeTokenCollision)
			return nil, errs.Mark(err, ErrTokenCollision)
		}
		uc.metrics.ReadyCompleted(OutcomeStagingFailure)
		return nil, errs.Mark(errs.Wrap(err, "stage order batch"), ErrStagingUnavailable)
	}

	slog.Info("payment ready staged",
		"staging_token", batch.Token,
		"tid", ready.TID,
		"buyer_id", buyerID,
		"lines", len(batch.Lines))
	uc.metrics.ReadyCompleted(OutcomeSuccess)

	return &ReadyResult{
		TID:          ready.TID,
		RedirectURL:  ready.RedirectURL,
		StagingToken: batch.Token,
	}, nil
}

func (uc *paymentUseCaseImpl) newBatch(buyerID string, lines []payment.LineRequest) (*payment.StagedBatch, error) {
	token, err := uc.tokens.StagingToken()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "generate staging token"), ErrTokenCollision)
	}
	numbers := make([]string, 0, len(lines))
	for range lines {
		num, nerr := uc.tokens.OrderNumber()
		if nerr != nil {
			return nil, errs.Mark(errs.Wrap(nerr, "generate order number"), ErrTokenCollision)
		}
		numbers = append(numbers, num)
	}

	batch, err := payment.NewStagedBatch(token, buyerID, lines, numbers, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenCollision)
	}
	return batch, nil
}

// Approve confirms with the gateway, consumes the staged batch and commits the purchase graph.
func (uc *paymentUseCaseImpl) Approve(ctx context.Context, buyerID string, req ApproveRequest) (*PurchaseSummary, error) {
	start := time.Now()
	if buyerID == "" || req.TID == "" || req.PGToken == "" || req.StagingToken == "" {
		uc.metrics.ApproveCompleted(OutcomeInvalidRequest, time.Since(start))
		return nil, ErrInvalidRequest
	}

	approval, err := uc.gateway.Approve(ctx, shared.GatewayApproveRequest{
		BuyerID:      buyerID,
		StagingToken: req.StagingToken,
		TID:          req.TID,
		PGToken:      req.PGToken,
	})
	if err != nil {
		uc.metrics.ApproveCompleted(OutcomeGatewayFailure, time.Since(start))
		return nil, classifyGatewayErr(err, ErrGatewayDenied)
	}

	batch, ok, err := uc.staging.TakeIfPresent(ctx, req.StagingToken)
	if err != nil {
		// The delete may or may not have happened; the payment is approved either way.
		cause := errs.Wrap(err, "take staged batch")
		slog.Error("staged batch unreadable after approval",
			"staging_token", req.StagingToken,
			"request_tid", req.TID,
			"tid", approval.TID,
			"buyer_id", buyerID,
			"approved_total", approval.Amount.Total,
			"error", err.Error())
		uc.metrics.ApproveCompleted(OutcomeStagingFailure, time.Since(start))
		return nil, uc.escalate(ctx, &payment.StagedBatch{Token: req.StagingToken, BuyerID: buyerID, TID: approval.TID}, *approval, cause)
	}
	if !ok {
		slog.Warn("approve for unknown or consumed staging token",
			"staging_token", req.StagingToken,
			"tid", approval.TID,
			"buyer_id", buyerID)
		uc.metrics.ApproveCompleted(OutcomeStagingNotFound, time.Since(start))
		return nil, ErrStagingNotFound
	}

	if reason := mismatch(batch, buyerID, approval.TID); reason != "" {
		uc.metrics.ApproveCompleted(OutcomeCommitFailure, time.Since(start))
		return nil, uc.rejectUnmatched(ctx, batch, buyerID, *approval, reason)
	}

	if batch.TotalAmount() != approval.Amount.Total {
		slog.Warn("approved amount differs from staged total",
			"staging_token", batch.Token,
			"tid", approval.TID,
			"staged_total", batch.TotalAmount(),
			"approved_total", approval.Amount.Total)
	}

	summary, err := uc.commit(ctx, buyerID, batch, *approval)
	if err != nil {
		uc.metrics.ApproveCompleted(OutcomeCommitFailure, time.Since(start))
		return nil, uc.compensate(ctx, batch, *approval, err)
	}

	uc.metrics.ApproveCompleted(OutcomeSuccess, time.Since(start))
	return summary, nil
}

func (uc *paymentUseCaseImpl) Recommit(ctx context.Context, buyerID string, stagingToken string) (*PurchaseSummary, error) {
	start := time.Now()
	if buyerID == "" || stagingToken == "" {
		return nil, ErrInvalidRequest
	}

	batch, ok, err := uc.staging.TakeIfPresent(ctx, stagingToken)
	if err != nil {
		uc.metrics.ApproveCompleted(OutcomeStagingFailure, time.Since(start))
		return nil, errs.Mark(errs.Wrap(err, "take staged batch"), ErrStagingUnavailable)
	}
	if !ok {
		uc.metrics.ApproveCompleted(OutcomeStagingNotFound, time.Since(start))
		return nil, ErrStagingNotFound
	}

	if !batch.IsApproved() || batch.BuyerID != buyerID {
		uc.metrics.ApproveCompleted(OutcomeNotRecoverable, time.Since(start))
		if perr := uc.putBack(ctx, batch); perr != nil && batch.IsApproved() {
			// The payment already settled; losing the batch here needs a human.
			return nil, uc.escalate(ctx, batch, *batch.Approval,
				errors.Join(errs.Wrap(ErrNotRecoverable, "recommit refused for "+buyerID), perr))
		}
		return nil, ErrNotRecoverable
	}

	summary, err := uc.commit(ctx, buyerID, batch, *batch.Approval)
	if err != nil {
		uc.metrics.ApproveCompleted(OutcomeCommitFailure, time.Since(start))
		return nil, uc.compensate(ctx, batch, *batch.Approval, err)
	}

	slog.Info("restaged batch committed", "staging_token", stagingToken, "tid", batch.Approval.TID)
	uc.metrics.ApproveCompleted(OutcomeSuccess, time.Since(start))
	return summary, nil
}

type resolvedBatch struct {
	buyer    *shared.MemberSnapshot
	products map[uuid.UUID]*shared.ProductSnapshot
	details  map[uuid.UUID]*shared.OptionDetailSnapshot
	receipts receipt.Receipts
}

func (uc *paymentUseCaseImpl) commit(ctx context.Context, buyerID string, batch *payment.StagedBatch, approval payment.Approval) (*PurchaseSummary, error) {
	resolved, err := uc.resolve(ctx, buyerID, batch)
	if err != nil {
		return nil, err
	}

	pay, err := approval.ToPayment()
	if err != nil {
		return nil, errs.Wrap(err, "build payment")
	}

	now := uc.clock.Now()
	approvedAt := approval.ApprovedAt
	if approvedAt.IsZero() {
		approvedAt = now
	}
	expiresAt := approvedAt.Add(uc.settings.GiftRetention)

	orders, err := resolved.receipts.ToOrders(pay.ID(), now)
	if err != nil {
		return nil, errs.Wrap(err, "derive orders")
	}
	gifts, err := resolved.receipts.ToGifts(expiresAt, now)
	if err != nil {
		return nil, errs.Wrap(err, "derive gifts")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Payments().Create(ctx, tx.DB(), pay); derr != nil {
			return derr
		}
		if derr := tx.Receipts().CreateAll(ctx, tx.DB(), resolved.receipts); derr != nil {
			return derr
		}
		if derr := tx.Orders().CreateAll(ctx, tx.DB(), orders); derr != nil {
			return derr
		}
		return tx.Gifts().CreateAll(ctx, tx.DB(), gifts)
	})
	if err != nil {
		return nil, errs.Wrap(err, "persist purchase")
	}

	slog.Info("payment committed",
		"staging_token", batch.Token,
		"tid", approval.TID,
		"payment_id", pay.ID().String(),
		"orders", len(orders))

	return buildSummary(batch, resolved), nil
}

func (uc *paymentUseCaseImpl) resolve(ctx context.Context, buyerID string, batch *payment.StagedBatch) (*resolvedBatch, error) {
	reads := uc.uow.CommandReads()

	buyer, err := reads.MemberByProviderID(ctx, buyerID)
	if err != nil {
		return nil, markLookupErr(err, "buyer "+buyerID)
	}
	// Recipient is the buyer until gifting to friends exists.
	parties := receipt.Parties{SenderID: buyer.ID, RecipientID: buyer.ID}

	products, err := reads.ProductsByIDs(ctx, batch.ProductIDs())
	if err != nil {
		return nil, markLookupErr(err, "products")
	}

	details := map[uuid.UUID]*shared.OptionDetailSnapshot{}
	if ids := batch.OptionDetailIDs(); len(ids) > 0 {
		details, err = reads.OptionDetailsByIDs(ctx, ids)
		if err != nil {
			return nil, markLookupErr(err, "option details")
		}
	}

	receipts := make(receipt.Receipts, 0, len(batch.Lines))
	for _, line := range batch.Lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, errs.Mark(errs.New("product "+line.ProductID.String()+" not found"), ErrNotFound)
		}

		options := make([]receipt.Option, 0, len(line.OptionDetailIDs))
		for _, id := range line.OptionDetailIDs {
			d, found := details[id]
			if !found {
				return nil, errs.Mark(errs.New("option detail "+id.String()+" not found"), ErrNotFound)
			}
			options = append(options, receipt.Option{Name: d.OptionName, DetailName: d.Name})
		}

		r, aerr := receipt.Assemble(line, receipt.Product{ID: product.ID, Name: product.Name, Price: product.Price}, options, parties)
		if aerr != nil {
			return nil, errs.Wrap(aerr, "assemble receipt "+line.OrderNumber)
		}
		receipts = append(receipts, r)
	}

	return &resolvedBatch{
		buyer:    buyer,
		products: products,
		details:  details,
		receipts: receipts,
	}, nil
}

// mismatch reports why an approval cannot settle the batch, or "" when it can.
func mismatch(batch *payment.StagedBatch, buyerID, approvedTID string) string {
	switch {
	case batch.BuyerID != buyerID:
		return "batch staged by another buyer"
	case batch.TID != "" && batch.TID != approvedTID:
		return "batch staged under another transaction"
	default:
		return ""
	}
}

// rejectUnmatched returns the batch untouched to its owner and escalates the approval nobody can settle.
func (uc *paymentUseCaseImpl) rejectUnmatched(ctx context.Context, batch *payment.StagedBatch, buyerID string, approval payment.Approval, reason string) error {
	slog.Warn("approval does not match staged batch",
		"staging_token", batch.Token,
		"staged_buyer_id", batch.BuyerID,
		"buyer_id", buyerID,
		"staged_tid", batch.TID,
		"tid", approval.TID,
		"reason", reason)

	cause := errs.New(reason)
	if perr := uc.putBack(ctx, batch); perr != nil {
		if batch.IsApproved() {
			// The owner's settled batch is gone too.
			_ = uc.escalate(ctx, batch, *batch.Approval, errors.Join(cause, perr))
		}
		cause = errors.Join(cause, perr)
	}

	return uc.escalate(ctx, &payment.StagedBatch{Token: batch.Token, BuyerID: buyerID, TID: approval.TID}, approval, cause)
}

func (uc *paymentUseCaseImpl) putBack(ctx context.Context, batch *payment.StagedBatch) error {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.CompensationTimeout)
	defer cancel()

	if err := uc.staging.Put(cctx, batch.Token, batch, uc.settings.StagingTTL); err != nil {
		slog.Error("failed to return staged batch",
			"staging_token", batch.Token,
			"error", err.Error())
		return errs.Wrap(err, "return staged batch")
	}
	return nil
}

// compensate runs on a context detached from the request so a cancelled caller cannot drop the batch.
func (uc *paymentUseCaseImpl) compensate(ctx context.Context, batch *payment.StagedBatch, approval payment.Approval, cause error) error {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.CompensationTimeout)
	defer cancel()

	restaged := batch.WithApproval(approval)
	putErr := uc.staging.Put(cctx, batch.Token, restaged, uc.settings.StagingTTL)
	if putErr == nil {
		slog.Warn("commit failed after approval; batch restaged",
			"staging_token", batch.Token,
			"tid", approval.TID,
			"error", cause.Error())
		uc.metrics.CommitRecovered(RecoveryRestaged)
		return &CommitFailureError{
			StagingToken: batch.Token,
			TID:          approval.TID,
			Recovery:     RecoveryRestaged,
			cause:        cause,
		}
	}

	return uc.escalate(cctx, restaged, approval, errors.Join(cause, errs.Wrap(putErr, "restage batch")))
}

func (uc *paymentUseCaseImpl) escalate(ctx context.Context, batch *payment.StagedBatch, approval payment.Approval, cause error) error {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.CompensationTimeout)
	defer cancel()

	event := shared.EscalationEvent{
		StagingToken: batch.Token,
		TID:          approval.TID,
		BuyerID:      batch.BuyerID,
		Approval:     &approval,
		Lines:        batch.Lines,
		Cause:        cause.Error(),
		OccurredAt:   uc.clock.Now(),
	}
	if err := uc.escalator.Escalate(cctx, event); err != nil {
		// Last resort: the log record carries everything needed to reconcile by hand.
		slog.Error("escalation publish failed",
			"staging_token", event.StagingToken,
			"tid", event.TID,
			"buyer_id", event.BuyerID,
			"lines", event.Lines,
			"cause", event.Cause,
			"error", err.Error())
	}

	slog.Error("commit failed after approval; escalated for reconciliation",
		"staging_token", batch.Token,
		"tid", approval.TID,
		"error", cause.Error())
	uc.metrics.CommitRecovered(RecoveryEscalated)

	return &CommitFailureError{
		StagingToken: batch.Token,
		TID:          approval.TID,
		Recovery:     RecoveryEscalated,
		cause:        cause,
	}
}

func buildSummary(batch *payment.StagedBatch, resolved *resolvedBatch) *PurchaseSummary {
	orders := make([]OrderSummary, 0, len(batch.Lines))
	for _, line := range batch.Lines {
		p := resolved.products[line.ProductID]
		options := make([]OptionSummary, 0, len(line.OptionDetailIDs))
		for _, id := range line.OptionDetailIDs {
			d := resolved.details[id]
			options = append(options, OptionSummary{Name: d.OptionName, OptionDetailName: d.Name})
		}
		orders = append(orders, OrderSummary{
			OrderNumber: line.OrderNumber,
			Product: ProductSummary{
				ProductID: p.ID,
				Name:      p.Name,
				Photo:     p.Photo,
				Price:     p.Price,
				BrandName: p.BrandName,
			},
			Quantity: line.Quantity,
			Options:  options,
		})
	}

	return &PurchaseSummary{
		Receiver: ReceiverView{
			ProviderID: resolved.buyer.ProviderID,
			Name:       resolved.buyer.Name,
			ProfileURL: resolved.buyer.ProfileURL,
		},
		Orders: orders,
	}
}

func classifyGatewayErr(err error, fallback error) error {
	switch {
	case errs.Is(err, ErrGatewayUnavailable),
		errs.Is(err, ErrGatewayRejected),
		errs.Is(err, ErrGatewayDenied):
		return err
	default:
		return errs.Mark(err, fallback)
	}
}

func markLookupErr(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrap(err, what+" not found"), ErrNotFound)
	}
	return errs.Mark(errs.Wrap(err, "load "+what), ErrDatabaseUnavailable)
}

func itemName(lines int) string {
	if lines == 1 {
		return "gift order (1 item)"
	}
	return fmt.Sprintf("gift order (%d items)", lines)
}
