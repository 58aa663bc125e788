package payments

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Sharjeel-22/request-management-system/internal/config"
	"github.com/Sharjeel-22/request-management-system/internal/store"
	"github.com/Sharjeel-22/request-management-system/internal/util"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// Gateway simulates the external payment provider. Initiating a payment
// moves the request to processing and arms a deferred completion; the
// callback re-checks the record before mutating it, so requests deleted
// or edited mid-flight are left alone.
type Gateway struct {
	store         *store.FinanceRequestStore
	clock         core.Clock
	completeAfter time.Duration
	invoiceSeq    func() int // 0-999, injectable for tests

	mu      sync.Mutex
	pending map[string]struct{} // ids with an armed completion timer
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewGateway(financeStore *store.FinanceRequestStore, clock core.Clock) *Gateway {
	completeAfter, err := time.ParseDuration(config.GetSystemSettingString(config.PAYMENT_COMPLETE_AFTER))
	if err != nil || completeAfter <= 0 {
		completeAfter = 3 * time.Second
	}
	return &Gateway{
		store:         financeStore,
		clock:         clock,
		completeAfter: completeAfter,
		invoiceSeq:    func() int { return rand.IntN(1000) },
		pending:       make(map[string]struct{}),
		stop:          make(chan struct{}),
	}
}

// StartPayment builds the payment dialog draft for a pending request
// without touching the store. A blank reference is numbered from the
// current queue length.
func (g *Gateway) StartPayment(id string) (models.PaymentDraft, error) {
	req, err := g.store.Get(id)
	if err != nil {
		return models.PaymentDraft{}, err
	}

	draft := models.PaymentDraft{
		RequestID:        req.ID,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		InvoiceNumber:    req.InvoiceNumber,
	}
	if draft.PaymentMethod == "" {
		draft.PaymentMethod = "Bank Transfer"
	}
	if draft.PaymentReference == "" {
		year := g.clock.Now().Year()
		draft.PaymentReference = util.PaymentReference(year, g.store.Count()+1)
	}
	return draft, nil
}

// ProcessPayment applies a confirmed draft: the request moves to
// processing with a stamped payment date and invoice number, and the
// deferred completion is armed.
func (g *Gateway) ProcessPayment(draft models.PaymentDraft) error {
	req, err := g.store.Get(draft.RequestID)
	if err != nil {
		return err
	}

	if draft.InvoiceNumber == "" {
		draft.InvoiceNumber = util.InvoiceNumber(g.clock.Now().Year(), req.Vendor, g.invoiceSeq())
	}
	if err := g.store.BeginPayment(draft.RequestID, draft, core.DisplayDate(g.clock.Now())); err != nil {
		return err
	}

	g.arm(draft.RequestID)
	return nil
}

// arm schedules the deferred completion for one request. At most one
// timer per id is kept.
func (g *Gateway) arm(id string) {
	g.mu.Lock()
	if _, ok := g.pending[id]; ok {
		g.mu.Unlock()
		return
	}
	g.pending[id] = struct{}{}
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			g.mu.Lock()
			delete(g.pending, id)
			g.mu.Unlock()
		}()

		select {
		case <-g.clock.After(g.completeAfter):
			g.store.CompleteIfProcessing(id)
		case <-g.stop:
		}
	}()
}

// Run sweeps for payments stuck in processing with no armed timer, for
// example after a restart between initiation and completion, and
// re-arms them. It blocks until the context is cancelled.
func (g *Gateway) Run(ctx context.Context) {
	interval, err := time.ParseDuration(config.GetSystemSettingString(config.PAYMENT_STUCK_SWEEP_INTERVAL))
	if err != nil || interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("Payment gateway started", "complete_after", g.completeAfter.String(), "sweep_interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Payment gateway stopping due to context cancel")
			return
		case <-g.stop:
			return
		case <-ticker.C:
			g.Sweep()
		}
	}
}

// Sweep re-arms every processing payment that has no pending timer.
func (g *Gateway) Sweep() {
	for _, id := range g.store.ProcessingIDs() {
		g.mu.Lock()
		_, armed := g.pending[id]
		g.mu.Unlock()
		if !armed {
			slog.Warn("Re-arming stuck payment", "id", id)
			g.arm(id)
		}
	}
}

// Close stops the sweeper and releases pending timers without firing
// them.
func (g *Gateway) Close() {
	close(g.stop)
	g.wg.Wait()
}
