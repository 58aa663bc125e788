package store

import (
	"log/slog"
	"sync"

	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// FinanceRequestStore holds approved requests queued for payment. The
// payment gateway mutates records through it so that a deferred
// completion firing after a delete or edit cannot resurrect a record.
type FinanceRequestStore struct {
	mu       sync.Mutex
	requests []domain.FinanceRequest
}

func NewFinanceRequestStore(seed []domain.FinanceRequest) *FinanceRequestStore {
	return &FinanceRequestStore{requests: append([]domain.FinanceRequest(nil), seed...)}
}

func (s *FinanceRequestStore) List() []domain.FinanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.FinanceRequest(nil), s.requests...)
}

// ListByPaymentStatus filters the queue for the dashboard tabs.
func (s *FinanceRequestStore) ListByPaymentStatus(status models.PaymentStatus) []domain.FinanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.FinanceRequest
	for _, r := range s.requests {
		if r.PaymentStatus == status {
			out = append(out, r)
		}
	}
	return out
}

func (s *FinanceRequestStore) Get(id string) (domain.FinanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.FinanceRequest{}, models.ErrNotFound
	}
	return s.requests[idx], nil
}

// Count is the number of requests currently in the queue; payment
// references are numbered from it.
func (s *FinanceRequestStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// BeginPayment applies a confirmed payment draft: the request moves to
// processing and the method, reference, invoice number and payment date
// are stamped onto it.
func (s *FinanceRequestStore) BeginPayment(id string, draft models.PaymentDraft, paymentDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	r := &s.requests[idx]
	r.PaymentStatus = models.PaymentProcessing
	r.PaymentMethod = draft.PaymentMethod
	r.PaymentReference = draft.PaymentReference
	r.InvoiceNumber = draft.InvoiceNumber
	r.PaymentDate = paymentDate
	slog.Info("Payment initiated", "id", id, "reference", r.PaymentReference)
	return nil
}

// CompleteIfProcessing marks the payment completed only when the record
// still exists and is still processing. Deferred gateway callbacks go
// through here so a request deleted mid-flight stays deleted.
func (s *FinanceRequestStore) CompleteIfProcessing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		slog.Warn("Deferred payment completion skipped, request gone", "id", id)
		return false
	}
	if s.requests[idx].PaymentStatus != models.PaymentProcessing {
		slog.Warn("Deferred payment completion skipped, not processing", "id", id, "status", s.requests[idx].PaymentStatus)
		return false
	}
	s.requests[idx].PaymentStatus = models.PaymentCompleted
	slog.Info("Payment completed", "id", id)
	return true
}

// ProcessingIDs lists requests currently stuck in processing.
func (s *FinanceRequestStore) ProcessingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, r := range s.requests {
		if r.PaymentStatus == models.PaymentProcessing {
			out = append(out, r.ID)
		}
	}
	return out
}

// SetPaymentStatus overwrites the payment status directly; like request
// statuses there is no enforced transition graph.
func (s *FinanceRequestStore) SetPaymentStatus(id string, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return &models.ValidationError{Field: "paymentStatus", Reason: "unknown payment status: " + string(status)}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.requests[idx].PaymentStatus = status
	return nil
}

func (s *FinanceRequestStore) Edit(id string, record domain.FinanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	record.ID = id
	s.requests[idx] = record
	return nil
}

func (s *FinanceRequestStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.requests = append(s.requests[:idx], s.requests[idx+1:]...)
	slog.Info("Finance request deleted", "id", id)
	return nil
}

func (s *FinanceRequestStore) Summary() models.PaymentSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum models.PaymentSummary
	for _, r := range s.requests {
		switch r.PaymentStatus {
		case models.PaymentPending:
			sum.Pending++
		case models.PaymentProcessing:
			sum.Processing++
		case models.PaymentCompleted:
			sum.Completed++
		case models.PaymentFailed:
			sum.Failed++
		}
		sum.TotalValue += r.Total
	}
	return sum
}

func (s *FinanceRequestStore) indexOf(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
