package store

import (
	"log/slog"
	"sync"

	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// AdminRequestStore holds the admin dashboard's request list. Status
// changes are unconditional overwrites: any status is reachable from
// any other, so an admin can always override a prior decision.
type AdminRequestStore struct {
	mu       sync.Mutex
	requests []domain.AdminRequest
}

func NewAdminRequestStore(seed []domain.AdminRequest) *AdminRequestStore {
	return &AdminRequestStore{requests: append([]domain.AdminRequest(nil), seed...)}
}

func (s *AdminRequestStore) List() []domain.AdminRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AdminRequest(nil), s.requests...)
}

func (s *AdminRequestStore) Get(id string) (domain.AdminRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.AdminRequest{}, models.ErrNotFound
	}
	return s.requests[idx], nil
}

// ChangeStatus overwrites the status without consulting a transition
// graph.
func (s *AdminRequestStore) ChangeStatus(id string, status models.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return &models.ValidationError{Field: "status", Reason: "unknown status: " + string(status)}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.requests[idx].Status = status
	slog.Info("Request status changed", "id", id, "status", status)
	return nil
}

// Edit replaces the stored record after the edit dialog submits. Total
// stays whatever the dialog holds; it is not recomputed from price and
// quantity.
func (s *AdminRequestStore) Edit(id string, record domain.AdminRequest) error {
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

func (s *AdminRequestStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.requests = append(s.requests[:idx], s.requests[idx+1:]...)
	slog.Info("Request deleted", "id", id)
	return nil
}

// Summary recounts by status over the current collection.
func (s *AdminRequestStore) Summary() models.RequestSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum models.RequestSummary
	for _, r := range s.requests {
		switch r.Status {
		case models.StatusPending:
			sum.Pending++
		case models.StatusApproved:
			sum.Approved++
		case models.StatusRejected:
			sum.Rejected++
		case models.StatusInProgress:
			sum.InProgress++
		}
		sum.TotalValue += r.Total
	}
	sum.Total = len(s.requests)
	return sum
}

func (s *AdminRequestStore) indexOf(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
