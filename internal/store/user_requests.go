package store

import (
	"log/slog"
	"sync"

	"github.com/Sharjeel-22/request-management-system/internal/util"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// UserRequestStore holds one requester's submissions, filed under the
// budget / non-budget / saleable-stock tabs.
type UserRequestStore struct {
	mu       sync.Mutex
	clock    core.Clock
	requests []domain.UserRequest
	nextID   int
}

func NewUserRequestStore(clock core.Clock, seed []domain.UserRequest) *UserRequestStore {
	return &UserRequestStore{
		clock:    clock,
		requests: append([]domain.UserRequest(nil), seed...),
		nextID:   len(seed) + 1,
	}
}

func (s *UserRequestStore) List() []domain.UserRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.UserRequest(nil), s.requests...)
}

func (s *UserRequestStore) ListByKind(kind models.RequestKind) []domain.UserRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.UserRequest
	for _, r := range s.requests {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func (s *UserRequestStore) Get(id string) (domain.UserRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.UserRequest{}, models.ErrNotFound
	}
	return s.requests[idx], nil
}

// Submit files a new request. The store assigns the id, stamps the
// submission date and starts the request pending.
func (s *UserRequestStore) Submit(req domain.UserRequest) (domain.UserRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Title == "" {
		return domain.UserRequest{}, &models.ValidationError{Field: "title", Reason: "request title is required"}
	}
	if !models.IsResourceType(req.Type) {
		return domain.UserRequest{}, &models.ValidationError{Field: "type", Reason: "unknown resource type: " + req.Type}
	}

	req.ID = util.SequenceID("REQ", s.nextID)
	req.Status = models.StatusPending
	req.SubmittedDate = core.DisplayDate(s.clock.Now())
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	s.nextID++
	s.requests = append(s.requests, req)

	slog.Info("Request submitted", "id", req.ID, "type", req.Type)
	return req, nil
}

func (s *UserRequestStore) ChangeStatus(id string, status models.RequestStatus) error {
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
	return nil
}

func (s *UserRequestStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.requests = append(s.requests[:idx], s.requests[idx+1:]...)
	return nil
}

func (s *UserRequestStore) Summary() models.RequestSummary {
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
	}
	sum.Total = len(s.requests)
	return sum
}

func (s *UserRequestStore) indexOf(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
