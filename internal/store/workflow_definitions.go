package store

import (
	"log/slog"
	"sync"

	"github.com/Sharjeel-22/request-management-system/internal/util"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// WorkflowDefinitionStore holds the in-memory workflow collection for
// one page instance. Every operation either succeeds fully or leaves
// the collection untouched.
type WorkflowDefinitionStore struct {
	mu        sync.Mutex
	clock     core.Clock
	workflows []domain.WorkflowDefinition
	nextID    int
}

func NewWorkflowDefinitionStore(clock core.Clock, seed []domain.WorkflowDefinition) *WorkflowDefinitionStore {
	s := &WorkflowDefinitionStore{
		clock:  clock,
		nextID: len(seed) + 1,
	}
	for _, w := range seed {
		s.workflows = append(s.workflows, w.Clone())
	}
	return s
}

func validateWorkflow(name string, appliesTo []string, stepCount int) error {
	if name == "" {
		return &models.ValidationError{Field: "name", Reason: "workflow name is required"}
	}
	if len(appliesTo) == 0 {
		return &models.ValidationError{Field: "appliesTo", Reason: "select at least one resource type"}
	}
	for _, t := range appliesTo {
		if !models.IsResourceType(t) {
			return &models.ValidationError{Field: "appliesTo", Reason: "unknown resource type: " + t}
		}
	}
	if stepCount == 0 {
		return &models.ValidationError{Field: "steps", Reason: "a workflow must have at least one step"}
	}
	return nil
}

// Create validates the draft and appends a new workflow. New workflows
// start active and never start as the default.
func (s *WorkflowDefinitionStore) Create(draft domain.WorkflowDraft) (domain.WorkflowDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateWorkflow(draft.Name, draft.AppliesTo, len(draft.Steps)); err != nil {
		return domain.WorkflowDefinition{}, err
	}

	wf := domain.WorkflowDefinition{
		ID:           util.SequenceID("wf", s.nextID),
		Name:         draft.Name,
		Description:  draft.Description,
		IsActive:     true,
		IsDefault:    false,
		AppliesTo:    append([]string(nil), draft.AppliesTo...),
		Steps:        append([]domain.WorkflowStep(nil), draft.Steps...),
		LastModified: core.DisplayDate(s.clock.Now()),
	}
	s.nextID++
	s.workflows = append(s.workflows, wf)

	slog.Info("Workflow created", "id", wf.ID, "name", wf.Name)
	return wf.Clone(), nil
}

// Duplicate deep-copies an existing workflow under a fresh id. The copy
// is never the default and its request counter starts at zero.
func (s *WorkflowDefinitionStore) Duplicate(id string) (domain.WorkflowDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.WorkflowDefinition{}, models.ErrNotFound
	}

	copyWf := s.workflows[idx].Clone()
	copyWf.ID = util.SequenceID("wf", s.nextID)
	copyWf.Name = copyWf.Name + " (Copy)"
	copyWf.IsDefault = false
	copyWf.TotalRequests = 0
	copyWf.LastModified = core.DisplayDate(s.clock.Now())
	s.nextID++
	s.workflows = append(s.workflows, copyWf)

	slog.Info("Workflow duplicated", "source", id, "id", copyWf.ID)
	return copyWf.Clone(), nil
}

// SetDefault marks the target as the single default workflow.
func (s *WorkflowDefinitionStore) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return models.ErrNotFound
	}
	for i := range s.workflows {
		s.workflows[i].IsDefault = s.workflows[i].ID == id
	}
	slog.Info("Default workflow set", "id", id)
	return nil
}

// ToggleActive flips whether the workflow accepts new requests and
// returns the new value.
func (s *WorkflowDefinitionStore) ToggleActive(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, models.ErrNotFound
	}
	s.workflows[idx].IsActive = !s.workflows[idx].IsActive
	return s.workflows[idx].IsActive, nil
}

// Update replaces the stored record with the edited one after the edit
// form submits, re-validating the same constraints as Create. The id
// and default flag are taken from the stored record; the default flag
// only changes through SetDefault.
func (s *WorkflowDefinitionStore) Update(id string, record domain.WorkflowDefinition) (domain.WorkflowDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.WorkflowDefinition{}, models.ErrNotFound
	}
	if err := validateWorkflow(record.Name, record.AppliesTo, len(record.Steps)); err != nil {
		return domain.WorkflowDefinition{}, err
	}

	record = record.Clone()
	record.ID = id
	record.IsDefault = s.workflows[idx].IsDefault
	record.LastModified = core.DisplayDate(s.clock.Now())
	s.workflows[idx] = record

	slog.Info("Workflow updated", "id", id, "name", record.Name)
	return record.Clone(), nil
}

// Delete removes the workflow. If the deleted workflow was the default
// no other workflow is promoted; nothing downstream depends on it.
func (s *WorkflowDefinitionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.workflows = append(s.workflows[:idx], s.workflows[idx+1:]...)
	slog.Info("Workflow deleted", "id", id)
	return nil
}

func (s *WorkflowDefinitionStore) Get(id string) (domain.WorkflowDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.WorkflowDefinition{}, models.ErrNotFound
	}
	return s.workflows[idx].Clone(), nil
}

// List returns the collection in display order. Entries are copies.
func (s *WorkflowDefinitionStore) List() []domain.WorkflowDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WorkflowDefinition, 0, len(s.workflows))
	for _, w := range s.workflows {
		out = append(out, w.Clone())
	}
	return out
}

// Summary recomputes the dashboard footer figures on every call.
func (s *WorkflowDefinitionStore) Summary() models.WorkflowSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum models.WorkflowSummary
	sum.TotalWorkflows = len(s.workflows)
	ratePctTotal := 0
	for _, w := range s.workflows {
		if w.IsActive {
			sum.ActiveWorkflows++
		}
		sum.TotalRequests += w.TotalRequests
		ratePctTotal += util.ParsePercent(w.CompletionRate)
	}
	if len(s.workflows) > 0 {
		sum.AvgCompletionRate = (ratePctTotal + len(s.workflows)/2) / len(s.workflows)
	}
	return sum
}

func (s *WorkflowDefinitionStore) indexOf(id string) int {
	for i := range s.workflows {
		if s.workflows[i].ID == id {
			return i
		}
	}
	return -1
}
