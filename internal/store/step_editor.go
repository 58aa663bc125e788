package store

import (
	"fmt"

	"github.com/Sharjeel-22/request-management-system/internal/util"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// StepEditor maintains the ordered step list of one workflow draft,
// shared by the create and edit flows. Slice order is execution order.
type StepEditor struct {
	clock core.Clock
	steps []domain.WorkflowStep
}

func NewStepEditor(clock core.Clock, initial []domain.WorkflowStep) *StepEditor {
	return &StepEditor{
		clock: clock,
		steps: append([]domain.WorkflowStep(nil), initial...),
	}
}

// AddStep appends a new approval step with a time-derived id. It always
// succeeds.
func (e *StepEditor) AddStep() domain.WorkflowStep {
	step := domain.WorkflowStep{
		ID:       util.StepID(e.clock.Now()),
		Name:     fmt.Sprintf("Step %d", len(e.steps)+1),
		Type:     models.StepApproval,
		Approver: models.ApproverManager,
	}
	e.steps = append(e.steps, step)
	return step
}

// RemoveStep deletes the step, keeping the order of the remainder. A
// workflow must keep at least one step; removing the last one is
// rejected with no state change.
func (e *StepEditor) RemoveStep(id string) error {
	if len(e.steps) <= 1 {
		return models.ErrLastStep
	}
	for i := range e.steps {
		if e.steps[i].ID == id {
			e.steps = append(e.steps[:i], e.steps[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// MoveUp swaps the step at index with its predecessor. Already at the
// top (or out of range) is a no-op, not an error.
func (e *StepEditor) MoveUp(index int) {
	if index <= 0 || index >= len(e.steps) {
		return
	}
	e.steps[index], e.steps[index-1] = e.steps[index-1], e.steps[index]
}

// MoveDown swaps the step at index with its successor. Already at the
// bottom (or out of range) is a no-op, not an error.
func (e *StepEditor) MoveDown(index int) {
	if index < 0 || index >= len(e.steps)-1 {
		return
	}
	e.steps[index], e.steps[index+1] = e.steps[index+1], e.steps[index]
}

// UpdateField sets a single field on the step matching id. An unknown
// id is silently ignored; an edit racing a removal is not an error.
func (e *StepEditor) UpdateField(id string, field string, value string) error {
	for i := range e.steps {
		if e.steps[i].ID != id {
			continue
		}
		switch field {
		case "name":
			e.steps[i].Name = value
		case "description":
			e.steps[i].Description = value
		case "customApprover":
			e.steps[i].CustomApprover = value
		case "type":
			t := models.StepType(value)
			if !t.IsValid() {
				return &models.ValidationError{Field: "type", Reason: "unknown step type: " + value}
			}
			e.steps[i].Type = t
		case "approver":
			r := models.ApproverRole(value)
			if !r.IsValid() {
				return &models.ValidationError{Field: "approver", Reason: "unknown approver role: " + value}
			}
			e.steps[i].Approver = r
		default:
			return &models.ValidationError{Field: field, Reason: "unknown step field"}
		}
		return nil
	}
	return nil
}

// Steps returns the current list in order. The slice is a copy.
func (e *StepEditor) Steps() []domain.WorkflowStep {
	return append([]domain.WorkflowStep(nil), e.steps...)
}

func (e *StepEditor) Len() int { return len(e.steps) }

// ShowApprover reports whether the approver selector applies to the
// step: only approval steps carry an approver.
func ShowApprover(step domain.WorkflowStep) bool {
	return step.Type == models.StepApproval
}

// ShowCustomApprover reports whether the free-text approver field
// applies: approval steps whose approver role is custom.
func ShowCustomApprover(step domain.WorkflowStep) bool {
	return step.Type == models.StepApproval && step.Approver == models.ApproverCustom
}
