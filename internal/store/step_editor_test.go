package store

import (
	"errors"
	"testing"
	"time"

	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

func threeSteps() []domain.WorkflowStep {
	return []domain.WorkflowStep{
		{ID: "step-a", Name: "First", Type: models.StepApproval, Approver: models.ApproverManager},
		{ID: "step-b", Name: "Second", Type: models.StepApproval, Approver: models.ApproverITAdmin},
		{ID: "step-c", Name: "Third", Type: models.StepNotification},
	}
}

func TestStepEditor_AddStepDefaults(t *testing.T) {
	clock := newTestClock()
	e := NewStepEditor(clock, threeSteps())

	step := e.AddStep()
	if e.Len() != 4 {
		t.Fatalf("Expected 4 steps, got %d", e.Len())
	}
	if step.Name != "Step 4" {
		t.Errorf("Expected name Step 4, got %s", step.Name)
	}
	if step.Type != models.StepApproval || step.Approver != models.ApproverManager {
		t.Errorf("New step has wrong defaults: %s/%s", step.Type, step.Approver)
	}

	// Ids come from the clock; distinct instants give distinct ids.
	clock.now = clock.now.Add(time.Second)
	other := e.AddStep()
	if other.ID == step.ID {
		t.Errorf("Two added steps share an id: %s", step.ID)
	}
}

func TestStepEditor_RemoveStep(t *testing.T) {
	e := NewStepEditor(newTestClock(), threeSteps())

	if err := e.RemoveStep("step-b"); err != nil {
		t.Fatalf("RemoveStep returned error: %v", err)
	}
	steps := e.Steps()
	if len(steps) != 2 || steps[0].ID != "step-a" || steps[1].ID != "step-c" {
		t.Errorf("Unexpected order after remove: %v", steps)
	}

	if err := e.RemoveStep("step-x"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}

	if err := e.RemoveStep("step-a"); err != nil {
		t.Fatalf("RemoveStep returned error: %v", err)
	}
	if err := e.RemoveStep("step-c"); !errors.Is(err, models.ErrLastStep) {
		t.Errorf("Expected ErrLastStep removing the final step, got %v", err)
	}
	if e.Len() != 1 {
		t.Errorf("Rejected removal changed the list: %d steps", e.Len())
	}
}

func TestStepEditor_MoveBoundaries(t *testing.T) {
	e := NewStepEditor(newTestClock(), threeSteps())

	e.MoveUp(1)
	if ids := stepIDs(e); ids[0] != "step-b" || ids[1] != "step-a" {
		t.Errorf("MoveUp(1) gave order %v", ids)
	}

	e.MoveUp(0) // top of list, no-op
	if ids := stepIDs(e); ids[0] != "step-b" {
		t.Errorf("MoveUp(0) changed order: %v", ids)
	}

	e.MoveDown(2) // bottom of list, no-op
	if ids := stepIDs(e); ids[2] != "step-c" {
		t.Errorf("MoveDown at bottom changed order: %v", ids)
	}

	e.MoveDown(0)
	if ids := stepIDs(e); ids[0] != "step-a" || ids[1] != "step-b" {
		t.Errorf("MoveDown(0) gave order %v", ids)
	}

	e.MoveUp(-1)
	e.MoveDown(99)
	if e.Len() != 3 {
		t.Errorf("Out-of-range moves changed the list")
	}
}

func TestStepEditor_UpdateField(t *testing.T) {
	e := NewStepEditor(newTestClock(), threeSteps())

	if err := e.UpdateField("step-a", "name", "Renamed"); err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}
	if err := e.UpdateField("step-a", "type", "condition"); err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}
	if err := e.UpdateField("step-b", "approver", "custom"); err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}
	if err := e.UpdateField("step-b", "customApprover", "audit@company.com"); err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}

	steps := e.Steps()
	if steps[0].Name != "Renamed" || steps[0].Type != models.StepCondition {
		t.Errorf("Field edits not applied: %+v", steps[0])
	}
	if steps[1].Approver != models.ApproverCustom || steps[1].CustomApprover != "audit@company.com" {
		t.Errorf("Approver edits not applied: %+v", steps[1])
	}

	if err := e.UpdateField("step-a", "type", "escalation"); !models.IsValidation(err) {
		t.Errorf("Expected ValidationError for bad type, got %v", err)
	}
	if err := e.UpdateField("step-a", "color", "red"); !models.IsValidation(err) {
		t.Errorf("Expected ValidationError for unknown field, got %v", err)
	}
	// Unknown id is ignored like the form does.
	if err := e.UpdateField("step-x", "name", "Ghost"); err != nil {
		t.Errorf("Expected nil for unknown id, got %v", err)
	}
}

func TestStepEditor_ApproverVisibility(t *testing.T) {
	approval := domain.WorkflowStep{Type: models.StepApproval, Approver: models.ApproverManager}
	custom := domain.WorkflowStep{Type: models.StepApproval, Approver: models.ApproverCustom}
	notify := domain.WorkflowStep{Type: models.StepNotification}

	if !ShowApprover(approval) || !ShowApprover(custom) {
		t.Errorf("Approval steps must show the approver selector")
	}
	if ShowApprover(notify) {
		t.Errorf("Notification steps must hide the approver selector")
	}
	if ShowCustomApprover(approval) {
		t.Errorf("Manager approver must hide the custom field")
	}
	if !ShowCustomApprover(custom) {
		t.Errorf("Custom approver must show the custom field")
	}
}

func stepIDs(e *StepEditor) []string {
	steps := e.Steps()
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}
