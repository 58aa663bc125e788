package domain

import (
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// WorkflowStep is one unit in a workflow. Position in the parent's
// Steps slice defines execution order; steps run strictly sequentially.
type WorkflowStep struct {
	ID             string
	Name           string
	Type           models.StepType
	Approver       models.ApproverRole // meaningful only when Type is approval
	CustomApprover string              // meaningful only when Approver is custom
	Description    string

	// Display-only per-step stats from the preview screen.
	EstimatedTime  string
	CompletionRate string
}

// WorkflowDefinition is a named, ordered sequence of steps applied to
// resource requests of the tagged types.
type WorkflowDefinition struct {
	ID          string
	Name        string
	Description string
	IsActive    bool // accepts new requests
	IsDefault   bool // at most one per collection
	AppliesTo   []string
	Steps       []WorkflowStep

	// Display-only aggregates, externally supplied. Not invariant-bearing.
	LastModified      string
	TotalRequests     int
	CompletionRate    string // e.g. "94%"
	AvgProcessingTime string // e.g. "2.3 days"
}

// Clone returns a deep copy whose AppliesTo and Steps are independent
// in storage from the receiver's.
func (w WorkflowDefinition) Clone() WorkflowDefinition {
	out := w
	out.AppliesTo = append([]string(nil), w.AppliesTo...)
	out.Steps = append([]WorkflowStep(nil), w.Steps...)
	return out
}

// WorkflowDraft is the form payload for creating a workflow. Steps come
// from the step editor; the store assigns the id and flags.
type WorkflowDraft struct {
	Name        string
	Description string
	AppliesTo   []string
	Steps       []WorkflowStep
}
