package models

// StepType categorises a workflow step. Only approval steps carry an
// approver; condition and assignment are display categories with the
// same sequential execution as any other step.
type StepType string

const (
	StepApproval     StepType = "approval"     // requires an approver decision
	StepNotification StepType = "notification" // notifies requester/stakeholders
	StepCondition    StepType = "condition"    // condition check
	StepAssignment   StepType = "assignment"   // assigns an actor
)

var validStepTypes = map[StepType]bool{
	StepApproval:     true,
	StepNotification: true,
	StepCondition:    true,
	StepAssignment:   true,
}

func (t StepType) IsValid() bool { return validStepTypes[t] }

// ApproverRole identifies who signs off an approval step.
type ApproverRole string

const (
	ApproverManager  ApproverRole = "manager"
	ApproverITAdmin  ApproverRole = "it-admin"
	ApproverSecurity ApproverRole = "security"
	ApproverFinance  ApproverRole = "finance"
	ApproverCustom   ApproverRole = "custom" // named in CustomApprover
)

var validApproverRoles = map[ApproverRole]bool{
	ApproverManager:  true,
	ApproverITAdmin:  true,
	ApproverSecurity: true,
	ApproverFinance:  true,
	ApproverCustom:   true,
}

func (r ApproverRole) IsValid() bool { return validApproverRoles[r] }
