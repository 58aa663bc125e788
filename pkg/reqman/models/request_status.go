package models

// RequestStatus is the lifecycle status of an admin or user request.
// Any status may be set from any other status; admin actions are
// treated as overrides and no transition graph is enforced.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusApproved   RequestStatus = "approved"
	StatusRejected   RequestStatus = "rejected"
	StatusInProgress RequestStatus = "in-progress"
)

var validRequestStatuses = map[RequestStatus]bool{
	StatusPending:    true,
	StatusApproved:   true,
	StatusRejected:   true,
	StatusInProgress: true,
}

func (s RequestStatus) IsValid() bool { return validRequestStatuses[s] }

func (s RequestStatus) String() string { return string(s) }

// PaymentStatus is the finance-side payment lifecycle of an approved
// request.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

var validPaymentStatuses = map[PaymentStatus]bool{
	PaymentPending:    true,
	PaymentProcessing: true,
	PaymentCompleted:  true,
	PaymentFailed:     true,
}

func (s PaymentStatus) IsValid() bool { return validPaymentStatuses[s] }

func (s PaymentStatus) String() string { return string(s) }

// Priority of a request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)
