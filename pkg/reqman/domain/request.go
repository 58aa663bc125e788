package domain

import (
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// RequestLine carries the monetary and descriptive fields shared by the
// admin and finance request shapes. Total is expected to equal
// PricePerUnit*Quantity but remains independently overridable in the
// edit dialog; Balance follows Total-BudgetUtilized by convention only.
type RequestLine struct {
	ID             string
	BudgetCode     string
	Title          string
	Description    string
	Details        string
	RequestUnit    string
	PricePerUnit   float64
	Quantity       int
	Total          float64
	BudgetUtilized float64
	Balance        float64
	Priority       models.Priority
	Requester      string
	Department     string
	SubmittedDate  string
	Justification  string
}

// AdminRequest is a request as seen on the admin dashboard.
type AdminRequest struct {
	RequestLine
	Status models.RequestStatus
}

// FinanceRequest is an approved request queued for payment.
type FinanceRequest struct {
	RequestLine
	Status           models.RequestStatus
	ApprovedDate     string
	PaymentStatus    models.PaymentStatus
	Vendor           string
	VendorEmail      string
	PaymentMethod    string
	InvoiceNumber    string
	PaymentDate      string
	PaymentReference string
}

// UserRequest is the requester's own view of a submission.
type UserRequest struct {
	ID            string
	Title         string
	Type          string // resource type tag
	Kind          models.RequestKind
	Status        models.RequestStatus
	SubmittedDate string
	Priority      models.Priority
	Feedback      string // populated on rejection
	AssignedTo    string // populated while in progress
}
