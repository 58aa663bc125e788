package models

// PaymentDraft is the payment dialog state for one finance request. It
// is populated by StartPayment and only applied to the store when
// ProcessPayment is confirmed.
type PaymentDraft struct {
	RequestID        string
	PaymentMethod    string
	PaymentReference string
	InvoiceNumber    string
}
