package models

// WorkflowSummary is the dashboard footer row over the workflow
// collection. Recomputed on every call, never cached.
type WorkflowSummary struct {
	TotalWorkflows    int
	ActiveWorkflows   int
	TotalRequests     int
	AvgCompletionRate int // percent, rounded
}

// RequestSummary is the by-status breakdown over a request collection.
type RequestSummary struct {
	Pending    int
	Approved   int
	Rejected   int
	InProgress int
	Total      int
	TotalValue float64
}

// PaymentSummary is the finance dashboard breakdown.
type PaymentSummary struct {
	Pending    int
	Processing int
	Completed  int
	Failed     int
	TotalValue float64
}
