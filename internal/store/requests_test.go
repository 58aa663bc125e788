package store

import (
	"errors"
	"testing"

	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

func TestAdminRequests_StatusOverwrite(t *testing.T) {
	s := NewAdminRequestStore(SeedAdminRequests())

	// Any status reaches any other, rejected included.
	if err := s.ChangeStatus("REQ-003", models.StatusApproved); err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	r, _ := s.Get("REQ-003")
	if r.Status != models.StatusApproved {
		t.Errorf("Expected approved, got %s", r.Status)
	}

	if err := s.ChangeStatus("REQ-003", models.StatusPending); err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	r, _ = s.Get("REQ-003")
	if r.Status != models.StatusPending {
		t.Errorf("Expected pending, got %s", r.Status)
	}

	if err := s.ChangeStatus("REQ-003", "archived"); !models.IsValidation(err) {
		t.Errorf("Expected ValidationError for unknown status, got %v", err)
	}
	if err := s.ChangeStatus("REQ-999", models.StatusApproved); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAdminRequests_EditKeepsIDAndTotal(t *testing.T) {
	s := NewAdminRequestStore(SeedAdminRequests())

	r, _ := s.Get("REQ-001")
	r.ID = "REQ-HACKED"
	r.Quantity = 400
	r.Total = 5000 // not recomputed from price * quantity
	if err := s.Edit("REQ-001", r); err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}

	reread, err := s.Get("REQ-001")
	if err != nil {
		t.Fatalf("Edited record lost its id: %v", err)
	}
	if reread.Quantity != 400 || reread.Total != 5000 {
		t.Errorf("Edit not applied: qty=%d total=%.2f", reread.Quantity, reread.Total)
	}
	if _, err := s.Get("REQ-HACKED"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Edit let the record change its id")
	}
}

func TestAdminRequests_Summary(t *testing.T) {
	s := NewAdminRequestStore(SeedAdminRequests())

	sum := s.Summary()
	if sum.Total != 4 {
		t.Errorf("Expected 4 requests, got %d", sum.Total)
	}
	if sum.Pending != 1 || sum.Approved != 1 || sum.Rejected != 1 || sum.InProgress != 1 {
		t.Errorf("Unexpected status counts: %+v", sum)
	}
	want := 1836.00 + 367.00 + 183.50 + 734.00
	if sum.TotalValue != want {
		t.Errorf("Expected total value %.2f, got %.2f", want, sum.TotalValue)
	}

	if err := s.Delete("REQ-001"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	sum = s.Summary()
	if sum.Total != 3 || sum.Pending != 0 {
		t.Errorf("Summary not recomputed after delete: %+v", sum)
	}
}

func TestFinanceRequests_BeginPaymentStampsFields(t *testing.T) {
	s := NewFinanceRequestStore(SeedFinanceRequests())

	draft := models.PaymentDraft{
		RequestID:        "REQ-002",
		PaymentMethod:    "Bank Transfer",
		PaymentReference: "PAY-2025-005",
		InvoiceNumber:    "INV-2025-AW-123",
	}
	if err := s.BeginPayment("REQ-002", draft, "2025-05-09"); err != nil {
		t.Fatalf("BeginPayment returned error: %v", err)
	}

	r, _ := s.Get("REQ-002")
	if r.PaymentStatus != models.PaymentProcessing {
		t.Errorf("Expected processing, got %s", r.PaymentStatus)
	}
	if r.PaymentReference != "PAY-2025-005" || r.InvoiceNumber != "INV-2025-AW-123" {
		t.Errorf("Draft fields not stamped: %+v", r)
	}
	if r.PaymentDate != "2025-05-09" {
		t.Errorf("Payment date not stamped: %s", r.PaymentDate)
	}
}

func TestFinanceRequests_CompleteIfProcessing(t *testing.T) {
	s := NewFinanceRequestStore(SeedFinanceRequests())

	// REQ-005 is seeded as processing.
	if !s.CompleteIfProcessing("REQ-005") {
		t.Errorf("Expected completion of a processing payment")
	}
	r, _ := s.Get("REQ-005")
	if r.PaymentStatus != models.PaymentCompleted {
		t.Errorf("Expected completed, got %s", r.PaymentStatus)
	}

	// Not processing and missing records are both skipped.
	if s.CompleteIfProcessing("REQ-002") {
		t.Errorf("Completed a pending payment")
	}
	if s.CompleteIfProcessing("REQ-999") {
		t.Errorf("Completed a missing record")
	}
}

func TestFinanceRequests_FilterAndSummary(t *testing.T) {
	s := NewFinanceRequestStore(SeedFinanceRequests())

	pending := s.ListByPaymentStatus(models.PaymentPending)
	if len(pending) != 2 {
		t.Errorf("Expected 2 pending payments, got %d", len(pending))
	}
	ids := s.ProcessingIDs()
	if len(ids) != 1 || ids[0] != "REQ-005" {
		t.Errorf("Unexpected processing ids: %v", ids)
	}

	sum := s.Summary()
	if sum.Pending != 2 || sum.Processing != 1 || sum.Completed != 1 || sum.Failed != 0 {
		t.Errorf("Unexpected payment counts: %+v", sum)
	}
	want := 367.00 + 734.00 + 7499.75 + 7188.00
	if sum.TotalValue != want {
		t.Errorf("Expected total value %.2f, got %.2f", want, sum.TotalValue)
	}
}

func TestUserRequests_Submit(t *testing.T) {
	s := NewUserRequestStore(newTestClock(), SeedUserRequests())

	req, err := s.Submit(domain.UserRequest{
		Title: "GPU quota increase",
		Type:  "Compute Resources",
		Kind:  models.KindBudget,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if req.ID != "REQ-005" {
		t.Errorf("Expected id REQ-005, got %s", req.ID)
	}
	if req.Status != models.StatusPending {
		t.Errorf("Expected pending, got %s", req.Status)
	}
	if req.SubmittedDate != "2025-06-15" {
		t.Errorf("Expected stamped date, got %s", req.SubmittedDate)
	}
	if req.Priority != models.PriorityMedium {
		t.Errorf("Expected default Medium priority, got %s", req.Priority)
	}

	if _, err := s.Submit(domain.UserRequest{Type: "Compute Resources"}); !models.IsValidation(err) {
		t.Errorf("Expected ValidationError for empty title, got %v", err)
	}
	if _, err := s.Submit(domain.UserRequest{Title: "x", Type: "Time Machines"}); !models.IsValidation(err) {
		t.Errorf("Expected ValidationError for unknown type, got %v", err)
	}
	if len(s.List()) != 5 {
		t.Errorf("Failed submits changed the collection: %d", len(s.List()))
	}
}

func TestUserRequests_KindTabsAndSummary(t *testing.T) {
	s := NewUserRequestStore(newTestClock(), SeedUserRequests())

	if n := len(s.ListByKind(models.KindBudget)); n != 2 {
		t.Errorf("Expected 2 budget requests, got %d", n)
	}
	if n := len(s.ListByKind(models.KindNonBudget)); n != 1 {
		t.Errorf("Expected 1 non-budget request, got %d", n)
	}
	if n := len(s.ListByKind(models.KindSaleableStock)); n != 1 {
		t.Errorf("Expected 1 saleable-stock request, got %d", n)
	}

	sum := s.Summary()
	if sum.Total != 4 || sum.Pending != 1 || sum.Approved != 1 || sum.Rejected != 1 || sum.InProgress != 1 {
		t.Errorf("Unexpected summary: %+v", sum)
	}
}
