package store

import (
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// Seed data mirrors what each dashboard loads on entry. Every page
// owns its own copy; editing a request in the admin view does not
// affect the finance view.

func SeedWorkflows() []domain.WorkflowDefinition {
	return []domain.WorkflowDefinition{
		{
			ID:          "wf-001",
			Name:        "Standard Approval Process",
			Description: "Default workflow for general resource requests with department head and finance approval",
			IsActive:    true,
			IsDefault:   true,
			AppliesTo:   []string{"Compute Resources", "Storage Resources", "Database Resources"},
			Steps: []domain.WorkflowStep{
				{
					ID:             "step-1",
					Name:           "Department Manager Approval",
					Type:           models.StepApproval,
					Approver:       models.ApproverManager,
					Description:    "Department manager reviews and approves the request based on business requirements",
					EstimatedTime:  "1 day",
					CompletionRate: "96%",
				},
				{
					ID:             "step-2",
					Name:           "IT Admin Review",
					Type:           models.StepApproval,
					Approver:       models.ApproverITAdmin,
					Description:    "IT administrator reviews technical requirements and infrastructure impact",
					EstimatedTime:  "0.8 days",
					CompletionRate: "92%",
				},
				{
					ID:             "step-3",
					Name:           "Final Notification",
					Type:           models.StepNotification,
					Description:    "Notify requester and stakeholders of the final decision and next steps",
					EstimatedTime:  "0.1 days",
					CompletionRate: "100%",
				},
			},
			LastModified:      "2025-05-01",
			TotalRequests:     1240,
			CompletionRate:    "94%",
			AvgProcessingTime: "2.3 days",
		},
		{
			ID:          "wf-002",
			Name:        "Expedited Approval",
			Description: "Fast-track workflow for urgent requests requiring immediate attention",
			IsActive:    true,
			IsDefault:   false,
			AppliesTo:   []string{"API Access"},
			Steps: []domain.WorkflowStep{
				{
					ID:          "step-1",
					Name:        "Manager Fast-Track Approval",
					Type:        models.StepApproval,
					Approver:    models.ApproverManager,
					Description: "Single manager sign-off for urgent requests",
				},
				{
					ID:          "step-2",
					Name:        "Requester Notification",
					Type:        models.StepNotification,
					Description: "Notify requester of the expedited decision",
				},
			},
			LastModified:      "2025-04-28",
			TotalRequests:     156,
			CompletionRate:    "98%",
			AvgProcessingTime: "0.8 days",
		},
		{
			ID:          "wf-003",
			Name:        "Security Review Process",
			Description: "Enhanced security review for sensitive resource requests with multiple approval layers",
			IsActive:    false,
			IsDefault:   false,
			AppliesTo:   []string{"Database Resources", "API Access"},
			Steps: []domain.WorkflowStep{
				{
					ID:          "step-1",
					Name:        "Department Manager Approval",
					Type:        models.StepApproval,
					Approver:    models.ApproverManager,
					Description: "Initial business-need review",
				},
				{
					ID:          "step-2",
					Name:        "Security Risk Assessment",
					Type:        models.StepCondition,
					Description: "Classify the request's data sensitivity and access scope",
				},
				{
					ID:          "step-3",
					Name:        "Security Team Approval",
					Type:        models.StepApproval,
					Approver:    models.ApproverSecurity,
					Description: "Security team validates controls and compliance requirements",
				},
				{
					ID:          "step-4",
					Name:        "Access Provisioning",
					Type:        models.StepAssignment,
					Description: "Assign provisioning to the infrastructure team",
				},
				{
					ID:          "step-5",
					Name:        "Final Notification",
					Type:        models.StepNotification,
					Description: "Notify requester and stakeholders of the outcome",
				},
			},
			LastModified:      "2025-05-05",
			TotalRequests:     67,
			CompletionRate:    "89%",
			AvgProcessingTime: "5.2 days",
		},
	}
}

func SeedAdminRequests() []domain.AdminRequest {
	return []domain.AdminRequest{
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-001",
				BudgetCode:     "BC-2024-001",
				Title:          "AWS EC2 Instance for Development",
				Description:    "Compute Resources for ML Training",
				Details:        "High-performance GPU instances for machine learning model training with NVIDIA A100 GPUs",
				RequestUnit:    "GPU Hours",
				PricePerUnit:   9.18,
				Quantity:       200,
				Total:          1836.00,
				BudgetUtilized: 1836.00,
				Balance:        0.00,
				Priority:       models.PriorityHigh,
				Requester:      "John Doe",
				Department:     "Engineering",
				SubmittedDate:  "2025-05-05",
				Justification:  "Need high-performance computing resources for training machine learning models for our new AI-powered recommendation system.",
			},
			Status: models.StatusPending,
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-002",
				BudgetCode:     "BC-2024-002",
				Title:          "Database Storage Expansion",
				Description:    "PostgreSQL Storage Expansion",
				Details:        "Additional PostgreSQL database storage for user data with automated backups and replication",
				RequestUnit:    "GB",
				PricePerUnit:   0.37,
				Quantity:       1000,
				Total:          367.00,
				BudgetUtilized: 275.25,
				Balance:        91.75,
				Priority:       models.PriorityMedium,
				Requester:      "Sarah Johnson",
				Department:     "Data",
				SubmittedDate:  "2025-05-03",
				Justification:  "Current database storage is at 85% capacity. Need additional storage to support growing user base.",
			},
			Status: models.StatusApproved,
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-003",
				BudgetCode:     "BC-2024-003",
				Title:          "API Access Premium",
				Description:    "External API Integration",
				Details:        "Premium tier API access for external integrations with enhanced rate limits and SLA",
				RequestUnit:    "API Calls",
				PricePerUnit:   0.004,
				Quantity:       50000,
				Total:          183.50,
				BudgetUtilized: 0.00,
				Balance:        183.50,
				Priority:       models.PriorityLow,
				Requester:      "Michael Chen",
				Department:     "Development",
				SubmittedDate:  "2025-05-01",
				Justification:  "Need premium API access for integrating with third-party payment processors and analytics services.",
			},
			Status: models.StatusRejected,
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-004",
				BudgetCode:     "BC-2024-004",
				Title:          "Cloud Infrastructure Setup",
				Description:    "Multi-region Infrastructure",
				Details:        "Multi-region cloud infrastructure deployment with load balancing and auto-scaling capabilities",
				RequestUnit:    "Instances",
				PricePerUnit:   146.80,
				Quantity:       5,
				Total:          734.00,
				BudgetUtilized: 440.40,
				Balance:        293.60,
				Priority:       models.PriorityHigh,
				Requester:      "Emily Wilson",
				Department:     "DevOps",
				SubmittedDate:  "2025-05-02",
				Justification:  "Setting up multi-region infrastructure to improve application performance and ensure high availability.",
			},
			Status: models.StatusInProgress,
		},
	}
}

func SeedFinanceRequests() []domain.FinanceRequest {
	return []domain.FinanceRequest{
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-002",
				BudgetCode:     "BC-2024-002",
				Title:          "Database Storage Expansion",
				Description:    "PostgreSQL Storage Expansion",
				Details:        "Additional PostgreSQL database storage for user data with automated backups and replication",
				RequestUnit:    "GB",
				PricePerUnit:   0.37,
				Quantity:       1000,
				Total:          367.00,
				BudgetUtilized: 275.25,
				Balance:        91.75,
				Priority:       models.PriorityMedium,
				Requester:      "Sarah Johnson",
				Department:     "Data",
				SubmittedDate:  "2025-05-03",
				Justification:  "Current database storage is at 85% capacity. Need additional storage to support growing user base.",
			},
			Status:        models.StatusApproved,
			ApprovedDate:  "2025-05-07",
			PaymentStatus: models.PaymentPending,
			Vendor:        "AWS",
			VendorEmail:   "billing@aws.com",
			PaymentMethod: "Bank Transfer",
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-004",
				BudgetCode:     "BC-2024-004",
				Title:          "Cloud Infrastructure Setup",
				Description:    "Multi-region Infrastructure",
				Details:        "Multi-region cloud infrastructure deployment with load balancing and auto-scaling capabilities",
				RequestUnit:    "Instances",
				PricePerUnit:   146.80,
				Quantity:       5,
				Total:          734.00,
				BudgetUtilized: 440.40,
				Balance:        293.60,
				Priority:       models.PriorityHigh,
				Requester:      "Emily Wilson",
				Department:     "DevOps",
				SubmittedDate:  "2025-05-02",
				Justification:  "Setting up multi-region infrastructure to improve application performance and ensure high availability.",
			},
			Status:        models.StatusApproved,
			ApprovedDate:  "2025-05-06",
			PaymentStatus: models.PaymentPending,
			Vendor:        "Google Cloud",
			VendorEmail:   "billing@googlecloud.com",
			PaymentMethod: "Credit Card",
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-005",
				BudgetCode:     "BC-2024-005",
				Title:          "Software License Renewal",
				Description:    "Enterprise Software Licenses",
				Details:        "Annual renewal of enterprise software licenses for development tools and productivity software",
				RequestUnit:    "Licenses",
				PricePerUnit:   299.99,
				Quantity:       25,
				Total:          7499.75,
				BudgetUtilized: 0.00,
				Balance:        7499.75,
				Priority:       models.PriorityHigh,
				Requester:      "David Park",
				Department:     "IT",
				SubmittedDate:  "2025-05-01",
				Justification:  "Critical software licenses expiring next month. Need renewal to maintain development productivity.",
			},
			Status:           models.StatusApproved,
			ApprovedDate:     "2025-05-05",
			PaymentStatus:    models.PaymentProcessing,
			Vendor:           "Microsoft",
			VendorEmail:      "licensing@microsoft.com",
			PaymentMethod:    "Bank Transfer",
			InvoiceNumber:    "INV-2025-MS-001",
			PaymentDate:      "2025-05-08",
			PaymentReference: "PAY-2025-001",
		},
		{
			RequestLine: domain.RequestLine{
				ID:             "REQ-006",
				BudgetCode:     "BC-2024-006",
				Title:          "Marketing Campaign Tools",
				Description:    "Digital Marketing Platform",
				Details:        "Advanced marketing automation platform with analytics, email marketing, and customer segmentation",
				RequestUnit:    "Monthly Subscription",
				PricePerUnit:   599.00,
				Quantity:       12,
				Total:          7188.00,
				BudgetUtilized: 0.00,
				Balance:        7188.00,
				Priority:       models.PriorityMedium,
				Requester:      "Lisa Chen",
				Department:     "Marketing",
				SubmittedDate:  "2025-04-28",
				Justification:  "Need advanced marketing tools to improve customer acquisition and retention rates.",
			},
			Status:           models.StatusApproved,
			ApprovedDate:     "2025-05-04",
			PaymentStatus:    models.PaymentCompleted,
			Vendor:           "HubSpot",
			VendorEmail:      "billing@hubspot.com",
			PaymentMethod:    "Credit Card",
			InvoiceNumber:    "INV-2025-HS-001",
			PaymentDate:      "2025-05-06",
			PaymentReference: "PAY-2025-002",
		},
	}
}

func SeedUserRequests() []domain.UserRequest {
	return []domain.UserRequest{
		{
			ID:            "REQ-001",
			Title:         "AWS EC2 Instance for Development",
			Type:          "Compute Resources",
			Kind:          models.KindBudget,
			Status:        models.StatusPending,
			SubmittedDate: "2025-05-05",
			Priority:      models.PriorityMedium,
		},
		{
			ID:            "REQ-002",
			Title:         "S3 Storage Bucket for Project Assets",
			Type:          "Storage Resources",
			Kind:          models.KindBudget,
			Status:        models.StatusApproved,
			SubmittedDate: "2025-05-01",
			Priority:      models.PriorityLow,
		},
		{
			ID:            "REQ-003",
			Title:         "Database Access for Analytics Team",
			Type:          "Database Resources",
			Kind:          models.KindNonBudget,
			Status:        models.StatusRejected,
			SubmittedDate: "2025-04-28",
			Priority:      models.PriorityHigh,
			Feedback:      "Please provide more details about access requirements and security measures.",
		},
		{
			ID:            "REQ-004",
			Title:         "API Access for Integration Testing",
			Type:          "API Access",
			Kind:          models.KindSaleableStock,
			Status:        models.StatusInProgress,
			SubmittedDate: "2025-05-03",
			Priority:      models.PriorityMedium,
			AssignedTo:    "Technical Team",
		},
	}
}
