package models

import "time"

// NZBNStatus tracks a business-registration request through the approval
// workflow.
type NZBNStatus string

const (
	NZBNStatusPending  NZBNStatus = "pending"
	NZBNStatusApproved NZBNStatus = "approved"
	NZBNStatusDeclined NZBNStatus = "declined"
)

// NZBNRequest is a user-submitted New Zealand Business Number awaiting
// verification by an administrator.
type NZBNRequest struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	UserEmail     string     `json:"userEmail"`
	NZBN          string     `json:"nzbn"`
	BusinessName  string     `json:"businessName"`
	Status        NZBNStatus `json:"status"`
	DeclineReason string     `json:"declineReason,omitempty"`
	SubmittedAt   time.Time  `json:"submittedAt"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

type NZBNListParams struct {
	Page    int
	PerPage int
	Status  NZBNStatus
}

type NZBNPage struct {
	Requests []NZBNRequest `json:"requests"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PerPage  int           `json:"perPage"`
}
