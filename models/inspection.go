package models

import (
	"time"
)

// Status values owned by the admin side of the review.
const (
	StatusAdminPending  = "Pending"
	StatusAdminAwaiting = "Awaiting approval"
	StatusAdminDisputed = "Disputed"
	StatusAdminAccepted = "Accepted"
)

// Status values owned by the reviewer side of the review.
const (
	StatusReviewerPending  = "Pending"
	StatusReviewerApproved = "Approved"
	StatusReviewerRejected = "Rejected"
)

// AdminStatuses lists every value status_admin may take.
var AdminStatuses = []string{
	StatusAdminPending,
	StatusAdminAwaiting,
	StatusAdminDisputed,
	StatusAdminAccepted,
}

// ReviewerStatuses lists every value status_reviewer may take.
var ReviewerStatuses = []string{
	StatusReviewerPending,
	StatusReviewerApproved,
	StatusReviewerRejected,
}

// ValidAdminStatus reports whether s belongs to the admin status enumeration.
func ValidAdminStatus(s string) bool {
	for _, v := range AdminStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidReviewerStatus reports whether s belongs to the reviewer status enumeration.
func ValidReviewerStatus(s string) bool {
	for _, v := range ReviewerStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Inspection represents one uploaded vehicle inspection report together with
// its two-sided (admin / reviewer) review state. Rows are never hard-deleted;
// only the PDF payload can be cleared.
type Inspection struct {
	InspectionID       int        `gorm:"primaryKey;column:inspection_id" json:"inspection_id"`
	RegistrationNumber string     `gorm:"column:registration_number;size:50;not null" json:"registration_number"`
	DealerName         *string    `gorm:"column:dealer_name;size:120" json:"dealer_name,omitempty"`
	PDFFilename        string     `gorm:"column:pdf_filename;size:255;not null" json:"pdf_filename"`
	PDFData            []byte     `gorm:"column:pdf_data;type:longblob" json:"-"`
	CostEstimate       *int       `gorm:"column:cost_estimate" json:"cost_estimate,omitempty"`
	AcceptedCost       *int       `gorm:"column:accepted_cost" json:"accepted_cost,omitempty"`
	StatusAdmin        string     `gorm:"column:status_admin;size:20;default:Pending" json:"status_admin"`
	StatusReviewer     string     `gorm:"column:status_reviewer;size:20;default:Pending" json:"status_reviewer"`
	CommentAdmin       *string    `gorm:"column:comment_admin;type:text" json:"comment_admin,omitempty"`
	CommentReviewer    *string    `gorm:"column:comment_reviewer;type:text" json:"comment_reviewer,omitempty"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// HasPDFData reports whether the inline copy of the report is present.
func (i *Inspection) HasPDFData() bool {
	return len(i.PDFData) > 0
}

// TableName overrides
func (Inspection) TableName() string {
	return "inspections"
}
