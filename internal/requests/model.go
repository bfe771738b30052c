package requests

import (
	"strings"
	"time"
)

const (
	StatusPending    = "pending"
	StatusReviewed   = "reviewed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	UrgencyLow      = "Low"
	UrgencyMedium   = "Medium"
	UrgencyHigh     = "High"
	UrgencyCritical = "Critical"

	// TimelineASAP is the sentinel every type's timeline enum starts with.
	TimelineASAP = "ASAP"
)

// ValidStatuses is ordered the way the dashboard reports them.
var ValidStatuses = []string{StatusPending, StatusReviewed, StatusInProgress, StatusCompleted}

func IsValidStatus(value string) bool {
	for _, s := range ValidStatuses {
		if s == value {
			return true
		}
	}
	return false
}

// Lead holds the contact and system fields shared by every request type.
// Each stored document embeds it inline. Status moves freely between any two
// enum values; no workflow ordering is enforced.
type Lead struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	FullName    string    `bson:"fullName" json:"fullName"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Status      string    `bson:"status" json:"status"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactPayload is the contact ruleset every submission payload embeds.
type ContactPayload struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,min=10,max=20,phone"`
}

// LeadInfo exposes the shared fields to code that only knows the generic
// document, such as the notification path.
func (l Lead) LeadInfo() Lead {
	return l
}

// lead stamps the system fields of a fresh submission.
func (p ContactPayload) lead(id string, now time.Time) Lead {
	return Lead{
		ID:          id,
		FullName:    strings.TrimSpace(p.FullName),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:       strings.TrimSpace(p.Phone),
		Status:      StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
}

// Attachment is an uploaded-file reference carried by some request types.
type Attachment struct {
	FileName   string    `bson:"fileName" json:"fileName" validate:"required"`
	URL        string    `bson:"url" json:"url" validate:"required,url"`
	FileType   string    `bson:"fileType" json:"fileType"`
	UploadDate time.Time `bson:"uploadDate" json:"uploadDate"`
}

func stampAttachments(items []Attachment, now time.Time) []Attachment {
	if len(items) == 0 {
		return nil
	}
	out := make([]Attachment, len(items))
	for i, item := range items {
		item.FileName = strings.TrimSpace(item.FileName)
		item.URL = strings.TrimSpace(item.URL)
		item.FileType = strings.TrimSpace(item.FileType)
		if item.UploadDate.IsZero() {
			item.UploadDate = now
		}
		out[i] = item
	}
	return out
}

// StatusUpdate is the admin-facing result of a status transition.
type StatusUpdate struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stats is the count-by-status dashboard aggregate, zero-filled for statuses
// with no documents.
type Stats struct {
	Pending    int64 `json:"pending"`
	Reviewed   int64 `json:"reviewed"`
	InProgress int64 `json:"in-progress"`
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
}

// Pagination mirrors the admin list envelope.
type Pagination struct {
	CurrentPage   int64 `json:"currentPage"`
	TotalPages    int64 `json:"totalPages"`
	TotalRequests int64 `json:"totalRequests"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}

func trimmedAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// boolDefault resolves an optional boolean payload field against its
// per-field default.
func boolDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
