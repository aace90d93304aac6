package domain

import (
	"strings"
	"time"
)

// StatusNew is the status assigned to every notification at creation.
// Nothing in this service transitions a notification out of it.
const StatusNew = "new"

// NotificationInput is the untrusted submission payload. Fields arrive
// untrimmed; Normalize produces the persistable form.
type NotificationInput struct {
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Details   string `json:"details"`
}

// Notification is the persisted record. NotificationID is assigned by the
// persistence layer and never mutated here.
type Notification struct {
	NotificationID string     `json:"id" dynamodbav:"notification_id"`
	Lastname       string     `json:"lastname" dynamodbav:"lastname"`
	Firstname      string     `json:"firstname" dynamodbav:"firstname"`
	Email          string     `json:"email" dynamodbav:"email"`
	Subject        string     `json:"subject" dynamodbav:"subject"`
	Details        string     `json:"details" dynamodbav:"details"`
	Status         string     `json:"status" dynamodbav:"status"`
	CreatedAt      time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty" dynamodbav:"updated_at,omitempty"`
}

// Normalize trims every field, lowercases the email, and stamps the record
// with the given creation time and the "new" status. Callers must have
// validated the input first.
func (in NotificationInput) Normalize(now time.Time) *Notification {
	return &Notification{
		Lastname:  strings.TrimSpace(in.Lastname),
		Firstname: strings.TrimSpace(in.Firstname),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Subject:   strings.TrimSpace(in.Subject),
		Details:   strings.TrimSpace(in.Details),
		Status:    StatusNew,
		CreatedAt: now,
	}
}
