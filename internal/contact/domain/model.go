package domain

import (
	"net/mail"
	"strings"
	"time"
)

// Form kinds, used for metrics and the archive.
const (
	KindFull  = "full"
	KindQuick = "quick"
)

// Submission is the main contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Company = strings.TrimSpace(s.Company)
	s.Service = strings.TrimSpace(s.Service)
	s.Message = strings.TrimSpace(s.Message)
}

func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingContactFields
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// QuickRequest is the short call-me-back form on project detail pages.
type QuickRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ProjectName string `json:"projectName"`
}

func (q *QuickRequest) Normalize() {
	q.Name = strings.TrimSpace(q.Name)
	q.Phone = strings.TrimSpace(q.Phone)
	q.ProjectName = strings.TrimSpace(q.ProjectName)
}

func (q QuickRequest) Validate() error {
	if q.Name == "" || q.Phone == "" {
		return ErrMissingQuickFields
	}
	return nil
}

// Email is a rendered message ready for delivery.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Record is an archived submission.
type Record struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service,omitempty"`
	Project   string    `json:"project,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
