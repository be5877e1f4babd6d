package domain

import "errors"

var (
	ErrMissingContactFields = errors.New("name, email, and message are required")
	ErrMissingQuickFields   = errors.New("name and phone are required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrMailerNotConfigured  = errors.New("RESEND_API_KEY is not configured")
	ErrDeliveryFailed       = errors.New("email delivery failed")
	ErrArchiveDisabled      = errors.New("contact archive is not configured")
)
