package util

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ValidateEmail checks basic e-mail shape. Stored case-sensitively;
// no normalization happens here.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 128 {
		return fmt.Errorf("email too long, max 128 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}

// ValidatePassword enforces a minimum length only.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return fmt.Errorf("password too short, min 6 characters")
	}
	if len(password) > 72 {
		// bcrypt input limit
		return fmt.Errorf("password too long, max 72 bytes")
	}
	return nil
}

// ValidateTitle checks a task title (required, non-empty after trim).
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is empty")
	}
	if utf8.RuneCountInString(title) > 128 {
		return fmt.Errorf("title too long, max 128 characters")
	}
	return nil
}

// ValidateStatus checks a task status value.
func ValidateStatus(status string) error {
	switch status {
	case "pending", "in_progress", "completed":
		return nil
	}
	return fmt.Errorf("invalid status %q", status)
}
