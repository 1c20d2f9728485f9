package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"richgradstudent/internal/models"
)

// Validation limits for synced content and subscriber fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxSummaryLen  = 2_000
	maxMetaDescLen = 500
	maxEmailLen    = 254
)

// validateEmail normalizes and checks a subscriber address. Returns the
// cleaned address and an error message, one of which is always empty.
func validateEmail(email string) (string, string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "email is required"
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "", "email is too long"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "email is invalid"
	}
	return email, ""
}

// validateContentFields checks the free-text fields of a synced document
// and returns the first error found.
func validateContentFields(c *models.Content) string {
	if utf8.RuneCountInString(c.DisplayTitle()) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(c.Slug) > maxSlugLen {
		return "slug is too long (max 300 characters)"
	}
	if c.Excerpt != nil && utf8.RuneCountInString(*c.Excerpt) > maxSummaryLen {
		return "excerpt is too long (max 2,000 characters)"
	}
	if c.Description != nil && utf8.RuneCountInString(*c.Description) > maxSummaryLen {
		return "description is too long (max 2,000 characters)"
	}
	if c.MetaDescription != nil && utf8.RuneCountInString(*c.MetaDescription) > maxMetaDescLen {
		return "meta description is too long (max 500 characters)"
	}
	return ""
}
