// Package domain defines the API and persistence models for status checks
// and contact-form submissions. Identifiers and timestamps are always
// generated server-side; the input types deliberately have no id or
// timestamp fields so client-supplied values can never leak in.
package domain

import "time"

// StatusCheck is a single status-check record. Timestamps are UTC and
// serialize to ISO-8601 (RFC 3339) strings, which is also the form stored
// in the document store.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the request payload for creating a status check.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

// ContactFormRequest is the request payload for a contact-form submission.
// Company is optional and defaults to the empty string.
type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
}

// ContactSubmission is the archived form of a contact-form submission,
// written only after the notification email was dispatched successfully.
// EmailID carries the provider-assigned message id and is null when the
// provider response omitted one.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	EmailID   *string   `json:"email_id"`
}

// ContactResult is the success response body for a contact-form submission.
type ContactResult struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	EmailID *string `json:"email_id"`
}
