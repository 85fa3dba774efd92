// Package services implements the business logic for status checks and
// contact-form submissions. This file centralizes service-level error values
// so they can be consistently returned by service methods and checked by
// callers; translation into HTTP status codes happens at the handler layer.
package services

import "errors"

// ErrDispatchFailed indicates the email provider rejected or failed the send
// operation. The contact-form path never persists a submission when this is
// returned.
var ErrDispatchFailed = errors.New("email dispatch failed")
