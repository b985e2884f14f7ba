// Package services defines the business logic for telemetry ingestion.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrMissingFields is returned when any of the required ingestion fields
	// (userId, username, message) is empty after normalization.
	ErrMissingFields = errors.New("missing required fields")

	// ErrTooLong is returned when the message text exceeds the configured
	// maximum length limit.
	ErrTooLong = errors.New("message too long")
)
