package core

// error_messages.go maps technical errors to user-facing messages with codes.
//
// Error codes by category:
//
//	ROUTE001 - Route not found          Patterns: "route not found"
//	ROUTE002 - Invalid route id         Patterns: "invalid route id"
//	FILE001  - Profile too large        Patterns: "file too large"
//	FILE002  - Invalid map geometry     Patterns: "invalid geojson"
//	LOAD001  - System busy              Patterns: "too many concurrent loads"
//	REQ001   - Request cancelled        Patterns: "context canceled"
//	REQ002   - Request timed out        Patterns: "context deadline exceeded"
//	REQ003   - Invalid request body     Patterns: "invalid request"
//	DB001    - Asset store unreachable  Patterns: "connection refused", "connection reset"
//	RATE001  - Rate limited             Patterns: "rate limit"
//	ERR000   - Fallback when nothing matches
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so specific patterns come before general ones. When a user
// reports ERR000, the original error is in the server log under the same
// request_id.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Route lookups
	{
		pattern: "route not found",
		msg: UserMessage{
			Message: "Route not found",
			Action:  "Check the link or pick a route from the home page",
			Code:    "ROUTE001",
		},
	},
	{
		pattern: "invalid route id",
		msg: UserMessage{
			Message: "That is not a valid route address",
			Action:  "Route ids use lowercase letters, digits, dashes and underscores",
			Code:    "ROUTE002",
		},
	},

	// Route assets
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "The elevation profile is too large to display",
			Action:  "Reduce the number of points in the profile",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid geojson",
		msg: UserMessage{
			Message: "The map geometry for this route is damaged",
			Action:  "Please report this route so it can be fixed",
			Code:    "FILE002",
		},
	},

	// Capacity
	{
		pattern: "too many concurrent loads",
		msg: UserMessage{
			Message: "The server is busy loading other routes",
			Action:  "Please wait a moment and try again",
			Code:    "LOAD001",
		},
	},

	// Request lifecycle
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again in a few moments",
			Code:    "REQ002",
		},
	},
	{
		pattern: "invalid request",
		msg: UserMessage{
			Message: "The request could not be understood",
			Action:  "Check the request body and try again",
			Code:    "REQ003",
		},
	},

	// Asset store connectivity
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Route storage is unavailable",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Route storage connection was interrupted",
			Action:  "Please try again",
			Code:    "DB001",
		},
	},

	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first pattern match, or the ERR000 fallback.
//
// Example:
//
//	msg := MapError(fmt.Errorf("load profile: %w", assets.ErrNotFound))
//	// msg.Code == "ROUTE001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging via Unwrap.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
