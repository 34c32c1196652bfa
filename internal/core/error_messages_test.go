package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/elevation"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("load profile utmb: %w", assets.ErrNotFound),
			wantCode:    "ROUTE001",
			wantMessage: "Route not found",
		},
		{
			name:        "invalid id",
			err:         assets.ErrInvalidID,
			wantCode:    "ROUTE002",
			wantMessage: "That is not a valid route address",
		},
		{
			name:        "profile too large",
			err:         fmt.Errorf("read elevation csv: %w: exceeds 10 bytes", elevation.ErrTooLarge),
			wantCode:    "FILE001",
			wantMessage: "The elevation profile is too large to display",
		},
		{
			name:        "invalid geojson",
			err:         fmt.Errorf("route utmb: %w", ErrInvalidGeoJSON),
			wantCode:    "FILE002",
			wantMessage: "The map geometry for this route is damaged",
		},
		{
			name:        "limiter busy",
			err:         ErrTooManyLoads,
			wantCode:    "LOAD001",
			wantMessage: "The server is busy loading other routes",
		},
		{
			name:        "cancelled",
			err:         fmt.Errorf("acquire: %w", context.Canceled),
			wantCode:    "REQ001",
			wantMessage: "Request was cancelled",
		},
		{
			name:        "deadline",
			err:         context.DeadlineExceeded,
			wantCode:    "REQ002",
			wantMessage: "Request timed out",
		},
		{
			name:        "connection refused",
			err:         errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantCode:    "DB001",
			wantMessage: "Route storage is unavailable",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("ROUTE NOT FOUND"),
			wantCode:    "ROUTE001",
			wantMessage: "Route not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(assets.ErrNotFound)

	expected := "Route not found (Code: ROUTE001). Check the link or pick a route from the home page"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error is not user facing", nil, false},
		{"known error is user facing", ErrTooManyLoads, true},
		{"unknown error is not user facing", errors.New("random internal error xyz"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := fmt.Errorf("get route: %w", assets.ErrNotFound)
		userErr := NewUserError(techErr)

		if userErr.Error() != "Route not found" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}
		if !errors.Is(userErr, assets.ErrNotFound) {
			t.Error("Unwrap() should expose the original error chain")
		}
	})
}
