package models

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("User not found"), fiber.StatusNotFound},
		{"validation", NewValidationError("Invalid nick"), fiber.StatusBadRequest},
		{"conflict", NewConflictError("Email already in use"), fiber.StatusConflict},
		{"unauthorized", NewUnauthorizedError("Invalid credentials"), fiber.StatusUnauthorized},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"deadline exceeded", context.DeadlineExceeded, fiber.StatusGatewayTimeout},
		{"wrapped deadline", NewInternalError(fmt.Errorf("query users: %w", context.DeadlineExceeded)), fiber.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(tt.err); got != tt.want {
				t.Errorf("StatusForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewConflictError("Nick already in use"))
	if !IsCode(err, CodeConflict) {
		t.Errorf("IsCode should see the conflict code through wrapping")
	}
	if IsCode(err, CodeNotFound) {
		t.Errorf("IsCode matched the wrong code")
	}
	if IsCode(errors.New("boom"), CodeInternal) {
		t.Errorf("IsCode matched a plain error")
	}
}
