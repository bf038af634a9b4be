// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutAllDevicesInput represents the input for logging out everywhere.
type LogoutAllDevicesInput struct {
	UserID uuid.UUID
}

// LogoutAllDevicesOutput represents the output of logging out everywhere.
type LogoutAllDevicesOutput struct {
	Message string
}

// LogoutAllDevicesUseCase revokes every refresh token the user holds, ending
// all of their sessions at once.
type LogoutAllDevicesUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutAllDevicesUseCase creates a new LogoutAllDevicesUseCase instance.
func NewLogoutAllDevicesUseCase(tokenService adapter.TokenService) *LogoutAllDevicesUseCase {
	return &LogoutAllDevicesUseCase{
		tokenService: tokenService,
	}
}

// Execute invalidates all refresh tokens for the user.
func (uc *LogoutAllDevicesUseCase) Execute(ctx context.Context, input LogoutAllDevicesInput) (*LogoutAllDevicesOutput, error) {
	if err := uc.tokenService.InvalidateAllUserTokens(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	return &LogoutAllDevicesOutput{
		Message: "Logged out from all devices",
	}, nil
}
