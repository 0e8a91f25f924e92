package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

type AuthService struct {
	authRepo models.AuthRepo
}

func NewAuthService(authRepo models.AuthRepo) *AuthService {
	return &AuthService{
		authRepo: authRepo,
	}
}

func (as *AuthService) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if !helpers.IsPasswordStrong(password) {
		return nil, fmt.Errorf("password is not strong enough")
	}
	return as.authRepo.SignUp(ctx, email, password)
}

func (as *AuthService) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, fmt.Errorf("password is required")
	}
	response, err := as.authRepo.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}
	return response, nil
}

func (as *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	response, err := as.authRepo.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}

// SignOut revokes the session. Without a token there is nothing to revoke.
func (as *AuthService) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return as.authRepo.SignOut(ctx, accessToken)
}
