package usecase

import (
	"context"
	"errors"

	"rental-sales-api/internal/domain/user"
	"rental-sales-api/internal/pkg/jwt"
	"rental-sales-api/internal/pkg/password"
	"rental-sales-api/internal/usecase/commands"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, pass user.Password) (string, *readmodel.UserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   commands.UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo commands.UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, pass user.Password) (string, *readmodel.UserRM, error) {
	rm, err := a.validateUser(ctx, email, pass)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(rm.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.RecordLogin(ctx, rm.ID); err != nil {
		return "", nil, err
	}

	return token, rm, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, email user.Email, pass user.Password) (*readmodel.UserRM, error) {
	rm, err := a.userRepo.FindByEmail(ctx, email.Value())
	if err != nil || rm == nil {
		return nil, ErrUserNotFound
	}

	if !rm.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(rm.PasswordHash, pass.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return rm, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
