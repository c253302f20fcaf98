package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/config"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
)

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	cache          repositories.CacheRepositoryInterface
	jwtService     service.JWTService
	authConfig     config.AuthConfig
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		cache:          cache,
		jwtService:     jwtService,
		authConfig:     authConfig,
		logger:         logger,
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("auth:login_attempts:%s", email)
}

// Login verifies credentials and issues a token pair. Failed attempts
// are counted in redis per email; past the limit the account is locked
// out until the counter expires.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	key := loginAttemptsKey(payload.Email)

	if locked, err := s.isLockedOut(ctx, key); err != nil {
		s.logger.Error("checking login lockout failed", zap.Error(err))
	} else if locked {
		return nil, apperrors.ErrTooManyAttempts
	}

	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, key)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		s.registerFailedAttempt(ctx, key)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Warn("resetting login attempts failed", zap.Error(err))
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("generating tokens failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) isLockedOut(ctx context.Context, key string) (bool, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	var attempts int
	if _, err := fmt.Sscanf(value, "%d", &attempts); err != nil {
		return false, nil
	}
	return attempts >= s.authConfig.MaxLoginAttempts, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	attempts, err := s.cache.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("counting failed login attempt failed", zap.Error(err))
		return
	}
	// The first failure starts the lockout window.
	if attempts == 1 {
		if _, err := s.cache.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("setting lockout expiry failed", zap.Error(err))
		}
	}
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepository.FindUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepository.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
