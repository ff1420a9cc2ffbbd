package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/shared/database"
	"github.com/onemapafrica/member-hub-api/internal/shared/logger"
	"github.com/onemapafrica/member-hub-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db              *gorm.DB
	adminRepository *AdminRepository
	tokenManager    token.Manager
}

func NewAuthService(db *gorm.DB, adminRepository *AdminRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:              db,
		adminRepository: adminRepository,
		tokenManager:    tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	admin, err := a.adminRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed - admin email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrIncorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("login failed - unexpected error", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password)); err != nil {
		log.Warn("login failed - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrIncorrectEmailPassword)
	}

	adminID := strconv.FormatUint(uint64(admin.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(adminID, admin.Email)
	if err != nil {
		log.Error("failed to generate access token", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(adminID, admin.Email)
	if err != nil {
		log.Error("failed to generate refresh token", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("login succeeded", "email", logger.MaskEmail(request.Email))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) error {
	log := logger.FromContext(ctx)
	return database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.adminRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("failed to check admin existence", "error", err)
			return fmt.Errorf("check admin existence: %w", err)
		}
		if exists {
			log.Warn("admin already exists", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("error %w", ErrAdminAlreadyExists)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		admin := model.NewAdminUser(request.Name, request.Email, string(hashedPassword))
		if err := a.adminRepository.Create(ctx, tx, admin); err != nil {
			log.Error("failed to create admin", "error", err)
			return fmt.Errorf("create admin: %w", err)
		}

		log.Info("admin created", "email", logger.MaskEmail(request.Email))
		return nil
	})
}
