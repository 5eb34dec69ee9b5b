package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecomshop/shop-api/internal/member"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/ecomshop/shop-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	// 1. Find adherent by email
	adherent, err := a.memberRepository.FindByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed - email not found", "email", logger.MaskEmail(email))
			return nil, fmt.Errorf("login: %w", ErrIncorrectEmailPassword) // don't reveal if email exists
		}
		log.Error("login failed - lookup error", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(adherent.Password), []byte(request.Password)); err != nil {
		log.Warn("login failed - invalid password", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("login: %w", ErrIncorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	pair, err := a.tokenManager.GeneratePair(adherent.ID, adherent.Email, token.RoleAdherent)
	if err != nil {
		log.Error("token generation failed", "error", err)
		return nil, fmt.Errorf("generate tokens: %w", err)
	}

	log.Info("login succeeded", "email", logger.MaskEmail(email), "member_id", adherent.ID)

	return &LoginResponse{
		MemberID:     adherent.ID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	var created *model.Member
	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.memberRepository.IsExist(ctx, tx, email)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Member already exists", "email", logger.MaskEmail(email))
			return fmt.Errorf("signup: %w", member.ErrMemberAlreadyExists)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		created = model.NewMember(strings.TrimSpace(request.LastName), strings.TrimSpace(request.FirstName), email, string(hashedPassword))
		if err := a.memberRepository.Create(ctx, tx, created); err != nil {
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("Member created successfully", "email", logger.MaskEmail(email), "member_id", created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SignupResponse{ID: created.ID}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
