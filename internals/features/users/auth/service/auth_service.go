package service

import (
	"context"
	"errors"
	"strings"
	"time"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	adminRepo "learnsmate_backend/internals/features/users/admins/repository"
	"learnsmate_backend/internals/features/users/auth/dto"
	"learnsmate_backend/internals/features/users/auth/repository"
	memberRepo "learnsmate_backend/internals/features/users/members/repository"
	helperAuth "learnsmate_backend/internals/helpers/auth"
	"learnsmate_backend/internals/logger"
)

// PhoneVerifier consumes a verified-phone marker set by the SMS flow.
type PhoneVerifier interface {
	ConsumeVerified(ctx context.Context, phone string) error
}

type AuthService struct {
	admins  *adminRepo.AdminRepository
	members *memberRepo.MemberRepository
	revoked *repository.RevokedTokenRepository
	phones  PhoneVerifier
	google  GoogleVerifier
	now     func() time.Time
}

func NewAuthService(db *gorm.DB, phones PhoneVerifier, google GoogleVerifier) *AuthService {
	return &AuthService{
		admins:  adminRepo.NewAdminRepository(db),
		members: memberRepo.NewMemberRepository(db),
		revoked: repository.NewRevokedTokenRepository(db),
		phones:  phones,
		google:  google,
		now:     time.Now,
	}
}

// AdminLogin authenticates an admin by email and password.
func (s *AuthService) AdminLogin(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.InvalidCredentials)
		}
		return nil, pkgErrors.Wrap(err, "find admin")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return nil, exceptions.New(exceptions.InvalidCredentials)
	}
	if !admin.AdminFlag {
		return nil, exceptions.New(exceptions.InactiveAccount)
	}
	return s.issueAdminToken(ctx, admin.AdminCode, admin.AdminName)
}

// MemberLogin authenticates a student or tutor. The token role is the member type.
func (s *AuthService) MemberLogin(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	member, err := s.members.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.InvalidCredentials)
		}
		return nil, pkgErrors.Wrap(err, "find member")
	}
	if bcrypt.CompareHashAndPassword([]byte(member.MemberPassword), []byte(req.Password)) != nil {
		return nil, exceptions.New(exceptions.InvalidCredentials)
	}
	if !member.MemberFlag {
		return nil, exceptions.New(exceptions.InactiveAccount)
	}
	return s.issue(member.MemberCode, member.MemberType, member.MemberName)
}

// GoogleLogin signs in the active admin whose email matches the Google identity.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, exceptions.WithDetail(exceptions.InvalidParameter, "id_token is required")
	}
	identity, err := s.google.Verify(idToken)
	if err != nil {
		logger.Log.WithError(err).Info("google id token rejected")
		return nil, exceptions.WithDetail(exceptions.Unauthorized, "invalid google id token")
	}
	admin, err := s.admins.FindByEmail(ctx, strings.ToLower(identity.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.AdminNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find admin")
	}
	if !admin.AdminFlag {
		return nil, exceptions.New(exceptions.InactiveAccount)
	}
	return s.issueAdminToken(ctx, admin.AdminCode, admin.AdminName)
}

func (s *AuthService) issueAdminToken(ctx context.Context, code int64, name string) (*dto.TokenResponse, error) {
	resp, err := s.issue(code, constants.RoleAdmin, name)
	if err != nil {
		return nil, err
	}
	if err := s.admins.TouchLastLogin(ctx, code, s.now()); err != nil {
		logger.Log.WithError(err).WithField("admin_code", code).Warn("last login not recorded")
	}
	return resp, nil
}

func (s *AuthService) issue(code int64, role, name string) (*dto.TokenResponse, error) {
	issued, err := helperAuth.IssueAccessToken(code, role, name, s.now())
	if err != nil {
		return nil, pkgErrors.Wrap(err, "issue token")
	}
	return &dto.TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   issued.ExpiresAt,
		Code:        code,
		Role:        role,
		Name:        name,
	}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := helperAuth.ParseAccessToken(rawToken)
	if err != nil {
		return exceptions.WithDetail(exceptions.Unauthorized, "invalid or expired token")
	}
	expiredAt := s.now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiredAt = claims.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, rawToken, expiredAt); err != nil {
		return pkgErrors.Wrap(err, "revoke token")
	}
	return nil
}

// CheckEmail reports whether email is unused by both admins and members.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (*dto.EmailCheckResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, exceptions.WithDetail(exceptions.InvalidParameter, "email is required")
	}
	adminTaken, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check admin email")
	}
	memberTaken, err := s.members.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check member email")
	}
	return &dto.EmailCheckResponse{Email: email, Available: !adminTaken && !memberTaken}, nil
}

// CleanupRevoked purges revoked tokens past their expiry.
func (s *AuthService) CleanupRevoked(ctx context.Context) (int64, error) {
	return s.revoked.DeleteExpired(ctx, s.now())
}
